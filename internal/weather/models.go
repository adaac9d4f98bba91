package weather

import (
	"errors"
	"fmt"
)

const MonthsPerYear = 12

var (
	// ErrYearOutOfRange is returned when a year is not covered by the table.
	ErrYearOutOfRange = errors.New("year out of range")
	// ErrInvalidRange is returned for a non-positive year count.
	ErrInvalidRange = errors.New("invalid year range")
)

// MonthNames are the short labels shown under the bars.
var MonthNames = [MonthsPerYear]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// DailyRecord is one input row. Temperature is in tenths of a degree.
type DailyRecord struct {
	Year              int
	Month             int
	TemperatureTenths int
}

// MonthlyAverage is one cell of the table.
// Days == 0 means no record contributed and Value must be ignored.
type MonthlyAverage struct {
	Value float64 `json:"average"`
	Days  int     `json:"days"`
}

// HasData reports whether at least one day contributed to the average.
func (m MonthlyAverage) HasData() bool {
	return m.Days > 0
}

// MonthlyAverageTable holds per-year, per-month average temperatures in whole degrees.
// It is built once by Aggregate and is read-only afterwards.
type MonthlyAverageTable struct {
	BaseYear  int
	YearCount int

	// Skipped counts input records that fell outside the configured range.
	Skipped int

	cells [][MonthsPerYear]MonthlyAverage
}

// LastYear returns the last year covered by the table.
func (t *MonthlyAverageTable) LastYear() int {
	return t.BaseYear + t.YearCount - 1
}

// Contains reports whether year has a row in the table.
func (t *MonthlyAverageTable) Contains(year int) bool {
	return year >= t.BaseYear && year <= t.LastYear()
}

// Years lists the covered years in ascending order.
func (t *MonthlyAverageTable) Years() []int {
	years := make([]int, 0, t.YearCount)
	for y := t.BaseYear; y <= t.LastYear(); y++ {
		years = append(years, y)
	}
	return years
}

// Row returns the twelve monthly averages of year.
func (t *MonthlyAverageTable) Row(year int) ([MonthsPerYear]MonthlyAverage, error) {
	if !t.Contains(year) {
		return [MonthsPerYear]MonthlyAverage{}, fmt.Errorf("%w: %d not in [%d, %d]", ErrYearOutOfRange, year, t.BaseYear, t.LastYear())
	}
	return t.cells[year-t.BaseYear], nil
}

// At returns the cell for year and month (1-12).
func (t *MonthlyAverageTable) At(year, month int) (MonthlyAverage, error) {
	row, err := t.Row(year)
	if err != nil {
		return MonthlyAverage{}, err
	}
	if month < 1 || month > MonthsPerYear {
		return MonthlyAverage{}, fmt.Errorf("invalid month %d", month)
	}
	return row[month-1], nil
}

package weather

import (
	"fmt"
	"log"
)

// Aggregate builds the monthly average table for yearCount years starting at baseYear.
// Records outside the range are dropped and counted in the table's Skipped field.
// Cells nobody contributed to are left without data.
func Aggregate(records []DailyRecord, baseYear, yearCount int) (*MonthlyAverageTable, error) {
	if yearCount <= 0 {
		return nil, fmt.Errorf("%w: year count %d", ErrInvalidRange, yearCount)
	}

	sums := make([][MonthsPerYear]float64, yearCount)
	counts := make([][MonthsPerYear]int, yearCount)

	var skipped int
	for i, r := range records {
		yearOffset := r.Year - baseYear
		monthIndex := r.Month - 1

		if yearOffset < 0 || yearOffset >= yearCount || monthIndex < 0 || monthIndex >= MonthsPerYear {
			skipped++
			log.Printf("WARN: skipping record %d (year=%d month=%d): outside %d-%d", i, r.Year, r.Month, baseYear, baseYear+yearCount-1)
			continue
		}

		sums[yearOffset][monthIndex] += float64(r.TemperatureTenths) / 10
		counts[yearOffset][monthIndex]++
	}

	table := &MonthlyAverageTable{
		BaseYear:  baseYear,
		YearCount: yearCount,
		Skipped:   skipped,
		cells:     make([][MonthsPerYear]MonthlyAverage, yearCount),
	}

	for y := 0; y < yearCount; y++ {
		for m := 0; m < MonthsPerYear; m++ {
			n := counts[y][m]
			if n == 0 {
				continue
			}
			table.cells[y][m] = MonthlyAverage{
				Value: sums[y][m] / float64(n),
				Days:  n,
			}
		}
	}

	if skipped > 0 {
		log.Printf("INFO: aggregated %d records, skipped %d out-of-range", len(records)-skipped, skipped)
	}

	return table, nil
}

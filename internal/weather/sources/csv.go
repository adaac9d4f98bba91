package sources

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/i474232898/weather-chart/internal/weather"
)

var (
	// ErrMissingField is returned when the header lacks a required column.
	ErrMissingField = errors.New("missing field")
	// ErrMalformedField is returned when a value cannot be parsed as an integer.
	ErrMalformedField = errors.New("malformed field")
)

const (
	fieldYear        = "year"
	fieldMonth       = "month"
	fieldTemperature = "temperature"
)

// ParseRecords reads a CSV with a header naming year, month and temperature.
// Columns may appear in any order; extra columns are ignored.
// Parsing stops at the first malformed row.
func ParseRecords(r io.Reader) ([]weather.DailyRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input, expected header with %s,%s,%s", ErrMissingField, fieldYear, fieldMonth, fieldTemperature)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var idx [3]int
	for i, name := range []string{fieldYear, fieldMonth, fieldTemperature} {
		c, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q not in header %v", ErrMissingField, name, header)
		}
		idx[i] = c
	}

	var records []weather.DailyRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		var vals [3]int
		for i, c := range idx {
			if c >= len(row) {
				return nil, fmt.Errorf("%w: line %d: %q missing", ErrMissingField, line, header[c])
			}
			v, err := strconv.Atoi(strings.TrimSpace(row[c]))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %s=%q", ErrMalformedField, line, header[c], row[c])
			}
			vals[i] = v
		}

		records = append(records, weather.DailyRecord{
			Year:              vals[0],
			Month:             vals[1],
			TemperatureTenths: vals[2],
		})
	}

	return records, nil
}

package sources

import (
	"context"
	"fmt"
	"io"
	"log"

	"golang.org/x/exp/mmap"

	"github.com/i474232898/weather-chart/internal/weather"
)

// FileSource loads records from a local CSV file through a read-only memory map.
type FileSource struct {
	name string
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{name: "file", path: path}
}

func (s *FileSource) Name() string {
	return s.name
}

func (s *FileSource) Load(ctx context.Context) ([]weather.DailyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mm, err := mmap.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("mmap.Open: %w", err)
	}
	defer mm.Close()

	if err := checkText(io.NewSectionReader(mm, 0, int64(mm.Len()))); err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	records, err := ParseRecords(io.NewSectionReader(mm, 0, int64(mm.Len())))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	log.Printf("INFO: loaded %d records from %s", len(records), s.path)
	return records, nil
}

package weather

import (
	"errors"
	"log"
	"sync"

	"github.com/i474232898/weather-chart/internal/selection"
)

// Service ties the aggregated table, the year selection and the renderer together.
// Key events are serialized, so at most one render runs at a time and the last one wins.
type Service struct {
	mu       sync.Mutex
	table    *MonthlyAverageTable
	renderer Renderer
	ctrl     *selection.Controller

	lastErr error
}

// NewService creates a new Service starting at defaultYear.
func NewService(table *MonthlyAverageTable, renderer Renderer, defaultYear int, opts ...selection.Option) (*Service, error) {
	s := &Service{
		table:    table,
		renderer: renderer,
	}

	ctrl, err := selection.New(table.BaseYear, table.YearCount, defaultYear, s.render, opts...)
	if err != nil {
		return nil, err
	}
	s.ctrl = ctrl
	return s, nil
}

// Start draws the default year.
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ctrl.Select(s.ctrl.Year()); err != nil {
		return err
	}
	return s.lastErr
}

// HandleKey applies a key press and re-renders when the year changes.
func (s *Service) HandleKey(code int) (year int, changed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed = s.ctrl.HandleKey(selection.Key(code))
	if changed {
		log.Printf("DEBUG: key %d selected year %d", code, s.ctrl.Year())
	}
	return s.ctrl.Year(), changed
}

// Advance steps to the next year, wrapping to the first year after the last one.
func (s *Service) Advance() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ctrl.Next() {
		first, _ := s.ctrl.Bounds()
		if err := s.ctrl.Select(first); err != nil {
			log.Printf("ERROR: autoplay wrap failed: %v", err)
		}
	}
	return s.ctrl.Year()
}

// Year returns the selected year.
func (s *Service) Year() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Year()
}

// Table returns the aggregated table.
func (s *Service) Table() *MonthlyAverageTable {
	return s.table
}

// Row delegates to the table.
func (s *Service) Row(year int) ([MonthsPerYear]MonthlyAverage, error) {
	return s.table.Row(year)
}

// render is the controller callback; it runs with s.mu held.
func (s *Service) render(year int) {
	err := s.renderer.Render(s.table, year)
	s.lastErr = err
	if err == nil {
		return
	}
	if errors.Is(err, ErrYearOutOfRange) {
		log.Printf("ERROR: render %d: %v", year, err)
		return
	}
	log.Printf("WARN: render %d: %v", year, err)
}

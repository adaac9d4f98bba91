package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-chart/internal/chart"
)

var (
	// ErrNotFound is returned when no element of a class is visible.
	ErrNotFound = errors.New("no elements for class")
)

// Frame is an immutable snapshot of the visible surface.
type Frame struct {
	ID        uuid.UUID
	UpdatedAt time.Time
	Elements  []chart.Element
}

// MemoryStore is a concurrency-safe in-memory chart surface.
// Remove and Append edit a working copy; Commit publishes it as the visible frame,
// so readers never observe a half-drawn chart.
type MemoryStore struct {
	mu sync.RWMutex

	// key: element class, value: elements in append order
	pending map[chart.Class][]chart.Element
	visible map[chart.Class][]chart.Element

	id        uuid.UUID
	updatedAt time.Time
}

// NewMemoryStore creates an empty surface.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		pending:   make(map[chart.Class][]chart.Element),
		visible:   make(map[chart.Class][]chart.Element),
		id:        uuid.New(),
		updatedAt: time.Now().UTC(),
	}
}

// Remove drops every element of class from the working copy.
func (s *MemoryStore) Remove(class chart.Class) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, class)
}

// Append adds an element under its class to the working copy.
func (s *MemoryStore) Append(el chart.Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[el.Class] = append(s.pending[el.Class], el)
}

// Commit publishes the working copy under a new frame ID.
func (s *MemoryStore) Commit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	visible := make(map[chart.Class][]chart.Element, len(s.pending))
	for class, els := range s.pending {
		cp := make([]chart.Element, len(els))
		copy(cp, els)
		visible[class] = cp
	}
	s.visible = visible
	s.id = uuid.New()
	s.updatedAt = time.Now().UTC()
}

// Select returns a copy of the visible elements of class.
func (s *MemoryStore) Select(class chart.Class) ([]chart.Element, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	els, ok := s.visible[class]
	if !ok || len(els) == 0 {
		return nil, ErrNotFound
	}
	out := make([]chart.Element, len(els))
	copy(out, els)
	return out, nil
}

// Count returns the number of visible elements of class.
func (s *MemoryStore) Count(class chart.Class) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.visible[class])
}

// Snapshot returns every visible element in painting order along with the frame ID.
func (s *MemoryStore) Snapshot() Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	for _, els := range s.visible {
		n += len(els)
	}

	frame := Frame{
		ID:        s.id,
		UpdatedAt: s.updatedAt,
		Elements:  make([]chart.Element, 0, n),
	}
	for _, c := range chart.Classes {
		frame.Elements = append(frame.Elements, s.visible[c]...)
	}
	return frame
}

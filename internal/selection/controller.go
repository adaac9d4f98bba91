// Package selection tracks which year of the table is on screen.
package selection

import (
	"errors"
	"fmt"
)

// Key is a discrete key code as delivered by the browser.
type Key int

const (
	KeyLeft  Key = 37
	KeyRight Key = 39
)

// ErrOutOfBounds is returned when a year outside the configured range is requested.
var ErrOutOfBounds = errors.New("year outside selectable range")

// Controller holds the selected year and its bounds. It is not safe for
// concurrent use; callers serialize key events.
type Controller struct {
	year     int
	first    int
	last     int
	prevKey  Key
	nextKey  Key
	onChange func(year int)
}

// Option customizes a Controller.
type Option func(*Controller)

// WithKeys overrides the previous/next key codes.
func WithKeys(prev, next Key) Option {
	return func(c *Controller) {
		c.prevKey = prev
		c.nextKey = next
	}
}

// New creates a Controller covering [baseYear, baseYear+yearCount-1] starting at initial.
// onChange is called after every change of the selected year.
func New(baseYear, yearCount, initial int, onChange func(year int), opts ...Option) (*Controller, error) {
	if yearCount <= 0 {
		return nil, fmt.Errorf("year count must be positive, got %d", yearCount)
	}
	c := &Controller{
		year:     initial,
		first:    baseYear,
		last:     baseYear + yearCount - 1,
		prevKey:  KeyLeft,
		nextKey:  KeyRight,
		onChange: onChange,
	}
	for _, opt := range opts {
		opt(c)
	}
	if !c.inBounds(initial) {
		return nil, fmt.Errorf("%w: initial year %d not in [%d, %d]", ErrOutOfBounds, initial, c.first, c.last)
	}
	return c, nil
}

// Year returns the selected year.
func (c *Controller) Year() int {
	return c.year
}

// Bounds returns the first and last selectable year.
func (c *Controller) Bounds() (first, last int) {
	return c.first, c.last
}

// HandleKey applies a key press. Unknown keys are ignored.
// It reports whether the selected year changed.
func (c *Controller) HandleKey(k Key) bool {
	switch k {
	case c.prevKey:
		return c.Previous()
	case c.nextKey:
		return c.Next()
	default:
		return false
	}
}

// Previous steps one year back unless already at the first year.
func (c *Controller) Previous() bool {
	if c.year-1 < c.first {
		return false
	}
	c.set(c.year - 1)
	return true
}

// Next steps one year forward unless already at the last year.
func (c *Controller) Next() bool {
	if c.year+1 > c.last {
		return false
	}
	c.set(c.year + 1)
	return true
}

// Select jumps to year. Selecting the current year re-renders it.
func (c *Controller) Select(year int) error {
	if !c.inBounds(year) {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfBounds, year, c.first, c.last)
	}
	c.set(year)
	return nil
}

func (c *Controller) set(year int) {
	c.year = year
	if c.onChange != nil {
		c.onChange(year)
	}
}

func (c *Controller) inBounds(year int) bool {
	return year >= c.first && year <= c.last
}

package chart

import (
	"fmt"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Layout holds the canvas geometry and styling of the chart.
type Layout struct {
	Width      float64
	Height     float64
	Padding    float64
	BarPadding float64

	// DomainPadding lowers the scale minimum so the smallest bar stays visible.
	DomainPadding float64

	TickCount int
	Duration  time.Duration

	BarFill    string
	StartFill  string
	NoDataFill string
	FontFamily string
}

// DefaultLayout is the reference 600x400 configuration.
func DefaultLayout() Layout {
	return Layout{
		Width:         600,
		Height:        400,
		Padding:       50,
		BarPadding:    10,
		DomainPadding: 5,
		TickCount:     5,
		Duration:      1500 * time.Millisecond,
		BarFill:       "orange",
		StartFill:     "black",
		NoDataFill:    "lightgray",
		FontFamily:    "sans-serif",
	}
}

// Validate checks that the layout leaves room for the bars.
func (l Layout) Validate() error {
	if l.Width <= 2*l.Padding || l.Height <= 2*l.Padding {
		return fmt.Errorf("canvas %gx%g too small for padding %g", l.Width, l.Height, l.Padding)
	}
	if l.BarPadding < 0 || l.BarPadding >= l.BarSpace() {
		return fmt.Errorf("bar padding %g must be in [0, %g)", l.BarPadding, l.BarSpace())
	}
	return nil
}

// ChartHeight is the vertical extent available to bars.
func (l Layout) ChartHeight() float64 {
	return l.Height - 2*l.Padding
}

// BarSpace is the horizontal slot of one month.
func (l Layout) BarSpace() float64 {
	return (l.Width - 2*l.Padding) / 12
}

// BarX is the left edge of bar i.
func (l Layout) BarX(i int) float64 {
	return l.Padding + float64(i)*l.BarSpace() + l.BarPadding
}

// LabelX is the horizontal center of bar i.
func (l Layout) LabelX(i int) float64 {
	return l.Padding + l.BarSpace()*float64(i) + l.BarPadding/2 + l.BarSpace()/2
}

// TextWidth estimates the rendered width of s at size px using fixed-width glyph metrics.
func TextWidth(s string, size float64) float64 {
	face := basicfont.Face7x13
	adv := font.MeasureString(face, s)
	return float64(adv) / 64 * size / float64(face.Height)
}

package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearMapInverted(t *testing.T) {
	s := NewLinear(-4, 12, 300, 0)

	assert.InDelta(t, 300, s.Map(-4), 1e-9)
	assert.InDelta(t, 0, s.Map(12), 1e-9)
	assert.InDelta(t, 150, s.Map(4), 1e-9)
}

func TestLinearMapDegenerateDomain(t *testing.T) {
	s := NewLinear(3, 3, 300, 0)
	assert.InDelta(t, 150, s.Map(3), 1e-9)
}

func TestTicks(t *testing.T) {
	cases := []struct {
		name   string
		d0, d1 float64
		count  int
		want   []float64
	}{
		{"positive", 0.1, 25, 5, []float64{5, 10, 15, 20, 25}},
		{"crosses zero", -4, 12, 5, []float64{0, 5, 10}},
		{"fractional", 0, 1, 5, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{"reversed", 10, 0, 5, []float64{0, 2, 4, 6, 8, 10}},
		{"single point", 7, 7, 5, []float64{7}},
		{"padded range", -5, 10, 5, []float64{-5, 0, 5, 10}},
		{"steps of two", 0, 6.9, 5, []float64{0, 2, 4, 6}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewLinear(tc.d0, tc.d1, 0, 1).Ticks(tc.count))
		})
	}
}

func TestTickFormat(t *testing.T) {
	assert.Equal(t, "5", TickFormat(5))
	assert.Equal(t, "0.2", TickFormat(0.2))
	assert.Equal(t, "-2.5", TickFormat(-2.5))
}

func TestExtent(t *testing.T) {
	lo, hi, ok := extent([]float64{3, -1.5, 8, 2})
	assert.True(t, ok)
	assert.Equal(t, -1.5, lo)
	assert.Equal(t, 8.0, hi)

	_, _, ok = extent([]int{})
	assert.False(t, ok)
}

func TestLayoutGeometry(t *testing.T) {
	l := DefaultLayout()
	assert.NoError(t, l.Validate())
	assert.InDelta(t, 300, l.ChartHeight(), 1e-9)
	assert.InDelta(t, 500.0/12, l.BarSpace(), 1e-9)
	assert.InDelta(t, 60, l.BarX(0), 1e-9)
	assert.InDelta(t, 50+5+500.0/24, l.LabelX(0), 1e-9)

	l.Padding = 300
	assert.Error(t, l.Validate())
}

func TestTextWidthScalesWithSize(t *testing.T) {
	w10 := TextWidth("No data", 10)
	w20 := TextWidth("No data", 20)
	assert.Greater(t, w10, 0.0)
	assert.InDelta(t, 2*w10, w20, 1e-9)
}

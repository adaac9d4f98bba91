package chart

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Linear maps a value domain onto a pixel range.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// NewLinear returns a scale mapping [d0, d1] onto [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Map converts a domain value to the range.
func (s Linear) Map(v float64) float64 {
	if s.D1 == s.D0 {
		return (s.R0 + s.R1) / 2
	}
	t := (v - s.D0) / (s.D1 - s.D0)
	return s.R0 + t*(s.R1-s.R0)
}

// Ticks returns roughly count round values spanning the domain, ascending.
// The step is 1, 2, 5 or 10 times a power of ten, picked by how far the
// power of ten falls short of span/count.
func (s Linear) Ticks(count int) []float64 {
	start, stop := s.D0, s.D1
	if stop < start {
		start, stop = stop, start
	}
	if count <= 0 || start == stop {
		return []float64{start}
	}

	span := stop - start
	power := math.Floor(math.Log10(span / float64(count)))
	base := math.Pow(10, power)
	fill := float64(count) / span * base

	factor := 1.0
	switch {
	case fill <= 0.15:
		factor = 10
	case fill <= 0.35:
		factor = 5
	case fill <= 0.75:
		factor = 2
	}
	// Negative powers divide by an integer to keep ticks like 0.6 exact.
	var i1, i2, inc float64
	at := func(i float64) float64 { return i * inc }
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		at = func(i float64) float64 { return i / inc }
		i1, i2 = math.Round(start*inc), math.Round(stop*inc)
	} else {
		inc = factor * base
		i1, i2 = math.Round(start/inc), math.Round(stop/inc)
	}
	if at(i1) < start {
		i1++
	}
	if at(i2) > stop {
		i2--
	}

	ticks := make([]float64, 0, max(0, int(i2-i1)+1))
	for i := i1; i <= i2; i++ {
		v := at(i)
		if v == 0 {
			v = 0 // no "-0" labels
		}
		ticks = append(ticks, v)
	}
	return ticks
}

// TickFormat renders a tick value with no more precision than the tick step needs.
func TickFormat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// extent returns the minimum and maximum of xs; ok is false for an empty slice.
func extent[T constraints.Integer | constraints.Float](xs []T) (lo, hi T, ok bool) {
	if len(xs) == 0 {
		return lo, hi, false
	}
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi, true
}

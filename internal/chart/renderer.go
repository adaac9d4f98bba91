package chart

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/i474232898/weather-chart/internal/weather"
)

// ErrNoData is returned when the selected year has no month with data.
var ErrNoData = errors.New("no data for year")

const noDataMessage = "No data"

// Renderer draws the monthly bar chart of one year onto a Surface.
type Renderer struct {
	surface Surface
	layout  Layout
}

// NewRenderer creates a Renderer drawing on surface with layout.
func NewRenderer(surface Surface, layout Layout) (*Renderer, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{surface: surface, layout: layout}, nil
}

// Layout returns the layout the renderer draws with.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Render replaces whatever is on the surface with the chart of year.
func (r *Renderer) Render(table *weather.MonthlyAverageTable, year int) error {
	row, err := table.Row(year)
	if err != nil {
		return err
	}

	scale, ok := r.Scale(row)

	for _, c := range Classes {
		r.surface.Remove(c)
	}
	defer r.surface.Commit()

	if !ok {
		r.drawYear(year)
		r.drawNoData()
		return fmt.Errorf("%w %d", ErrNoData, year)
	}

	r.drawBars(row, scale)
	r.drawValues(row, scale)
	r.drawMonths()
	r.drawYear(year)
	r.drawAxis(scale)
	return nil
}

// Scale builds the vertical scale for row. ok is false when no month has data.
func (r *Renderer) Scale(row [weather.MonthsPerYear]weather.MonthlyAverage) (Linear, bool) {
	values := make([]float64, 0, len(row))
	for _, m := range row {
		if m.HasData() {
			values = append(values, m.Value)
		}
	}
	lo, hi, ok := extent(values)
	if !ok {
		return Linear{}, false
	}
	return NewLinear(lo-r.layout.DomainPadding, hi, r.layout.ChartHeight(), 0), true
}

func (r *Renderer) drawBars(row [weather.MonthsPerYear]weather.MonthlyAverage, scale Linear) {
	l := r.layout
	for i, m := range row {
		start := Attrs{
			X:      l.BarX(i),
			Y:      l.Height - l.Padding,
			Width:  l.BarSpace() - l.BarPadding,
			Height: 0,
			Fill:   l.StartFill,
		}

		el := Element{Kind: KindRect, Class: ClassBar, Attrs: start}
		if !m.HasData() {
			el.Attrs.Fill = l.NoDataFill
			r.surface.Append(el)
			continue
		}

		y := scale.Map(m.Value)
		end := start
		end.Y = y + l.Padding
		end.Height = l.ChartHeight() - y
		end.Fill = l.BarFill
		el.Transition = &Transition{Duration: l.Duration, To: end}
		r.surface.Append(el)
	}
}

func (r *Renderer) drawValues(row [weather.MonthsPerYear]weather.MonthlyAverage, scale Linear) {
	l := r.layout
	for i, m := range row {
		label := "n/a"
		y := l.Height - l.Padding - 5
		if m.HasData() {
			label = strconv.FormatFloat(m.Value, 'f', 1, 64)
			y = scale.Map(m.Value) + l.Padding + 15
		}

		at := Attrs{X: l.LabelX(i), Y: y}
		r.surface.Append(Element{
			Kind:       KindText,
			Class:      ClassValue,
			Attrs:      at,
			Text:       label,
			Anchor:     "middle",
			Font:       Font{Family: l.FontFamily, Size: 10},
			Transition: &Transition{Delay: l.Duration, To: at},
		})
	}
}

func (r *Renderer) drawMonths() {
	l := r.layout
	for i, name := range weather.MonthNames {
		r.surface.Append(Element{
			Kind:   KindText,
			Class:  ClassMonth,
			Attrs:  Attrs{X: l.LabelX(i), Y: l.Height - l.Padding + 10},
			Text:   name,
			Anchor: "middle",
			Font:   Font{Family: l.FontFamily, Size: 10},
		})
	}
}

func (r *Renderer) drawYear(year int) {
	l := r.layout
	r.surface.Append(Element{
		Kind:   KindText,
		Class:  ClassYear,
		Attrs:  Attrs{X: l.Padding + 60, Y: l.Padding + 30},
		Text:   strconv.Itoa(year),
		Anchor: "middle",
		Font:   Font{Family: l.FontFamily, Size: 24, Weight: "bold"},
	})
}

func (r *Renderer) drawNoData() {
	l := r.layout
	const size = 18
	w := TextWidth(noDataMessage, size)
	r.surface.Append(Element{
		Kind:   KindText,
		Class:  ClassNoData,
		Attrs:  Attrs{X: (l.Width - w) / 2, Y: l.Height / 2},
		Text:   noDataMessage,
		Anchor: "start",
		Font:   Font{Family: l.FontFamily, Size: size},
	})
}

func (r *Renderer) drawAxis(scale Linear) {
	l := r.layout
	values := scale.Ticks(l.TickCount)
	ticks := make([]Tick, 0, len(values))
	for _, v := range values {
		ticks = append(ticks, Tick{Value: v, Pos: scale.Map(v), Label: TickFormat(v)})
	}
	r.surface.Append(Element{
		Kind:  KindAxis,
		Class: ClassAxis,
		Axis: &Axis{
			TranslateX: l.Padding,
			TranslateY: l.Padding,
			Length:     l.ChartHeight(),
			Ticks:      ticks,
		},
	})
}

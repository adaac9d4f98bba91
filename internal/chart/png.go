package chart

import (
	"fmt"
	"io"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/i474232898/weather-chart/internal/weather"
)

var (
	barColor    = drawing.Color{R: 255, G: 165, B: 0, A: 255}
	noDataColor = drawing.Color{R: 211, G: 211, B: 211, A: 255}
)

// RenderPNG draws a static version of the chart of year, without transitions.
// A year without data is drawn as its title and a "No data" message, and
// ErrNoData is returned after the image is written.
func (r *Renderer) RenderPNG(w io.Writer, table *weather.MonthlyAverageTable, year int) error {
	row, err := table.Row(year)
	if err != nil {
		return err
	}
	scale, ok := r.Scale(row)
	if !ok {
		if err := r.renderNoDataPNG(w, year); err != nil {
			return err
		}
		return fmt.Errorf("%w %d", ErrNoData, year)
	}

	l := r.layout
	base := scale.D0

	bars := make([]gochart.Value, 0, len(row))
	for i, m := range row {
		v := gochart.Value{
			Label: weather.MonthNames[i],
			Value: base,
			Style: gochart.Style{FillColor: noDataColor, StrokeColor: noDataColor},
		}
		if m.HasData() {
			v.Value = m.Value
			v.Style = gochart.Style{FillColor: barColor, StrokeColor: barColor}
		}
		bars = append(bars, v)
	}

	var ticks []gochart.Tick
	for _, t := range scale.Ticks(l.TickCount) {
		ticks = append(ticks, gochart.Tick{Value: t, Label: TickFormat(t)})
	}

	bc := gochart.BarChart{
		Title:      strconv.Itoa(year),
		Width:      int(l.Width),
		Height:     int(l.Height),
		BarWidth:   int(l.BarSpace() - l.BarPadding),
		BarSpacing: int(l.BarPadding),
		Background: gochart.Style{
			Padding: gochart.Box{Top: int(l.Padding), Left: int(l.Padding), Right: int(l.Padding), Bottom: int(l.Padding)},
		},
		UseBaseValue: true,
		BaseValue:    base,
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: base, Max: scale.D1},
			Ticks: ticks,
		},
		Bars: bars,
	}

	if err := bc.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}

func (r *Renderer) renderNoDataPNG(w io.Writer, year int) error {
	l := r.layout
	width, height := int(l.Width), int(l.Height)

	rr, err := gochart.PNG(width, height)
	if err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	rr.SetDPI(gochart.DefaultDPI)

	rr.SetFillColor(drawing.ColorWhite)
	rr.MoveTo(0, 0)
	rr.LineTo(width, 0)
	rr.LineTo(width, height)
	rr.LineTo(0, height)
	rr.Close()
	rr.Fill()

	rr.SetFont(font)
	rr.SetFontColor(drawing.ColorBlack)
	rr.SetFontSize(24)
	rr.Text(strconv.Itoa(year), int(l.Padding+60), int(l.Padding+30))

	rr.SetFontSize(18)
	msg := rr.MeasureText(noDataMessage)
	rr.Text(noDataMessage, (width-msg.Width())/2, height/2)

	if err := rr.Save(w); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}

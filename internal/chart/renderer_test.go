package chart_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-chart/internal/chart"
	"github.com/i474232898/weather-chart/internal/store"
	"github.com/i474232898/weather-chart/internal/weather"
)

// testTable has full data for 2013 and 2014 (month m averages m degrees in 2014),
// only March for 2012 and nothing for 2010-2011.
func testTable(t *testing.T) *weather.MonthlyAverageTable {
	t.Helper()
	var records []weather.DailyRecord
	for m := 1; m <= 12; m++ {
		records = append(records,
			weather.DailyRecord{Year: 2014, Month: m, TemperatureTenths: m * 10},
			weather.DailyRecord{Year: 2013, Month: m, TemperatureTenths: 100 - m*10},
		)
	}
	records = append(records, weather.DailyRecord{Year: 2012, Month: 3, TemperatureTenths: 55})

	table, err := weather.Aggregate(records, 2010, 5)
	require.NoError(t, err)
	return table
}

func newRenderer(t *testing.T) (*chart.Renderer, *store.MemoryStore) {
	t.Helper()
	surface := store.NewMemoryStore()
	r, err := chart.NewRenderer(surface, chart.DefaultLayout())
	require.NoError(t, err)
	return r, surface
}

func assertCounts(t *testing.T, s *store.MemoryStore, bars, values, months, years, axes, noData int) {
	t.Helper()
	assert.Equal(t, bars, s.Count(chart.ClassBar), "bars")
	assert.Equal(t, values, s.Count(chart.ClassValue), "value labels")
	assert.Equal(t, months, s.Count(chart.ClassMonth), "month labels")
	assert.Equal(t, years, s.Count(chart.ClassYear), "year labels")
	assert.Equal(t, axes, s.Count(chart.ClassAxis), "axes")
	assert.Equal(t, noData, s.Count(chart.ClassNoData), "no data messages")
}

func TestRenderTwiceLeavesOneChart(t *testing.T) {
	table := testTable(t)
	r, surface := newRenderer(t)

	require.NoError(t, r.Render(table, 2013))
	require.NoError(t, r.Render(table, 2014))

	assertCounts(t, surface, 12, 12, 12, 1, 1, 0)

	years, err := surface.Select(chart.ClassYear)
	require.NoError(t, err)
	assert.Equal(t, "2014", years[0].Text)
	assert.Equal(t, "bold", years[0].Font.Weight)
	assert.InDelta(t, 110, years[0].Attrs.X, 1e-9)
	assert.InDelta(t, 80, years[0].Attrs.Y, 1e-9)
}

func TestRenderBarGeometry(t *testing.T) {
	table := testTable(t)
	r, surface := newRenderer(t)
	require.NoError(t, r.Render(table, 2014))

	bars, err := surface.Select(chart.ClassBar)
	require.NoError(t, err)
	require.Len(t, bars, 12)

	// Domain is [1-5, 12] onto [300, 0].
	jan := bars[0]
	assert.InDelta(t, 60, jan.Attrs.X, 1e-9)
	assert.InDelta(t, 350, jan.Attrs.Y, 1e-9)
	assert.Zero(t, jan.Attrs.Height)
	assert.Equal(t, "black", jan.Attrs.Fill)
	require.NotNil(t, jan.Transition)
	assert.Equal(t, 1500*time.Millisecond, jan.Transition.Duration)
	assert.Zero(t, jan.Transition.Delay)
	assert.InDelta(t, 206.25+50, jan.Transition.To.Y, 1e-9)
	assert.InDelta(t, 93.75, jan.Transition.To.Height, 1e-9)
	assert.Equal(t, "orange", jan.Transition.To.Fill)

	dec := bars[11].Final()
	assert.InDelta(t, 50, dec.Y, 1e-9)
	assert.InDelta(t, 300, dec.Height, 1e-9)
	for _, b := range bars {
		assert.InDelta(t, 500.0/12-10, b.Attrs.Width, 1e-9)
	}
}

func TestRenderValueLabelsAppearAfterBars(t *testing.T) {
	table := testTable(t)
	r, surface := newRenderer(t)
	require.NoError(t, r.Render(table, 2014))

	values, err := surface.Select(chart.ClassValue)
	require.NoError(t, err)
	require.Len(t, values, 12)

	assert.Equal(t, "1.0", values[0].Text)
	assert.Equal(t, "12.0", values[11].Text)
	assert.Equal(t, "middle", values[0].Anchor)
	require.NotNil(t, values[0].Transition)
	assert.Equal(t, 1500*time.Millisecond, values[0].Transition.Delay)
	assert.InDelta(t, 206.25+50+15, values[0].Final().Y, 1e-9)

	months, err := surface.Select(chart.ClassMonth)
	require.NoError(t, err)
	assert.Equal(t, "Jan", months[0].Text)
	assert.Equal(t, "Dec", months[11].Text)
	assert.InDelta(t, 360, months[0].Attrs.Y, 1e-9)
}

func TestRenderAxis(t *testing.T) {
	table := testTable(t)
	r, surface := newRenderer(t)
	require.NoError(t, r.Render(table, 2014))

	axes, err := surface.Select(chart.ClassAxis)
	require.NoError(t, err)
	ax := axes[0].Axis
	require.NotNil(t, ax)
	assert.Equal(t, 50.0, ax.TranslateX)
	assert.Equal(t, 50.0, ax.TranslateY)

	var labels []string
	for _, tk := range ax.Ticks {
		labels = append(labels, tk.Label)
	}
	assert.Equal(t, []string{"0", "5", "10"}, labels)
	assert.InDelta(t, 225, ax.Ticks[0].Pos, 1e-9)
	assert.InDelta(t, 37.5, ax.Ticks[2].Pos, 1e-9)
}

func TestRenderPartialYear(t *testing.T) {
	table := testTable(t)
	r, surface := newRenderer(t)
	require.NoError(t, r.Render(table, 2012))

	assertCounts(t, surface, 12, 12, 12, 1, 1, 0)

	bars, _ := surface.Select(chart.ClassBar)
	assert.Nil(t, bars[1].Transition)
	assert.Equal(t, "lightgray", bars[1].Attrs.Fill)
	assert.Zero(t, bars[1].Final().Height)
	require.NotNil(t, bars[2].Transition)

	values, _ := surface.Select(chart.ClassValue)
	assert.Equal(t, "n/a", values[1].Text)
	assert.Equal(t, "5.5", values[2].Text)
}

func TestRenderNoDataYear(t *testing.T) {
	table := testTable(t)
	r, surface := newRenderer(t)

	require.NoError(t, r.Render(table, 2014))
	err := r.Render(table, 2011)
	assert.ErrorIs(t, err, chart.ErrNoData)
	assertCounts(t, surface, 0, 0, 0, 1, 0, 1)

	_, err = surface.Select(chart.ClassBar)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, r.Render(table, 2013))
	assertCounts(t, surface, 12, 12, 12, 1, 1, 0)
}

func TestRenderOutOfRangeKeepsSurface(t *testing.T) {
	table := testTable(t)
	r, surface := newRenderer(t)

	require.NoError(t, r.Render(table, 2014))
	before := surface.Snapshot()

	err := r.Render(table, 2020)
	assert.ErrorIs(t, err, weather.ErrYearOutOfRange)
	assert.Equal(t, before.ID, surface.Snapshot().ID)
	assertCounts(t, surface, 12, 12, 12, 1, 1, 0)
}

func TestEncodeSVG(t *testing.T) {
	table := testTable(t)
	r, surface := newRenderer(t)
	require.NoError(t, r.Render(table, 2014))

	var buf bytes.Buffer
	require.NoError(t, chart.EncodeSVG(&buf, 600, 400, surface.Snapshot().Elements))
	svg := buf.String()

	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="600" height="400">`))
	assert.Equal(t, 12, strings.Count(svg, `<rect class="bar"`))
	assert.Equal(t, 12, strings.Count(svg, `<animate attributeName="height"`))
	assert.Equal(t, 12, strings.Count(svg, `<set attributeName="opacity" to="1" begin="1.5s"`))
	assert.Equal(t, 1, strings.Count(svg, `class="axis"`))
	assert.Contains(t, svg, `dur="1.5s"`)
	assert.Contains(t, svg, `font-weight="bold"`)
	assert.Contains(t, svg, ">2014</text>")
	assert.Contains(t, svg, ">Jan</text>")
}

func TestRenderPNG(t *testing.T) {
	table := testTable(t)
	r, _ := newRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.RenderPNG(&buf, table, 2012))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	buf.Reset()
	err := r.RenderPNG(&buf, table, 2010)
	assert.ErrorIs(t, err, chart.ErrNoData)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

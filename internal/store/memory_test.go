package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-chart/internal/chart"
)

func TestChangesInvisibleUntilCommit(t *testing.T) {
	s := NewMemoryStore()
	id := s.Snapshot().ID

	s.Append(chart.Element{Kind: chart.KindRect, Class: chart.ClassBar})
	assert.Equal(t, 0, s.Count(chart.ClassBar))
	assert.Equal(t, id, s.Snapshot().ID)

	s.Commit()
	assert.Equal(t, 1, s.Count(chart.ClassBar))
	assert.NotEqual(t, id, s.Snapshot().ID)
}

func TestRemoveClearsOnlyItsClass(t *testing.T) {
	s := NewMemoryStore()
	s.Append(chart.Element{Class: chart.ClassBar})
	s.Append(chart.Element{Class: chart.ClassBar})
	s.Append(chart.Element{Class: chart.ClassYear, Text: "2014"})
	s.Commit()

	s.Remove(chart.ClassBar)
	s.Commit()

	_, err := s.Select(chart.ClassBar)
	assert.ErrorIs(t, err, ErrNotFound)

	years, err := s.Select(chart.ClassYear)
	require.NoError(t, err)
	assert.Equal(t, "2014", years[0].Text)
}

func TestSnapshotPaintOrder(t *testing.T) {
	s := NewMemoryStore()
	s.Append(chart.Element{Class: chart.ClassAxis})
	s.Append(chart.Element{Class: chart.ClassYear})
	s.Append(chart.Element{Class: chart.ClassBar})
	s.Commit()

	frame := s.Snapshot()
	require.Len(t, frame.Elements, 3)
	assert.Equal(t, chart.ClassBar, frame.Elements[0].Class)
	assert.Equal(t, chart.ClassYear, frame.Elements[1].Class)
	assert.Equal(t, chart.ClassAxis, frame.Elements[2].Class)
}

func TestSelectReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.Append(chart.Element{Class: chart.ClassMonth, Text: "Jan"})
	s.Commit()

	els, err := s.Select(chart.ClassMonth)
	require.NoError(t, err)
	els[0].Text = "changed"

	again, _ := s.Select(chart.ClassMonth)
	assert.Equal(t, "Jan", again[0].Text)
}

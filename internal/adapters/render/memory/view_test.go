package memory

import (
	"strings"
	"testing"

	"github.com/bnema/void-bridge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSnapshot(t *testing.T) {
	output, err := Render(Snapshot{
		Stats: domain.Stats{
			Count:      2,
			Capacity:   128,
			Tick:       7,
			TotalHeat:  3,
			MeanHeat:   1.5,
			Churn:      0.25,
			NovelTotal: 2,
		},
		Top: []domain.RankedEntry{
			{ID: "a", Text: "alpha   chunk\ntext", Heat: 2, TTL: 40, Score: 1.8},
			{ID: "b", Text: "beta", Heat: 1, TTL: 10, Score: 0.9},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Void Memory")
	assert.Contains(t, output, "entries: 2/128  tick: 7")
	assert.Contains(t, output, "25%")
	assert.Contains(t, output, "#1 a")
	assert.Contains(t, output, "alpha chunk text")
	assert.Contains(t, output, "#2 b")
	assert.Contains(t, output, "score 1.800")
	assert.Contains(t, output, "ttl 40")
}

func TestRenderEmptySnapshot(t *testing.T) {
	output, err := Render(Snapshot{Stats: domain.Stats{Capacity: 8}})

	require.NoError(t, err)
	assert.Contains(t, output, "entries: 0/8")
	assert.Contains(t, output, "No entries.")
}

func TestRenderProgressBar(t *testing.T) {
	s := newStyles()

	tests := []struct {
		name    string
		percent float64
		filled  int
	}{
		{name: "full", percent: 100, filled: 10},
		{name: "half", percent: 50, filled: 5},
		{name: "clamped high", percent: 250, filled: 10},
		{name: "clamped low", percent: -5, filled: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bar := renderProgressBar(tc.percent, 10, s)
			assert.Equal(t, tc.filled, strings.Count(bar, "="))
			assert.Equal(t, 10-tc.filled, strings.Count(bar, "-"))
		})
	}
}

func TestPreviewTruncatesLongText(t *testing.T) {
	long := strings.Repeat("x", 100)

	got := preview(long)

	assert.Len(t, []rune(got), textPreview)
	assert.True(t, strings.HasSuffix(got, "..."))
}

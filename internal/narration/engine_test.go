package narration

import (
	"testing"

	"story-time/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segs(spans ...domain.Segment) []domain.Segment { return spans }

func TestResolveActiveSegment(t *testing.T) {
	ab := segs(
		domain.Segment{Start: 0, End: 5, Text: "A"},
		domain.Segment{Start: 5, End: 10, Text: "B"},
	)
	gapped := segs(
		domain.Segment{Start: 1, End: 2, Text: "A"},
		domain.Segment{Start: 4, End: 6, Text: "B"},
	)
	overlapping := segs(
		domain.Segment{Start: 0, End: 6, Text: "first"},
		domain.Segment{Start: 4, End: 10, Text: "second"},
	)

	threeWay := segs(
		domain.Segment{Start: 0, End: 5, Text: "A"},
		domain.Segment{Start: 3, End: 6, Text: "B"},
		domain.Segment{Start: 5, End: 7, Text: "C"},
	)

	tests := []struct {
		name     string
		segments []domain.Segment
		time     float64
		want     string
		found    bool
	}{
		{"empty list", nil, 3, "", false},
		{"start boundary inclusive", ab, 0, "A", true},
		{"inside first", ab, 3, "A", true},
		{"shared boundary hands off to next", ab, 5, "B", true},
		{"inside second", ab, 7, "B", true},
		{"end boundary inclusive", ab, 10, "B", true},
		{"after last", ab, 11, "", false},
		{"before first", gapped, 0.5, "", false},
		{"in gap", gapped, 3, "", false},
		{"overlap earliest declared wins", overlapping, 5, "first", true},
		{"overlap only second", overlapping, 8, "second", true},
		{"overlap end of first is not a hand-off", overlapping, 6, "first", true},
		{"hand-off only to the adjacent segment", threeWay, 5, "A", true},
		{"three-way overlap after boundary", threeWay, 5.5, "B", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, ok := ResolveActiveSegment(tt.segments, tt.time)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, seg.Text)
		})
	}
}

func TestResolveActiveSegment_UniqueForDisjointSequences(t *testing.T) {
	sequence := segs(
		domain.Segment{Start: 0, End: 1.5, Text: "a"},
		domain.Segment{Start: 2, End: 3, Text: "b"},
		domain.Segment{Start: 3.25, End: 7, Text: "c"},
		domain.Segment{Start: 9, End: 12, Text: "d"},
	)

	for tick := 0.0; tick <= 13; tick += 0.25 {
		var matches []domain.Segment
		for _, s := range sequence {
			if s.Start <= tick && tick <= s.End {
				matches = append(matches, s)
			}
		}
		require.LessOrEqual(t, len(matches), 1)

		seg, ok := ResolveActiveSegment(sequence, tick)
		if len(matches) == 0 {
			assert.False(t, ok, "t=%v", tick)
			continue
		}
		assert.True(t, ok, "t=%v", tick)
		assert.Equal(t, matches[0], seg, "t=%v", tick)
	}
}

func TestMustScroll(t *testing.T) {
	tests := []struct {
		name                                              string
		elementTop, scrollTop, containerHeight, elementHt float64
		want                                              bool
	}{
		{"fully visible", 120, 100, 300, 40, false},
		{"flush with top", 100, 100, 300, 40, false},
		{"flush with bottom", 360, 100, 300, 40, false},
		{"above window", 80, 100, 300, 40, true},
		{"bottom past window", 370, 100, 300, 40, true},
		{"taller than window", 100, 100, 300, 400, true},
		{"far below", 1000, 0, 300, 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustScroll(tt.elementTop, tt.scrollTop, tt.containerHeight, tt.elementHt))
		})
	}
}

func TestCenteredScrollTop(t *testing.T) {
	assert.Equal(t, 370.0, CenteredScrollTop(500, 40, 300))
	assert.Equal(t, 0.0, CenteredScrollTop(10, 20, 300))
}

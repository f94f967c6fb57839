// Package narration maps an audio playback position onto the text segment
// being read aloud and decides when the reader's viewport has to follow it.
package narration

import "story-time/internal/domain"

// ResolveActiveSegment returns the first segment whose closed interval
// [Start, End] contains t. When segments overlap the earliest declared one
// wins, except at a hand-off point: a segment matched exactly at its End
// yields to the segment declared right after it when that one starts
// exactly at t, so contiguous narration moves on at the shared boundary. The bool is false when t falls in a gap,
// before the first segment or after the last one.
func ResolveActiveSegment(segments []domain.Segment, t float64) (domain.Segment, bool) {
	for i, seg := range segments {
		if !seg.Contains(t) {
			continue
		}
		if t == seg.End && i+1 < len(segments) && segments[i+1].Start == t {
			continue
		}
		return seg, true
	}
	return domain.Segment{}, false
}

// MustScroll reports whether an element is not fully inside the visible
// window of its scroll container: its top is above the window or its bottom
// extends past it.
func MustScroll(elementTop, scrollTop, containerHeight, elementHeight float64) bool {
	return elementTop < scrollTop || elementTop+elementHeight > scrollTop+containerHeight
}

// CenteredScrollTop is the container scroll offset that centers the element.
// It never goes below zero.
func CenteredScrollTop(elementTop, elementHeight, containerHeight float64) float64 {
	top := elementTop + elementHeight/2 - containerHeight/2
	if top < 0 {
		return 0
	}
	return top
}

package narration

import (
	"story-time/internal/domain"
)

// Layout is the measured position of one rendered segment inside the scroll
// container, in the container's coordinate space.
type Layout struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Viewport is the last known geometry of the scroll container and its segments.
type Viewport struct {
	ScrollTop float64                      `json:"scroll_top"`
	Height    float64                      `json:"height"`
	Elements  map[domain.SegmentKey]Layout `json:"-"`
}

// ScrollTarget asks the view to animate its container to Top so that the
// segment identified by Key ends up centered.
type ScrollTarget struct {
	Key domain.SegmentKey
	Top float64
}

// Event reports a change of the active segment. Active is false when playback
// moved into a gap or past the last segment.
type Event struct {
	Time     float64
	Segment  domain.Segment
	Active   bool
	Previous domain.Segment
	Had      bool
	Scroll   *ScrollTarget
}

// Tracker keeps the active segment for one reader view. It is owned by a
// single event stream and is not safe for concurrent use.
type Tracker struct {
	segments  []domain.Segment
	active    domain.Segment
	hasActive bool
	viewport  Viewport
	scroll    *ScrollTarget
	listeners map[int]func(Event)
	nextID    int
	closed    bool
}

// NewTracker creates a tracker over segments with nothing active.
func NewTracker(segments []domain.Segment) *Tracker {
	return &Tracker{
		segments:  segments,
		listeners: make(map[int]func(Event)),
	}
}

// Subscribe registers fn for every segment change. The returned func removes it.
func (t *Tracker) Subscribe(fn func(Event)) func() {
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn
	return func() { delete(t.listeners, id) }
}

// Active returns the currently highlighted segment.
func (t *Tracker) Active() (domain.Segment, bool) {
	return t.active, t.hasActive
}

// Segments returns the sequence the tracker resolves against.
func (t *Tracker) Segments() []domain.Segment {
	return t.segments
}

// SetViewport records the latest container geometry reported by the view.
func (t *Tracker) SetViewport(v Viewport) {
	if t.closed {
		return
	}
	t.viewport = v
}

// PendingScroll returns the scroll animation that has been requested and not
// yet completed or cancelled.
func (t *Tracker) PendingScroll() (ScrollTarget, bool) {
	if t.scroll == nil {
		return ScrollTarget{}, false
	}
	return *t.scroll, true
}

// CompleteScroll marks the in-flight scroll animation as finished.
func (t *Tracker) CompleteScroll() {
	t.scroll = nil
}

// Update resolves the segment at time and emits an Event when its identity
// differs from the previously active one.
func (t *Tracker) Update(time float64) (Event, bool) {
	if t.closed {
		return Event{}, false
	}
	seg, ok := ResolveActiveSegment(t.segments, time)
	if ok == t.hasActive && (!ok || seg.Key() == t.active.Key()) {
		return Event{}, false
	}
	return t.transition(time, seg, ok), true
}

// SetSegments swaps the segment sequence, typically after a locale switch,
// and re-resolves at time without regard to what was active before. An event
// is emitted whenever a segment is active afterwards or one was active before.
func (t *Tracker) SetSegments(segments []domain.Segment, time float64) (Event, bool) {
	if t.closed {
		return Event{}, false
	}
	t.segments = segments
	t.scroll = nil
	// Element layouts belong to the old text and are re-measured by the view.
	t.viewport.Elements = nil
	seg, ok := ResolveActiveSegment(segments, time)
	if !ok && !t.hasActive {
		return Event{}, false
	}
	return t.transition(time, seg, ok), true
}

// Close cancels any in-flight scroll and detaches all listeners. Further
// updates are ignored.
func (t *Tracker) Close() {
	t.closed = true
	t.scroll = nil
	t.listeners = make(map[int]func(Event))
}

func (t *Tracker) transition(time float64, seg domain.Segment, ok bool) Event {
	ev := Event{
		Time:     time,
		Segment:  seg,
		Active:   ok,
		Previous: t.active,
		Had:      t.hasActive,
	}
	t.active, t.hasActive = seg, ok

	if ok {
		ev.Scroll = t.scrollFor(seg)
		t.scroll = ev.Scroll
	}
	for _, fn := range t.listeners {
		fn(ev)
	}
	return ev
}

func (t *Tracker) scrollFor(seg domain.Segment) *ScrollTarget {
	layout, ok := t.viewport.Elements[seg.Key()]
	if !ok || t.viewport.Height <= 0 {
		return nil
	}
	if !MustScroll(layout.Top, t.viewport.ScrollTop, t.viewport.Height, layout.Height) {
		return nil
	}
	return &ScrollTarget{
		Key: seg.Key(),
		Top: CenteredScrollTop(layout.Top, layout.Height, t.viewport.Height),
	}
}

// Package playback wraps a single narration audio resource and turns its raw
// media events into playing/paused, mute and position state.
package playback

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// EventKind identifies a raw media event.
type EventKind string

const (
	EventTimeUpdate     EventKind = "timeupdate"
	EventLoadedMetadata EventKind = "loadedmetadata"
	EventEnded          EventKind = "ended"
	EventError          EventKind = "error"
)

// MediaEvent is what an AudioSource reports. Time is set for timeupdate,
// Duration for loadedmetadata.
type MediaEvent struct {
	Kind     EventKind
	Time     float64
	Duration float64
}

// ParseEventKind maps the media element's event name onto an EventKind.
func ParseEventKind(name string) (EventKind, error) {
	switch kind := EventKind(strings.ToLower(strings.TrimSpace(name))); kind {
	case EventTimeUpdate, EventLoadedMetadata, EventEnded, EventError:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown media event %q", name)
	}
}

// AudioSource is the underlying audio resource the Controller drives.
type AudioSource interface {
	Load(src string) error
	Play() error
	Pause() error
	SetMuted(muted bool) error
	// Subscribe registers fn for every media event. The returned func removes it.
	Subscribe(fn func(MediaEvent)) (unsubscribe func())
}

// ErrNoSource is returned when a source URL is empty or cannot be parsed.
var ErrNoSource = errors.New("no audio source")

// RemoteSource is an AudioSource whose media element lives in the page. The
// page reports element events through Report; commands are recorded so the
// view can mirror them on the real element.
type RemoteSource struct {
	src       string
	playing   bool
	muted     bool
	listeners map[int]func(MediaEvent)
	nextID    int
}

// NewRemoteSource creates an unloaded RemoteSource.
func NewRemoteSource() *RemoteSource {
	return &RemoteSource{listeners: make(map[int]func(MediaEvent))}
}

// Load validates src and makes it current. Relative asset paths are accepted.
func (r *RemoteSource) Load(src string) error {
	src = strings.TrimSpace(src)
	if src == "" {
		return ErrNoSource
	}
	if _, err := url.Parse(src); err != nil {
		return fmt.Errorf("%w: %v", ErrNoSource, err)
	}
	r.src = src
	r.playing = false
	return nil
}

func (r *RemoteSource) Play() error {
	if r.src == "" {
		return ErrNoSource
	}
	r.playing = true
	return nil
}

func (r *RemoteSource) Pause() error {
	r.playing = false
	return nil
}

func (r *RemoteSource) SetMuted(muted bool) error {
	r.muted = muted
	return nil
}

func (r *RemoteSource) Subscribe(fn func(MediaEvent)) func() {
	id := r.nextID
	r.nextID++
	r.listeners[id] = fn
	return func() { delete(r.listeners, id) }
}

// Report forwards an event observed on the page's media element.
func (r *RemoteSource) Report(ev MediaEvent) {
	if ev.Kind == EventEnded || ev.Kind == EventError {
		r.playing = false
	}
	for _, fn := range r.listeners {
		fn(ev)
	}
}

// Src returns the loaded source URL.
func (r *RemoteSource) Src() string { return r.src }

// Playing reports the last play/pause command.
func (r *RemoteSource) Playing() bool { return r.playing }

// Muted reports the last mute command.
func (r *RemoteSource) Muted() bool { return r.muted }

// Listeners returns the number of attached subscribers.
func (r *RemoteSource) Listeners() int { return len(r.listeners) }

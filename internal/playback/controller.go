package playback

import (
	"fmt"
	"math"

	"story-time/internal/domain"
	"story-time/internal/logger"

	"go.uber.org/zap"
)

// State is a snapshot of the controller.
type State struct {
	Src       string
	Available bool
	Playing   bool
	Muted     bool
	Position  domain.Position
}

// Controller owns the playing/paused, mute and position state of one audio
// resource. It never returns errors from the source to its callers: a missing
// or broken source leaves it paused at zero with Available false.
// A Controller is driven by a single event stream and is not safe for
// concurrent use.
type Controller struct {
	source      AudioSource
	unsubscribe func()
	state       State

	onPosition map[int]func(float64)
	onMetadata map[int]func(float64)
	onEnded    map[int]func()
	nextID     int
}

// NewController attaches to source. Call Detach when the view goes away.
func NewController(source AudioSource) *Controller {
	c := &Controller{
		source:     source,
		onPosition: make(map[int]func(float64)),
		onMetadata: make(map[int]func(float64)),
		onEnded:    make(map[int]func()),
	}
	c.unsubscribe = source.Subscribe(c.handle)
	return c
}

// Load (re)initializes playback for src: position 0, duration unknown, paused.
func (c *Controller) Load(src string) {
	if c.state.Playing {
		if err := c.source.Pause(); err != nil {
			logger.Get().Warn("Failed to pause audio", zap.String("src", c.state.Src), zap.Error(err))
		}
	}
	c.state = State{Muted: c.state.Muted}
	if err := c.source.Load(src); err != nil {
		logger.Get().Warn("Audio source unavailable",
			zap.String("src", src),
			zap.Error(err),
		)
		return
	}
	c.state.Src = src
	c.state.Available = true
}

// TogglePlayPause flips the observed playing state and returns the new value.
// It is a no-op while no source is available.
func (c *Controller) TogglePlayPause() bool {
	if !c.state.Available {
		return false
	}
	if c.state.Playing {
		if err := c.source.Pause(); err != nil {
			logger.Get().Warn("Failed to pause audio", zap.String("src", c.state.Src), zap.Error(err))
		}
		c.state.Playing = false
		return false
	}
	if err := c.source.Play(); err != nil {
		logger.Get().Warn("Failed to start audio", zap.String("src", c.state.Src), zap.Error(err))
		return false
	}
	c.state.Playing = true
	return true
}

// ToggleMute flips the mute flag and returns the new value. Position
// tracking is not affected.
func (c *Controller) ToggleMute() bool {
	muted := !c.state.Muted
	if err := c.source.SetMuted(muted); err != nil {
		logger.Get().Warn("Failed to change mute state", zap.Bool("muted", muted), zap.Error(err))
		return c.state.Muted
	}
	c.state.Muted = muted
	return muted
}

// OnPositionChanged registers fn for every playback tick.
func (c *Controller) OnPositionChanged(fn func(time float64)) func() {
	id := c.register()
	c.onPosition[id] = fn
	return func() { delete(c.onPosition, id) }
}

// OnMetadataLoaded registers fn for the moment the duration becomes known.
func (c *Controller) OnMetadataLoaded(fn func(duration float64)) func() {
	id := c.register()
	c.onMetadata[id] = fn
	return func() { delete(c.onMetadata, id) }
}

// OnEnded registers fn for end of media.
func (c *Controller) OnEnded(fn func()) func() {
	id := c.register()
	c.onEnded[id] = fn
	return func() { delete(c.onEnded, id) }
}

// Detach removes the controller from its source and drops every listener.
func (c *Controller) Detach() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	if c.state.Playing {
		_ = c.source.Pause()
		c.state.Playing = false
	}
	c.onPosition = make(map[int]func(float64))
	c.onMetadata = make(map[int]func(float64))
	c.onEnded = make(map[int]func())
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) register() int {
	id := c.nextID
	c.nextID++
	return id
}

func (c *Controller) handle(ev MediaEvent) {
	if !c.state.Available {
		return
	}
	switch ev.Kind {
	case EventTimeUpdate:
		if math.IsNaN(ev.Time) || ev.Time < 0 {
			return
		}
		c.state.Position.Current = ev.Time
		for _, fn := range c.onPosition {
			fn(ev.Time)
		}
	case EventLoadedMetadata:
		if c.state.Position.DurationKnown || math.IsNaN(ev.Duration) || math.IsInf(ev.Duration, 0) || ev.Duration < 0 {
			return
		}
		c.state.Position.Duration = ev.Duration
		c.state.Position.DurationKnown = true
		for _, fn := range c.onMetadata {
			fn(ev.Duration)
		}
	case EventEnded:
		c.state.Playing = false
		c.state.Position.Current = 0
		for _, fn := range c.onEnded {
			fn()
		}
	case EventError:
		logger.Get().Warn("Audio source failed", zap.String("src", c.state.Src))
		c.state = State{Muted: c.state.Muted}
	}
}

// FormatTime renders seconds as m:ss. NaN and negative values render as 0:00.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "0:00"
	}
	mins := int(seconds / 60)
	secs := int(math.Mod(seconds, 60))
	return fmt.Sprintf("%d:%02d", mins, secs)
}

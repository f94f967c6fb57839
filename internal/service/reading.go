package service

import (
	"context"
	"time"

	"story-time/internal/domain"
	"story-time/internal/dto"
	"story-time/internal/locale"
	"story-time/internal/logger"
	"story-time/internal/narration"
	"story-time/internal/playback"

	"go.uber.org/zap"
)

// Page-reported event types that are not media events.
const (
	EventLayout    = "layout"
	EventScrollEnd = "scrollend"
)

// ReadingService manages reading sessions: one Playback Controller and one
// Narration Tracker per open reader view.
type ReadingService interface {
	Open(ctx context.Context, storyID, locale string) (*dto.ReadingView, error)
	Get(ctx context.Context, sessionID string) (*dto.ReadingView, error)
	HandleEvent(ctx context.Context, sessionID string, req *dto.ReadingEventRequest) (*dto.ReadingEventResponse, error)
	TogglePlayPause(ctx context.Context, sessionID string) (*dto.ReadingView, error)
	ToggleMute(ctx context.Context, sessionID string) (*dto.ReadingView, error)
	SetLocale(ctx context.Context, sessionID, locale string) (*dto.ReadingEventResponse, error)
	Close(ctx context.Context, sessionID string) error
	// Run expires idle sessions until ctx is done.
	Run(ctx context.Context, sweepInterval time.Duration)
}

type readingService struct {
	catalog  domain.StoryCatalog
	locales  LocaleResolver
	sessions *sessionRegistry[*readingSession]
}

// NewReadingService creates a new ReadingService. Sessions idle for longer
// than ttl are closed by Run.
func NewReadingService(catalog domain.StoryCatalog, locales LocaleResolver, ttl time.Duration) ReadingService {
	return &readingService{
		catalog:  catalog,
		locales:  locales,
		sessions: newSessionRegistry[*readingSession]("reading", ttl),
	}
}

func (s *readingService) Open(ctx context.Context, storyID, loc string) (*dto.ReadingView, error) {
	story, ok := s.catalog.GetStoryByID(ctx, storyID)
	if !ok {
		return nil, domain.NewStoryNotFoundError(storyID)
	}
	l := s.locales.Resolve(loc)

	var view *dto.ReadingView
	id, err := s.sessions.add(func(id string) (*readingSession, error) {
		rs := newReadingSession(id, story, l)
		view = rs.view()
		return rs, nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Reading session opened",
		zap.String("session_id", id),
		zap.String("story_id", storyID),
		zap.String("locale", l.String()),
		zap.Bool("audio_available", view.Player.Available),
	)
	return view, nil
}

func (s *readingService) Get(ctx context.Context, sessionID string) (*dto.ReadingView, error) {
	var view *dto.ReadingView
	err := s.sessions.with(sessionID, func(rs *readingSession) error {
		view = rs.view()
		return nil
	})
	return view, err
}

func (s *readingService) HandleEvent(ctx context.Context, sessionID string, req *dto.ReadingEventRequest) (*dto.ReadingEventResponse, error) {
	var resp *dto.ReadingEventResponse
	err := s.sessions.with(sessionID, func(rs *readingSession) error {
		change, err := rs.handle(req)
		if err != nil {
			return err
		}
		resp = &dto.ReadingEventResponse{Change: change, View: *rs.view()}
		return nil
	})
	return resp, err
}

func (s *readingService) TogglePlayPause(ctx context.Context, sessionID string) (*dto.ReadingView, error) {
	var view *dto.ReadingView
	err := s.sessions.with(sessionID, func(rs *readingSession) error {
		rs.player.TogglePlayPause()
		view = rs.view()
		return nil
	})
	return view, err
}

func (s *readingService) ToggleMute(ctx context.Context, sessionID string) (*dto.ReadingView, error) {
	var view *dto.ReadingView
	err := s.sessions.with(sessionID, func(rs *readingSession) error {
		rs.player.ToggleMute()
		view = rs.view()
		return nil
	})
	return view, err
}

func (s *readingService) SetLocale(ctx context.Context, sessionID, loc string) (*dto.ReadingEventResponse, error) {
	l, ok := s.locales.Parse(loc)
	if !ok {
		return nil, domain.NewInvalidLocaleError(loc)
	}
	var resp *dto.ReadingEventResponse
	err := s.sessions.with(sessionID, func(rs *readingSession) error {
		change := rs.setLocale(l)
		resp = &dto.ReadingEventResponse{Change: change, View: *rs.view()}
		return nil
	})
	return resp, err
}

func (s *readingService) Close(ctx context.Context, sessionID string) error {
	if err := s.sessions.remove(sessionID); err != nil {
		return err
	}
	logger.Get().Info("Reading session closed", zap.String("session_id", sessionID))
	return nil
}

func (s *readingService) Run(ctx context.Context, sweepInterval time.Duration) {
	s.sessions.run(ctx, sweepInterval)
}

// readingSession wires a RemoteSource, a Controller and a Tracker together
// for one reader view.
type readingSession struct {
	id      string
	story   domain.Story
	locale  domain.Locale
	source  *playback.RemoteSource
	player  *playback.Controller
	tracker *narration.Tracker

	audioLoaded bool
	// change is the segment change produced while handling the current call.
	change *narration.Event
	unsubs []func()
}

func newReadingSession(id string, story domain.Story, l domain.Locale) *readingSession {
	source := playback.NewRemoteSource()
	rs := &readingSession{
		id:      id,
		story:   story,
		locale:  l,
		source:  source,
		player:  playback.NewController(source),
		tracker: narration.NewTracker(story.Segments(l)),
	}
	rs.unsubs = append(rs.unsubs,
		rs.player.OnPositionChanged(func(t float64) {
			rs.tracker.Update(t)
		}),
		rs.player.OnMetadataLoaded(func(float64) {
			rs.audioLoaded = true
		}),
		rs.tracker.Subscribe(func(ev narration.Event) {
			rs.change = &ev
		}),
	)
	rs.player.Load(story.AudioSource(l))
	return rs
}

func (rs *readingSession) handle(req *dto.ReadingEventRequest) (*dto.SegmentChange, error) {
	rs.change = nil

	switch req.Type {
	case EventLayout:
		rs.tracker.SetViewport(toViewport(req))
		return nil, nil
	case EventScrollEnd:
		rs.tracker.CompleteScroll()
		return nil, nil
	}

	kind, err := playback.ParseEventKind(req.Type)
	if err != nil {
		return nil, domain.NewInvalidInputError(err.Error())
	}
	ev := playback.MediaEvent{Kind: kind}
	switch kind {
	case playback.EventTimeUpdate:
		if req.Time == nil {
			return nil, domain.NewInvalidInputError("time is required for timeupdate")
		}
		ev.Time = *req.Time
	case playback.EventLoadedMetadata:
		if req.Duration == nil {
			return nil, domain.NewInvalidInputError("duration is required for loadedmetadata")
		}
		ev.Duration = *req.Duration
	case playback.EventError:
		rs.audioLoaded = false
	}
	rs.source.Report(ev)
	return rs.takeChange(), nil
}

// setLocale swaps the narration text and re-resolves the highlight at the
// current playback position. When the locale has its own recording the audio
// is reloaded first, so the highlight restarts from zero; otherwise the loaded
// audio keeps playing.
func (rs *readingSession) setLocale(l domain.Locale) *dto.SegmentChange {
	rs.change = nil
	rs.locale = l
	if src := rs.story.AudioSource(l); src != rs.player.State().Src {
		rs.audioLoaded = false
		rs.player.Load(src)
	}
	rs.tracker.SetSegments(rs.story.Segments(l), rs.player.State().Position.Current)
	return rs.takeChange()
}

func (rs *readingSession) takeChange() *dto.SegmentChange {
	ev := rs.change
	rs.change = nil
	if ev == nil {
		return nil
	}
	change := &dto.SegmentChange{
		Transition: ev.Had,
		Scroll:     toScrollResponse(ev.Scroll),
	}
	if ev.Active {
		change.ActiveKey = ev.Segment.Key().String()
	}
	if ev.Had {
		change.PreviousKey = ev.Previous.Key().String()
	}
	return change
}

func (rs *readingSession) view() *dto.ReadingView {
	st := rs.player.State()
	view := &dto.ReadingView{
		SessionID: rs.id,
		StoryID:   rs.story.ID,
		Locale:    rs.locale.String(),
		Title:     rs.story.Title.Lookup(rs.locale),
		Segments:  toSegmentResponses(rs.tracker.Segments()),
		Player: dto.PlayerView{
			AudioSrc:      st.Src,
			Available:     st.Available,
			Loaded:        rs.audioLoaded,
			Playing:       st.Playing,
			Muted:         st.Muted,
			CurrentTime:   st.Position.Current,
			Duration:      st.Position.Duration,
			Progress:      st.Position.Progress(),
			CurrentLabel:  playback.FormatTime(st.Position.Current),
			DurationLabel: playback.FormatTime(st.Position.Duration),
			PlayLabel:     locale.T(rs.locale, locale.MsgPlay),
			MuteLabel:     locale.T(rs.locale, locale.MsgMute),
		},
	}
	if st.Playing {
		view.Player.PlayLabel = locale.T(rs.locale, locale.MsgPause)
	}
	if st.Muted {
		view.Player.MuteLabel = locale.T(rs.locale, locale.MsgUnmute)
	}
	if seg, ok := rs.tracker.Active(); ok {
		view.ActiveKey = seg.Key().String()
	}
	if target, ok := rs.tracker.PendingScroll(); ok {
		view.Scroll = toScrollResponse(&target)
	}
	return view
}

func (rs *readingSession) close() {
	for _, unsub := range rs.unsubs {
		unsub()
	}
	rs.unsubs = nil
	rs.player.Detach()
	rs.tracker.Close()
}

func toViewport(req *dto.ReadingEventRequest) narration.Viewport {
	elements := make(map[domain.SegmentKey]narration.Layout, len(req.Elements))
	for _, el := range req.Elements {
		key := domain.SegmentKey{Start: el.Start, End: el.End}
		elements[key] = narration.Layout{Top: el.Top, Height: el.Height}
	}
	return narration.Viewport{
		ScrollTop: req.ScrollTop,
		Height:    req.Height,
		Elements:  elements,
	}
}

func toScrollResponse(target *narration.ScrollTarget) *dto.ScrollResponse {
	if target == nil {
		return nil
	}
	return &dto.ScrollResponse{Key: target.Key.String(), Top: target.Top}
}

package dto

// OpenSessionRequest opens a reading or quiz session.
type OpenSessionRequest struct {
	Locale string `json:"locale,omitempty"`
}

// ScrollResponse asks the page to animate its container to Top.
type ScrollResponse struct {
	Key string  `json:"key"`
	Top float64 `json:"top"`
}

// PlayerView is the audio player state.
type PlayerView struct {
	AudioSrc      string  `json:"audio_src,omitempty"`
	Available     bool    `json:"available"`
	Loaded        bool    `json:"audio_loaded"`
	Playing       bool    `json:"playing"`
	Muted         bool    `json:"muted"`
	CurrentTime   float64 `json:"current_time"`
	Duration      float64 `json:"duration"`
	Progress      float64 `json:"progress"`
	CurrentLabel  string  `json:"current_label"`
	DurationLabel string  `json:"duration_label"`
	PlayLabel     string  `json:"play_label"`
	MuteLabel     string  `json:"mute_label"`
}

// ReadingView is the full state of a reading session.
// @Description Reading session state
type ReadingView struct {
	SessionID string            `json:"session_id"`
	StoryID   string            `json:"story_id"`
	Locale    string            `json:"locale"`
	Title     string            `json:"title"`
	Segments  []SegmentResponse `json:"segments"`
	ActiveKey string            `json:"active_key,omitempty"`
	Scroll    *ScrollResponse   `json:"scroll,omitempty"`
	Player    PlayerView        `json:"player"`
}

// SegmentChange describes a highlight change caused by the request.
// Transition is false for the first highlight of a session.
type SegmentChange struct {
	ActiveKey   string          `json:"active_key,omitempty"`
	PreviousKey string          `json:"previous_key,omitempty"`
	Transition  bool            `json:"transition"`
	Scroll      *ScrollResponse `json:"scroll,omitempty"`
}

// ElementLayout is the measured position of one rendered segment.
type ElementLayout struct {
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// ReadingEventRequest is an event reported by the page.
// Type is one of timeupdate, loadedmetadata, ended, error, layout or
// scrollend. The geometry fields are only read for layout.
// @Description Page-reported media or layout event
type ReadingEventRequest struct {
	Type      string          `json:"type"`
	Time      *float64        `json:"time,omitempty"`
	Duration  *float64        `json:"duration,omitempty"`
	ScrollTop float64         `json:"scroll_top,omitempty"`
	Height    float64         `json:"height,omitempty"`
	Elements  []ElementLayout `json:"elements,omitempty"`
}

// ReadingEventResponse carries the change, if any, and the resulting view.
type ReadingEventResponse struct {
	Change *SegmentChange `json:"change,omitempty"`
	View   ReadingView    `json:"view"`
}

// SetLocaleRequest switches the session's locale.
type SetLocaleRequest struct {
	Locale string `json:"locale"`
}

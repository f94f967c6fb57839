package dto

// StorySummary is one card of the story carousel.
// @Description Story catalog entry
type StorySummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Cover      string `json:"cover,omitempty"`
	ComingSoon bool   `json:"coming_soon"`
	HasQuiz    bool   `json:"has_quiz"`
}

// StoryListResponse is the catalog in one locale.
type StoryListResponse struct {
	Locale  string         `json:"locale"`
	Stories []StorySummary `json:"stories"`
}

// SegmentResponse is one narration segment. Key is the identity the page
// uses to report element layout and to match highlights.
type SegmentResponse struct {
	Key   string  `json:"key"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// StoryResponse is the reader view of a story before a session is opened.
// @Description Localized story detail
type StoryResponse struct {
	ID       string            `json:"id"`
	Locale   string            `json:"locale"`
	Title    string            `json:"title"`
	Cover    string            `json:"cover,omitempty"`
	AudioSrc string            `json:"audio_src,omitempty"`
	Segments []SegmentResponse `json:"segments"`
	HasQuiz  bool              `json:"has_quiz"`
}

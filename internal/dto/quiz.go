package dto

// Option states
const (
	OptionCorrect   = "correct"
	OptionIncorrect = "incorrect"
	OptionSelected  = "selected"
)

// QuizOption is one answer button.
type QuizOption struct {
	Index    int    `json:"index"`
	Text     string `json:"text"`
	State    string `json:"state,omitempty"`
	Disabled bool   `json:"disabled"`
}

// QuizResult is shown once the quiz is complete.
type QuizResult struct {
	Title        string `json:"title"`
	Score        int    `json:"score"`
	Total        int    `json:"total"`
	Percentage   int    `json:"percentage"`
	Summary      string `json:"summary"`
	RestartLabel string `json:"restart_label"`
}

// QuizView is the full state of a quiz session.
// @Description Quiz session state
type QuizView struct {
	SessionID      string       `json:"session_id"`
	StoryID        string       `json:"story_id"`
	Locale         string       `json:"locale"`
	Status         string       `json:"status"`
	QuestionNumber int          `json:"question_number"`
	Total          int          `json:"total"`
	QuestionLabel  string       `json:"question_label"`
	ScoreLabel     string       `json:"score_label"`
	Score          int          `json:"score"`
	Progress       float64      `json:"progress"`
	Question       string       `json:"question,omitempty"`
	Options        []QuizOption `json:"options,omitempty"`
	Revealed       bool         `json:"revealed"`
	Feedback       string       `json:"feedback,omitempty"`
	NextLabel      string       `json:"next_label,omitempty"`
	Result         *QuizResult  `json:"result,omitempty"`
}

// AnswerRequest selects an option of the current question.
// @Description Answer selection
type AnswerRequest struct {
	Option *int `json:"option"`
}

// AnswerResponse reports whether the selection was applied. A question that
// was already answered is not re-scored.
type AnswerResponse struct {
	Applied bool     `json:"applied"`
	View    QuizView `json:"view"`
}

package models

import "time"

// QuizScore is a row of the quiz_scores table.
type QuizScore struct {
	StoryID   string    `db:"STORY_ID"`
	Score     int       `db:"SCORE"`
	UpdatedAt time.Time `db:"UPDATED_AT"`
}

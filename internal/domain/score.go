package domain

import (
	"context"
	"errors"
)

// ErrScoreNotFound is returned by a ScoreStore when no score is persisted for a story.
var ErrScoreNotFound = errors.New("score not found")

// ScoreStore persists the per-story quiz score. It is the only state that
// outlives a session.
type ScoreStore interface {
	// Load returns the persisted score, or ErrScoreNotFound.
	Load(ctx context.Context, storyID string) (int, error)
	// Save writes the score through immediately.
	Save(ctx context.Context, storyID string, score int) error
	// Delete erases the score. Deleting a missing score is not an error.
	Delete(ctx context.Context, storyID string) error
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"story-time/internal/domain"
	"story-time/internal/repository/models"
)

const (
	selectScoreQuery = `SELECT story_id, score, updated_at FROM quiz_scores WHERE story_id = :1`

	mergeScoreQuery = `MERGE INTO quiz_scores t
USING (SELECT :1 AS story_id, :2 AS score FROM dual) s
ON (t.story_id = s.story_id)
WHEN MATCHED THEN UPDATE SET t.score = s.score, t.updated_at = SYSTIMESTAMP
WHEN NOT MATCHED THEN INSERT (story_id, score, updated_at) VALUES (s.story_id, s.score, SYSTIMESTAMP)`

	deleteScoreQuery = `DELETE FROM quiz_scores WHERE story_id = :1`
)

// ScoreRepository is the Oracle-backed domain.ScoreStore.
type ScoreRepository struct {
	db DBTX
}

// NewScoreRepository creates a new ScoreRepository.
func NewScoreRepository(db DBTX) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// Load returns domain.ErrScoreNotFound when the story has no row.
func (r *ScoreRepository) Load(ctx context.Context, storyID string) (int, error) {
	var row models.QuizScore
	if err := r.db.GetContext(ctx, &row, selectScoreQuery, storyID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrScoreNotFound
		}
		return 0, fmt.Errorf("failed to load score for story %s: %w", storyID, err)
	}
	return row.Score, nil
}

// Save upserts the score row.
func (r *ScoreRepository) Save(ctx context.Context, storyID string, score int) error {
	if _, err := r.db.ExecContext(ctx, mergeScoreQuery, storyID, score); err != nil {
		return fmt.Errorf("failed to save score for story %s: %w", storyID, err)
	}
	return nil
}

func (r *ScoreRepository) Delete(ctx context.Context, storyID string) error {
	if _, err := r.db.ExecContext(ctx, deleteScoreQuery, storyID); err != nil {
		return fmt.Errorf("failed to delete score for story %s: %w", storyID, err)
	}
	return nil
}

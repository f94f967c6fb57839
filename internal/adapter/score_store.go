package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"story-time/internal/cache"
	"story-time/internal/domain"
)

// CacheScoreStore persists quiz scores as decimal strings under
// cache.ScoreKey. Scores never expire.
type CacheScoreStore struct {
	cache domain.Cache
}

// NewCacheScoreStore returns a domain.ScoreStore over c.
func NewCacheScoreStore(c domain.Cache) *CacheScoreStore {
	return &CacheScoreStore{cache: c}
}

func (s *CacheScoreStore) Load(ctx context.Context, storyID string) (int, error) {
	key := cache.ScoreKey(storyID)
	raw, err := s.cache.Get(ctx, key)
	if errors.Is(err, domain.ErrCacheMiss) {
		return 0, domain.ErrScoreNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", key, err)
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("load %s: malformed score %q: %w", key, raw, err)
	}
	return score, nil
}

func (s *CacheScoreStore) Save(ctx context.Context, storyID string, score int) error {
	key := cache.ScoreKey(storyID)
	if err := s.cache.Set(ctx, key, strconv.Itoa(score), 0); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *CacheScoreStore) Delete(ctx context.Context, storyID string) error {
	key := cache.ScoreKey(storyID)
	if err := s.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Ping reports whether the backing cache is reachable.
func (s *CacheScoreStore) Ping(ctx context.Context) error {
	return s.cache.Ping(ctx)
}

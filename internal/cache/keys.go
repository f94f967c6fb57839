package cache

import "strings"

// ScoreKeyPrefix is the storage key prefix for persisted quiz scores. The
// full key matches the one the page shell uses in local storage.
const ScoreKeyPrefix = "quiz-score-"

// ScoreKey returns the persisted score key for storyID.
func ScoreKey(storyID string) string {
	return ScoreKeyPrefix + storyID
}

// StoryIDFromScoreKey reverses ScoreKey. It reports false for keys that are
// not score keys.
func StoryIDFromScoreKey(key string) (string, bool) {
	if !strings.HasPrefix(key, ScoreKeyPrefix) || len(key) == len(ScoreKeyPrefix) {
		return "", false
	}
	return strings.TrimPrefix(key, ScoreKeyPrefix), true
}

package domain

import "context"

// StoryCatalog is the read side of the story catalog.
type StoryCatalog interface {
	LoadStories(ctx context.Context) []Story
	GetStoryByID(ctx context.Context, id string) (Story, bool)
}

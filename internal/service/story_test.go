package service

import (
	"context"
	"testing"

	"story-time/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoryService_ListStories(t *testing.T) {
	catalog := &MockStoryCatalog{}
	soon := domain.Story{ID: "soon", Title: domain.Localized[string]{domain.LocaleEnglish: "Soon"}, ComingSoon: true}
	catalog.On("LoadStories", mock.Anything).Return([]domain.Story{foxStory(), soon})

	svc := NewStoryService(catalog, newTestResolver(t))

	resp := svc.ListStories(context.Background(), "fil")
	assert.Equal(t, "fil", resp.Locale)
	require.Len(t, resp.Stories, 2)
	assert.Equal(t, "Ang Soro", resp.Stories[0].Title)
	assert.True(t, resp.Stories[0].HasQuiz)
	assert.Equal(t, "Soon", resp.Stories[1].Title, "missing locale falls back to en")
	assert.True(t, resp.Stories[1].ComingSoon)
	assert.False(t, resp.Stories[1].HasQuiz)
}

func TestStoryService_ListStoriesEmptyCatalog(t *testing.T) {
	catalog := &MockStoryCatalog{}
	catalog.On("LoadStories", mock.Anything).Return([]domain.Story{})

	resp := NewStoryService(catalog, newTestResolver(t)).ListStories(context.Background(), "")
	assert.Equal(t, "en", resp.Locale)
	assert.NotNil(t, resp.Stories)
	assert.Empty(t, resp.Stories)
}

func TestStoryService_GetStory(t *testing.T) {
	catalog := &MockStoryCatalog{}
	catalog.On("GetStoryByID", mock.Anything, "fox").Return(foxStory(), true)
	catalog.On("GetStoryByID", mock.Anything, "nope").Return(domain.Story{}, false)
	svc := NewStoryService(catalog, newTestResolver(t))

	t.Run("localized view", func(t *testing.T) {
		resp, err := svc.GetStory(context.Background(), "fox", "fil")
		require.NoError(t, err)
		assert.Equal(t, "Ang Soro", resp.Title)
		assert.Equal(t, "/audio/fox-en.mp3", resp.AudioSrc, "audio falls back to en")
		require.Len(t, resp.Segments, 2)
		assert.Equal(t, "Isa", resp.Segments[0].Text)
		assert.Equal(t, "0-4", resp.Segments[0].Key)
	})

	t.Run("unsupported locale uses current", func(t *testing.T) {
		resp, err := svc.GetStory(context.Background(), "fox", "ja")
		require.NoError(t, err)
		assert.Equal(t, "en", resp.Locale)
		assert.Equal(t, "The Fox", resp.Title)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetStory(context.Background(), "nope", "en")
		var derr *domain.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, domain.CodeStoryNotFound, derr.Code)
	})
}

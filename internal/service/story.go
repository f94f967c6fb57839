package service

import (
	"context"

	"story-time/internal/domain"
	"story-time/internal/dto"
	"story-time/internal/logger"

	"go.uber.org/zap"
)

// LocaleResolver picks the locale a request renders in.
type LocaleResolver interface {
	// Resolve returns explicit when it names a supported locale, otherwise
	// the process-wide current locale.
	Resolve(explicit string) domain.Locale
	// Parse maps value onto a supported locale.
	Parse(value string) (domain.Locale, bool)
}

// StoryService serves the catalog and the pre-session reader view.
type StoryService interface {
	ListStories(ctx context.Context, locale string) *dto.StoryListResponse
	GetStory(ctx context.Context, id, locale string) (*dto.StoryResponse, error)
}

type storyService struct {
	catalog domain.StoryCatalog
	locales LocaleResolver
}

// NewStoryService creates a new StoryService.
func NewStoryService(catalog domain.StoryCatalog, locales LocaleResolver) StoryService {
	return &storyService{catalog: catalog, locales: locales}
}

func (s *storyService) ListStories(ctx context.Context, locale string) *dto.StoryListResponse {
	l := s.locales.Resolve(locale)
	stories := s.catalog.LoadStories(ctx)

	resp := &dto.StoryListResponse{
		Locale:  l.String(),
		Stories: make([]dto.StorySummary, 0, len(stories)),
	}
	for _, story := range stories {
		resp.Stories = append(resp.Stories, dto.StorySummary{
			ID:         story.ID,
			Title:      story.Title.Lookup(l),
			Cover:      story.Cover,
			ComingSoon: story.ComingSoon,
			HasQuiz:    story.HasQuiz(),
		})
	}
	return resp
}

func (s *storyService) GetStory(ctx context.Context, id, locale string) (*dto.StoryResponse, error) {
	story, ok := s.catalog.GetStoryByID(ctx, id)
	if !ok {
		logger.Get().Info("Story not found", zap.String("story_id", id))
		return nil, domain.NewStoryNotFoundError(id)
	}
	l := s.locales.Resolve(locale)

	return &dto.StoryResponse{
		ID:       story.ID,
		Locale:   l.String(),
		Title:    story.Title.Lookup(l),
		Cover:    story.Cover,
		AudioSrc: story.AudioSource(l),
		Segments: toSegmentResponses(story.Segments(l)),
		HasQuiz:  story.HasQuiz(),
	}, nil
}

func toSegmentResponses(segments []domain.Segment) []dto.SegmentResponse {
	out := make([]dto.SegmentResponse, 0, len(segments))
	for _, seg := range segments {
		out = append(out, dto.SegmentResponse{
			Key:   seg.Key().String(),
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}
	return out
}

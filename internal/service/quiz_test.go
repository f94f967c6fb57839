package service

import (
	"context"
	"testing"
	"time"

	"story-time/internal/domain"
	"story-time/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQuizFixture(t *testing.T, story domain.Story, persisted int, loadErr error) (QuizService, *MockScoreStore) {
	t.Helper()
	catalog := &MockStoryCatalog{}
	catalog.On("GetStoryByID", mock.Anything, story.ID).Return(story, true)
	catalog.On("GetStoryByID", mock.Anything, mock.Anything).Return(domain.Story{}, false)

	store := &MockScoreStore{}
	store.On("Load", mock.Anything, story.ID).Return(persisted, loadErr)
	return NewQuizService(catalog, newTestResolver(t), store, time.Minute), store
}

func TestQuizService_Open(t *testing.T) {
	svc, _ := newQuizFixture(t, foxStory(), 0, domain.ErrScoreNotFound)

	view, err := svc.Open(context.Background(), "fox", "en")
	require.NoError(t, err)
	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, "in_progress", view.Status)
	assert.Equal(t, 1, view.QuestionNumber)
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, "Question 1 / 2", view.QuestionLabel)
	assert.Equal(t, "Score: 0", view.ScoreLabel)
	assert.Equal(t, 50.0, view.Progress)
	assert.Equal(t, "Who?", view.Question)
	require.Len(t, view.Options, 3)
	for _, opt := range view.Options {
		assert.Empty(t, opt.State)
		assert.False(t, opt.Disabled)
	}
	assert.Empty(t, view.NextLabel)
	assert.Nil(t, view.Result)
}

func TestQuizService_OpenLocalizedWithRestoredScore(t *testing.T) {
	svc, _ := newQuizFixture(t, foxStory(), 1, nil)

	view, err := svc.Open(context.Background(), "fox", "fil")
	require.NoError(t, err)
	assert.Equal(t, "Sino?", view.Question)
	assert.Equal(t, "soro", view.Options[0].Text)
	assert.Equal(t, "Tanong 1 / 2", view.QuestionLabel)
	assert.Equal(t, 1, view.Score)
}

func TestQuizService_OpenUnavailable(t *testing.T) {
	story := foxStory()
	story.Quiz = nil
	svc, _ := newQuizFixture(t, story, 0, domain.ErrScoreNotFound)

	_, err := svc.Open(context.Background(), "fox", "en")
	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.CodeQuizUnavailable, derr.Code)
	assert.ErrorIs(t, err, domain.ErrQuizUnavailable)
}

func TestQuizService_OpenStoryNotFound(t *testing.T) {
	svc, _ := newQuizFixture(t, foxStory(), 0, domain.ErrScoreNotFound)

	_, err := svc.Open(context.Background(), "nope", "en")
	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.CodeStoryNotFound, derr.Code)
}

func TestQuizService_AnswerFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("correct", func(t *testing.T) {
		svc, store := newQuizFixture(t, foxStory(), 0, domain.ErrScoreNotFound)
		store.On("Save", mock.Anything, "fox", 1).Return(nil).Once()
		view, err := svc.Open(ctx, "fox", "en")
		require.NoError(t, err)

		resp, err := svc.SelectAnswer(ctx, view.SessionID, 0, "en")
		require.NoError(t, err)
		assert.True(t, resp.Applied)
		assert.Equal(t, dto.OptionCorrect, resp.View.Options[0].State)
		assert.Empty(t, resp.View.Options[1].State)
		assert.True(t, resp.View.Options[1].Disabled)
		assert.Equal(t, "Correct", resp.View.Feedback)
		assert.Equal(t, "Next Question", resp.View.NextLabel)
		assert.Equal(t, 1, resp.View.Score)
		store.AssertExpectations(t)
	})

	t.Run("incorrect", func(t *testing.T) {
		svc, store := newQuizFixture(t, foxStory(), 0, domain.ErrScoreNotFound)
		view, err := svc.Open(ctx, "fox", "en")
		require.NoError(t, err)

		resp, err := svc.SelectAnswer(ctx, view.SessionID, 1, "en")
		require.NoError(t, err)
		assert.True(t, resp.Applied)
		assert.Equal(t, dto.OptionCorrect, resp.View.Options[0].State)
		assert.Equal(t, dto.OptionIncorrect, resp.View.Options[1].State)
		assert.Equal(t, "Try Again", resp.View.Feedback)
		assert.Equal(t, 0, resp.View.Score)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)

		resp, err = svc.SelectAnswer(ctx, view.SessionID, 0, "en")
		require.NoError(t, err)
		assert.False(t, resp.Applied, "answered questions are not re-scored")
		assert.Equal(t, 0, resp.View.Score)
	})

	t.Run("invalid option", func(t *testing.T) {
		svc, _ := newQuizFixture(t, foxStory(), 0, domain.ErrScoreNotFound)
		view, err := svc.Open(ctx, "fox", "en")
		require.NoError(t, err)

		_, err = svc.SelectAnswer(ctx, view.SessionID, 7, "en")
		var derr *domain.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, domain.CodeInvalidInput, derr.Code)
	})
}

func TestQuizService_NextRequiresReveal(t *testing.T) {
	ctx := context.Background()
	svc, _ := newQuizFixture(t, foxStory(), 0, domain.ErrScoreNotFound)
	view, err := svc.Open(ctx, "fox", "en")
	require.NoError(t, err)

	_, err = svc.Next(ctx, view.SessionID, "en")
	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.CodeNotRevealed, derr.Code)
}

func TestQuizService_FullRunAndRestart(t *testing.T) {
	ctx := context.Background()
	svc, store := newQuizFixture(t, foxStory(), 0, domain.ErrScoreNotFound)
	store.On("Save", mock.Anything, "fox", mock.AnythingOfType("int")).Return(nil)
	store.On("Delete", mock.Anything, "fox").Return(nil)

	view, err := svc.Open(ctx, "fox", "en")
	require.NoError(t, err)
	sid := view.SessionID

	_, err = svc.SelectAnswer(ctx, sid, 0, "en")
	require.NoError(t, err)
	view, err = svc.Next(ctx, sid, "en")
	require.NoError(t, err)
	assert.Equal(t, 2, view.QuestionNumber)
	assert.Equal(t, 100.0, view.Progress)
	assert.Equal(t, "Where?", view.Question)

	// Second question has no Filipino text and falls back to English.
	resp, err := svc.SelectAnswer(ctx, sid, 1, "fil")
	require.NoError(t, err)
	assert.Equal(t, "Where?", resp.View.Question)
	assert.Equal(t, "Tapusin ang Quiz", resp.View.NextLabel)

	view, err = svc.Next(ctx, sid, "en")
	require.NoError(t, err)
	assert.Equal(t, "complete", view.Status)
	require.NotNil(t, view.Result)
	assert.Equal(t, "Quiz Complete!", view.Result.Title)
	assert.Equal(t, 2, view.Result.Score)
	assert.Equal(t, 2, view.Result.Total)
	assert.Equal(t, 100, view.Result.Percentage)
	assert.Equal(t, "100% Correct", view.Result.Summary)
	assert.Equal(t, "Try Again", view.Result.RestartLabel)
	assert.Empty(t, view.Options)

	view, err = svc.Restart(ctx, sid, "en")
	require.NoError(t, err)
	assert.Equal(t, "in_progress", view.Status)
	assert.Equal(t, 0, view.Score)
	assert.Equal(t, 1, view.QuestionNumber)
	assert.Nil(t, view.Result)
	store.AssertCalled(t, "Delete", mock.Anything, "fox")
}

func TestQuizService_Close(t *testing.T) {
	ctx := context.Background()
	svc, _ := newQuizFixture(t, foxStory(), 0, domain.ErrScoreNotFound)
	view, err := svc.Open(ctx, "fox", "en")
	require.NoError(t, err)

	require.NoError(t, svc.Close(ctx, view.SessionID))
	_, err = svc.Get(ctx, view.SessionID, "en")
	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.CodeSessionNotFound, derr.Code)
}

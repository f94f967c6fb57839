package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"story-time/internal/domain"
	"story-time/internal/dto"
	"story-time/internal/locale"
	"story-time/internal/logger"
	"story-time/internal/quiz"

	"go.uber.org/zap"
)

// QuizService manages quiz sessions: one Quiz State Machine per open quiz view.
type QuizService interface {
	Open(ctx context.Context, storyID, locale string) (*dto.QuizView, error)
	Get(ctx context.Context, sessionID, locale string) (*dto.QuizView, error)
	SelectAnswer(ctx context.Context, sessionID string, option int, locale string) (*dto.AnswerResponse, error)
	Next(ctx context.Context, sessionID, locale string) (*dto.QuizView, error)
	Restart(ctx context.Context, sessionID, locale string) (*dto.QuizView, error)
	Close(ctx context.Context, sessionID string) error
	// Run expires idle sessions until ctx is done.
	Run(ctx context.Context, sweepInterval time.Duration)
}

type quizService struct {
	catalog  domain.StoryCatalog
	locales  LocaleResolver
	scores   domain.ScoreStore
	sessions *sessionRegistry[*quizSession]
}

// NewQuizService creates a new QuizService. scores may be nil, in which case
// nothing is persisted.
func NewQuizService(catalog domain.StoryCatalog, locales LocaleResolver, scores domain.ScoreStore, ttl time.Duration) QuizService {
	return &quizService{
		catalog:  catalog,
		locales:  locales,
		scores:   scores,
		sessions: newSessionRegistry[*quizSession]("quiz", ttl),
	}
}

func (s *quizService) Open(ctx context.Context, storyID, loc string) (*dto.QuizView, error) {
	story, ok := s.catalog.GetStoryByID(ctx, storyID)
	if !ok {
		return nil, domain.NewStoryNotFoundError(storyID)
	}
	l := s.locales.Resolve(loc)

	var view *dto.QuizView
	id, err := s.sessions.add(func(id string) (*quizSession, error) {
		m, err := quiz.New(ctx, story.ID, story.Quiz, s.scores)
		if err != nil {
			return nil, err
		}
		qs := &quizSession{id: id, story: story, machine: m}
		view = qs.view(l)
		return qs, nil
	})
	if errors.Is(err, domain.ErrQuizUnavailable) {
		logger.Get().Warn("Quiz not available",
			zap.String("story_id", storyID),
			zap.Error(err),
		)
		return nil, domain.NewQuizUnavailableError(storyID, err)
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to open quiz", err)
	}

	logger.Get().Info("Quiz session opened",
		zap.String("session_id", id),
		zap.String("story_id", storyID),
		zap.Int("restored_score", view.Score),
	)
	return view, nil
}

func (s *quizService) Get(ctx context.Context, sessionID, loc string) (*dto.QuizView, error) {
	l := s.locales.Resolve(loc)
	var view *dto.QuizView
	err := s.sessions.with(sessionID, func(qs *quizSession) error {
		view = qs.view(l)
		return nil
	})
	return view, err
}

func (s *quizService) SelectAnswer(ctx context.Context, sessionID string, option int, loc string) (*dto.AnswerResponse, error) {
	l := s.locales.Resolve(loc)
	var resp *dto.AnswerResponse
	err := s.sessions.with(sessionID, func(qs *quizSession) error {
		applied, err := qs.machine.SelectAnswer(ctx, option)
		if errors.Is(err, domain.ErrInvalidOption) {
			return domain.NewError(domain.CodeInvalidInput, fmt.Sprintf("Invalid option %d", option), err)
		}
		if err != nil {
			return err
		}
		resp = &dto.AnswerResponse{Applied: applied, View: *qs.view(l)}
		return nil
	})
	return resp, err
}

func (s *quizService) Next(ctx context.Context, sessionID, loc string) (*dto.QuizView, error) {
	l := s.locales.Resolve(loc)
	var view *dto.QuizView
	err := s.sessions.with(sessionID, func(qs *quizSession) error {
		if err := qs.machine.Advance(); err != nil {
			if errors.Is(err, domain.ErrNotRevealed) {
				return domain.NewNotRevealedError()
			}
			return err
		}
		view = qs.view(l)
		return nil
	})
	return view, err
}

func (s *quizService) Restart(ctx context.Context, sessionID, loc string) (*dto.QuizView, error) {
	l := s.locales.Resolve(loc)
	var view *dto.QuizView
	err := s.sessions.with(sessionID, func(qs *quizSession) error {
		qs.machine.Restart(ctx)
		view = qs.view(l)
		return nil
	})
	return view, err
}

func (s *quizService) Close(ctx context.Context, sessionID string) error {
	if err := s.sessions.remove(sessionID); err != nil {
		return err
	}
	logger.Get().Info("Quiz session closed", zap.String("session_id", sessionID))
	return nil
}

func (s *quizService) Run(ctx context.Context, sweepInterval time.Duration) {
	s.sessions.run(ctx, sweepInterval)
}

type quizSession struct {
	id      string
	story   domain.Story
	machine *quiz.Machine
}

// close is a no-op: the score is written through on every correct answer.
func (qs *quizSession) close() {}

func (qs *quizSession) view(l domain.Locale) *dto.QuizView {
	snap := qs.machine.Snapshot()
	view := &dto.QuizView{
		SessionID:      qs.id,
		StoryID:        qs.story.ID,
		Locale:         l.String(),
		Status:         string(snap.Status),
		QuestionNumber: snap.Index + 1,
		Total:          snap.Total,
		QuestionLabel:  fmt.Sprintf("%s %d / %d", locale.T(l, locale.MsgQuestion), snap.Index+1, snap.Total),
		ScoreLabel:     fmt.Sprintf("%s: %d", locale.T(l, locale.MsgScore), snap.Score),
		Score:          snap.Score,
		Progress:       snap.Progress,
		Revealed:       snap.Revealed,
	}

	if snap.Status == quiz.StatusComplete {
		view.Result = &dto.QuizResult{
			Title:        locale.T(l, locale.MsgQuizComplete),
			Score:        snap.Score,
			Total:        snap.Total,
			Percentage:   snap.Percentage,
			Summary:      fmt.Sprintf("%d%% %s", snap.Percentage, locale.T(l, locale.MsgCorrect)),
			RestartLabel: locale.T(l, locale.MsgTryAgain),
		}
		return view
	}

	q := qs.machine.Current()
	view.Question = q.Question.Lookup(l)
	answered := snap.Revealed
	for i, text := range q.Options.Lookup(l) {
		opt := dto.QuizOption{Index: i, Text: text, Disabled: answered}
		switch {
		case snap.Revealed && i == q.Answer:
			opt.State = dto.OptionCorrect
		case snap.Revealed && snap.HasSelection && i == snap.Selection:
			opt.State = dto.OptionIncorrect
		case snap.HasSelection && i == snap.Selection:
			opt.State = dto.OptionSelected
		}
		view.Options = append(view.Options, opt)
	}

	if snap.Revealed {
		if snap.Correct {
			view.Feedback = locale.T(l, locale.MsgCorrect)
		} else {
			view.Feedback = locale.T(l, locale.MsgTryAgain)
		}
		if snap.IsLast {
			view.NextLabel = locale.T(l, locale.MsgFinishQuiz)
		} else {
			view.NextLabel = locale.T(l, locale.MsgNextQuestion)
		}
	}
	return view
}

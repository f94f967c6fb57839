// Package quiz implements the multiple-choice quiz flow for one story:
// question pointer, answer reveal, running score and completion.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"story-time/internal/domain"
	"story-time/internal/logger"

	"go.uber.org/zap"
)

// Status is the machine's top-level state.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
)

// Snapshot is a read-only view of the machine.
type Snapshot struct {
	StoryID      string
	Status       Status
	Index        int
	Total        int
	Selection    int
	HasSelection bool
	Revealed     bool
	Correct      bool
	Score        int
	Answered     []int
	Percentage   int
	Progress     float64
	IsLast       bool
}

// Machine is the quiz state for one story. It is driven by one view at a
// time and is not safe for concurrent use.
type Machine struct {
	storyID   string
	questions []domain.Question
	store     domain.ScoreStore

	index        int
	selection    int
	hasSelection bool
	revealed     bool
	answered     map[int]struct{}
	score        int
	complete     bool
}

// New mounts a quiz for storyID. It returns domain.ErrQuizUnavailable when
// there are no questions or any question is malformed. The score is restored
// from store when one is persisted.
func New(ctx context.Context, storyID string, questions []domain.Question, store domain.ScoreStore) (*Machine, error) {
	if len(questions) == 0 {
		return nil, domain.ErrQuizUnavailable
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", domain.ErrQuizUnavailable, i, err)
		}
	}

	m := &Machine{
		storyID:   storyID,
		questions: questions,
		store:     store,
		answered:  make(map[int]struct{}),
	}
	m.score = m.restoreScore(ctx)
	return m, nil
}

func (m *Machine) restoreScore(ctx context.Context) int {
	if m.store == nil {
		return 0
	}
	score, err := m.store.Load(ctx, m.storyID)
	if err != nil {
		if !errors.Is(err, domain.ErrScoreNotFound) {
			logger.Get().Warn("Failed to restore quiz score",
				zap.String("story_id", m.storyID),
				zap.Error(err),
			)
		}
		return 0
	}
	return clamp(score, 0, len(m.questions))
}

// Current returns the question under the pointer.
func (m *Machine) Current() domain.Question {
	return m.questions[m.index]
}

// SelectAnswer records option for the current question and reveals the
// result. It is a no-op returning false when the question has already been
// answered. A correct answer is persisted before SelectAnswer returns; a
// failed write is logged and does not undo the point.
func (m *Machine) SelectAnswer(ctx context.Context, option int) (bool, error) {
	if m.complete {
		return false, nil
	}
	if _, done := m.answered[m.index]; done {
		return false, nil
	}
	q := m.Current()
	if option < 0 || option >= q.OptionCount() {
		return false, fmt.Errorf("%w: %d", domain.ErrInvalidOption, option)
	}

	m.selection = option
	m.hasSelection = true
	m.revealed = true
	if q.IsCorrect(option) && m.score < len(m.questions) {
		m.score++
		m.persist(ctx)
	}
	m.answered[m.index] = struct{}{}
	return true, nil
}

func (m *Machine) persist(ctx context.Context) {
	if m.store == nil {
		return
	}
	if err := m.store.Save(ctx, m.storyID, m.score); err != nil {
		logger.Get().Warn("Failed to persist quiz score",
			zap.String("story_id", m.storyID),
			zap.Int("score", m.score),
			zap.Error(err),
		)
	}
}

// Advance moves to the next question, or completes the quiz after the last
// one. It returns domain.ErrNotRevealed while the current answer is hidden.
func (m *Machine) Advance() error {
	if m.complete {
		return nil
	}
	if !m.revealed {
		return domain.ErrNotRevealed
	}
	if m.index == len(m.questions)-1 {
		m.complete = true
		return nil
	}
	m.index++
	m.selection = 0
	m.hasSelection = false
	m.revealed = false
	return nil
}

// Restart returns to the first question with a zero score and erases the
// persisted score.
func (m *Machine) Restart(ctx context.Context) {
	m.index = 0
	m.selection = 0
	m.hasSelection = false
	m.revealed = false
	m.answered = make(map[int]struct{})
	m.score = 0
	m.complete = false

	if m.store == nil {
		return
	}
	if err := m.store.Delete(ctx, m.storyID); err != nil {
		logger.Get().Warn("Failed to erase quiz score",
			zap.String("story_id", m.storyID),
			zap.Error(err),
		)
	}
}

// Score returns the running score.
func (m *Machine) Score() int { return m.score }

// Total returns the number of questions.
func (m *Machine) Total() int { return len(m.questions) }

// Status returns InProgress or Complete.
func (m *Machine) Status() Status {
	if m.complete {
		return StatusComplete
	}
	return StatusInProgress
}

// Percentage returns round(100 * score / total).
func (m *Machine) Percentage() int {
	return Percentage(m.score, len(m.questions))
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() Snapshot {
	answered := make([]int, 0, len(m.answered))
	for i := range m.answered {
		answered = append(answered, i)
	}
	sort.Ints(answered)

	return Snapshot{
		StoryID:      m.storyID,
		Status:       m.Status(),
		Index:        m.index,
		Total:        len(m.questions),
		Selection:    m.selection,
		HasSelection: m.hasSelection,
		Revealed:     m.revealed,
		Correct:      m.hasSelection && m.Current().IsCorrect(m.selection),
		Score:        m.score,
		Answered:     answered,
		Percentage:   m.Percentage(),
		Progress:     float64(m.index+1) / float64(len(m.questions)) * 100,
		IsLast:       m.index == len(m.questions)-1,
	}
}

// Percentage returns round(100 * score / total), or 0 when total is 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package service

import (
	"context"
	"os"
	"testing"

	"story-time/internal/config"
	"story-time/internal/domain"
	"story-time/internal/locale"
	"story-time/internal/logger"

	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Env: "test", Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

// --- MockStoryCatalog ---
type MockStoryCatalog struct {
	mock.Mock
}

func (m *MockStoryCatalog) LoadStories(ctx context.Context) []domain.Story {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Story)
}

func (m *MockStoryCatalog) GetStoryByID(ctx context.Context, id string) (domain.Story, bool) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Story), args.Bool(1)
}

// --- MockScoreStore ---
type MockScoreStore struct {
	mock.Mock
}

func (m *MockScoreStore) Load(ctx context.Context, storyID string) (int, error) {
	args := m.Called(ctx, storyID)
	return args.Int(0), args.Error(1)
}

func (m *MockScoreStore) Save(ctx context.Context, storyID string, score int) error {
	args := m.Called(ctx, storyID, score)
	return args.Error(0)
}

func (m *MockScoreStore) Delete(ctx context.Context, storyID string) error {
	args := m.Called(ctx, storyID)
	return args.Error(0)
}

func newTestResolver(t *testing.T) *locale.Resolver {
	t.Helper()
	r, err := locale.NewResolver("en", []string{"en", "fil"})
	if err != nil {
		t.Fatalf("Failed to build resolver: %v", err)
	}
	return r
}

func foxStory() domain.Story {
	return domain.Story{
		ID:    "fox",
		Title: domain.Localized[string]{domain.LocaleEnglish: "The Fox", domain.LocaleFilipino: "Ang Soro"},
		Cover: "/covers/fox.png",
		Voice: domain.Localized[string]{domain.LocaleEnglish: "/audio/fox-en.mp3"},
		Chapters: []domain.Chapter{
			{
				domain.LocaleEnglish: {
					{Start: 0, End: 5, Text: "One"},
					{Start: 5, End: 10, Text: "Two"},
				},
				domain.LocaleFilipino: {
					{Start: 0, End: 4, Text: "Isa"},
					{Start: 4, End: 10, Text: "Dalawa"},
				},
			},
		},
		Quiz: []domain.Question{
			{
				Question: domain.Localized[string]{domain.LocaleEnglish: "Who?", domain.LocaleFilipino: "Sino?"},
				Options: domain.Localized[[]string]{
					domain.LocaleEnglish:  {"fox", "crow", "turtle"},
					domain.LocaleFilipino: {"soro", "uwak", "pagong"},
				},
				Answer: 0,
			},
			{
				Question: domain.Localized[string]{domain.LocaleEnglish: "Where?"},
				Options:  domain.Localized[[]string]{domain.LocaleEnglish: {"river", "forest"}},
				Answer:   1,
			},
		},
	}
}

package handler_test

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"story-time/internal/config"
	"story-time/internal/dto"
	"story-time/internal/handler"
	"story-time/internal/locale"
	"story-time/internal/logger"
	"story-time/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

const testSessionID = "01HGZ8VNRYXS8QKNJV5GRWPWDQ"

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Env: "test", Level: "error"}); err != nil {
		log.Fatalf("Failed to initialize logger for handler tests: %v", err)
	}
	exitCode := m.Run()
	_ = logger.Sync()
	os.Exit(exitCode)
}

// --- Manual Mocks ---

type MockStoryService struct {
	ListStoriesFunc func(ctx context.Context, locale string) *dto.StoryListResponse
	GetStoryFunc    func(ctx context.Context, id, locale string) (*dto.StoryResponse, error)
}

func (m *MockStoryService) ListStories(ctx context.Context, locale string) *dto.StoryListResponse {
	if m.ListStoriesFunc != nil {
		return m.ListStoriesFunc(ctx, locale)
	}
	panic("MockStoryService.ListStoriesFunc not implemented")
}
func (m *MockStoryService) GetStory(ctx context.Context, id, locale string) (*dto.StoryResponse, error) {
	if m.GetStoryFunc != nil {
		return m.GetStoryFunc(ctx, id, locale)
	}
	panic("MockStoryService.GetStoryFunc not implemented")
}

type MockReadingService struct {
	OpenFunc            func(ctx context.Context, storyID, locale string) (*dto.ReadingView, error)
	GetFunc             func(ctx context.Context, sessionID string) (*dto.ReadingView, error)
	HandleEventFunc     func(ctx context.Context, sessionID string, req *dto.ReadingEventRequest) (*dto.ReadingEventResponse, error)
	TogglePlayPauseFunc func(ctx context.Context, sessionID string) (*dto.ReadingView, error)
	ToggleMuteFunc      func(ctx context.Context, sessionID string) (*dto.ReadingView, error)
	SetLocaleFunc       func(ctx context.Context, sessionID, locale string) (*dto.ReadingEventResponse, error)
	CloseFunc           func(ctx context.Context, sessionID string) error
}

func (m *MockReadingService) Open(ctx context.Context, storyID, locale string) (*dto.ReadingView, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, storyID, locale)
	}
	panic("MockReadingService.OpenFunc not implemented")
}
func (m *MockReadingService) Get(ctx context.Context, sessionID string) (*dto.ReadingView, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, sessionID)
	}
	panic("MockReadingService.GetFunc not implemented")
}
func (m *MockReadingService) HandleEvent(ctx context.Context, sessionID string, req *dto.ReadingEventRequest) (*dto.ReadingEventResponse, error) {
	if m.HandleEventFunc != nil {
		return m.HandleEventFunc(ctx, sessionID, req)
	}
	panic("MockReadingService.HandleEventFunc not implemented")
}
func (m *MockReadingService) TogglePlayPause(ctx context.Context, sessionID string) (*dto.ReadingView, error) {
	if m.TogglePlayPauseFunc != nil {
		return m.TogglePlayPauseFunc(ctx, sessionID)
	}
	panic("MockReadingService.TogglePlayPauseFunc not implemented")
}
func (m *MockReadingService) ToggleMute(ctx context.Context, sessionID string) (*dto.ReadingView, error) {
	if m.ToggleMuteFunc != nil {
		return m.ToggleMuteFunc(ctx, sessionID)
	}
	panic("MockReadingService.ToggleMuteFunc not implemented")
}
func (m *MockReadingService) SetLocale(ctx context.Context, sessionID, locale string) (*dto.ReadingEventResponse, error) {
	if m.SetLocaleFunc != nil {
		return m.SetLocaleFunc(ctx, sessionID, locale)
	}
	panic("MockReadingService.SetLocaleFunc not implemented")
}
func (m *MockReadingService) Close(ctx context.Context, sessionID string) error {
	if m.CloseFunc != nil {
		return m.CloseFunc(ctx, sessionID)
	}
	panic("MockReadingService.CloseFunc not implemented")
}
func (m *MockReadingService) Run(ctx context.Context, sweepInterval time.Duration) {}

type MockQuizService struct {
	OpenFunc         func(ctx context.Context, storyID, locale string) (*dto.QuizView, error)
	GetFunc          func(ctx context.Context, sessionID, locale string) (*dto.QuizView, error)
	SelectAnswerFunc func(ctx context.Context, sessionID string, option int, locale string) (*dto.AnswerResponse, error)
	NextFunc         func(ctx context.Context, sessionID, locale string) (*dto.QuizView, error)
	RestartFunc      func(ctx context.Context, sessionID, locale string) (*dto.QuizView, error)
	CloseFunc        func(ctx context.Context, sessionID string) error
}

func (m *MockQuizService) Open(ctx context.Context, storyID, locale string) (*dto.QuizView, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, storyID, locale)
	}
	panic("MockQuizService.OpenFunc not implemented")
}
func (m *MockQuizService) Get(ctx context.Context, sessionID, locale string) (*dto.QuizView, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, sessionID, locale)
	}
	panic("MockQuizService.GetFunc not implemented")
}
func (m *MockQuizService) SelectAnswer(ctx context.Context, sessionID string, option int, locale string) (*dto.AnswerResponse, error) {
	if m.SelectAnswerFunc != nil {
		return m.SelectAnswerFunc(ctx, sessionID, option, locale)
	}
	panic("MockQuizService.SelectAnswerFunc not implemented")
}
func (m *MockQuizService) Next(ctx context.Context, sessionID, locale string) (*dto.QuizView, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, sessionID, locale)
	}
	panic("MockQuizService.NextFunc not implemented")
}
func (m *MockQuizService) Restart(ctx context.Context, sessionID, locale string) (*dto.QuizView, error) {
	if m.RestartFunc != nil {
		return m.RestartFunc(ctx, sessionID, locale)
	}
	panic("MockQuizService.RestartFunc not implemented")
}
func (m *MockQuizService) Close(ctx context.Context, sessionID string) error {
	if m.CloseFunc != nil {
		return m.CloseFunc(ctx, sessionID)
	}
	panic("MockQuizService.CloseFunc not implemented")
}
func (m *MockQuizService) Run(ctx context.Context, sweepInterval time.Duration) {}

// testApp mounts every route the way cmd/api does.
type testApp struct {
	app     *fiber.App
	stories *MockStoryService
	reading *MockReadingService
	quiz    *MockQuizService
	locales *locale.Resolver
}

func newTestApp(t *testing.T, ping handler.Pinger) *testApp {
	t.Helper()
	locales, err := locale.NewResolver("en", []string{"en", "fil"})
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	ta := &testApp{
		stories: &MockStoryService{},
		reading: &MockReadingService{},
		quiz:    &MockQuizService{},
		locales: locales,
	}
	ta.app = fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.RegisterRoutes(ta.app.Group("/api"), handler.Handlers{
		Story:   handler.NewStoryHandler(ta.stories),
		Reading: handler.NewReadingHandler(ta.reading),
		Quiz:    handler.NewQuizHandler(ta.quiz),
		App:     handler.NewAppHandler(locales, "memory", ping),
	})
	return ta
}

func (ta *testApp) do(t *testing.T, method, target, body string) (*http.Response, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := ta.app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(data)
}

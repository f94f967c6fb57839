package handler

import (
	"story-time/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler of the API.
type Handlers struct {
	Story   *StoryHandler
	Reading *ReadingHandler
	Quiz    *QuizHandler
	App     *AppHandler
}

// RegisterRoutes mounts the API under router.
func RegisterRoutes(router fiber.Router, h Handlers) {
	v := middleware.NewValidationMiddleware()
	storyID := v.ValidateStoryID()
	sessionID := v.ValidateSessionID()

	router.Get("/health", h.App.Health)
	router.Get("/locale", h.App.GetLocale)
	router.Put("/locale", h.App.SetLocale)
	router.Post("/locale/toggle", h.App.ToggleLocale)
	router.Get("/about", v.ValidateLocaleQuery(), h.App.GetAbout)

	stories := router.Group("/stories", v.ValidateLocaleQuery())
	stories.Get("/", h.Story.ListStories)
	stories.Get("/:id", storyID, h.Story.GetStory)
	stories.Post("/:id/reading", storyID, h.Reading.OpenSession)
	stories.Post("/:id/quiz", storyID, h.Quiz.OpenQuiz)

	reading := router.Group("/reading")
	reading.Get("/:sid", sessionID, h.Reading.GetSession)
	reading.Delete("/:sid", sessionID, h.Reading.CloseSession)
	reading.Post("/:sid/events", sessionID, h.Reading.HandleEvent)
	reading.Post("/:sid/play-pause", sessionID, h.Reading.TogglePlayPause)
	reading.Post("/:sid/mute", sessionID, h.Reading.ToggleMute)
	reading.Put("/:sid/locale", sessionID, h.Reading.SetLocale)

	quiz := router.Group("/quiz", v.ValidateLocaleQuery())
	quiz.Get("/:sid", sessionID, h.Quiz.GetQuiz)
	quiz.Delete("/:sid", sessionID, h.Quiz.CloseQuiz)
	quiz.Post("/:sid/answer", sessionID, h.Quiz.SelectAnswer)
	quiz.Post("/:sid/next", sessionID, h.Quiz.NextQuestion)
	quiz.Post("/:sid/restart", sessionID, h.Quiz.RestartQuiz)
}

package handler

import (
	"story-time/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StoryHandler handles story catalog HTTP requests
type StoryHandler struct {
	service service.StoryService
}

// NewStoryHandler creates a new StoryHandler instance
func NewStoryHandler(service service.StoryService) *StoryHandler {
	return &StoryHandler{
		service: service,
	}
}

// ListStories godoc
// @Summary List stories
// @Description Returns every story in the catalog, localized. Coming-soon stories are included and flagged.
// @Tags stories
// @Produce json
// @Param locale query string false "Locale (en, fil)"
// @Success 200 {object} dto.StoryListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /stories [get]
func (h *StoryHandler) ListStories(c *fiber.Ctx) error {
	return c.JSON(h.service.ListStories(c.UserContext(), localeParam(c)))
}

// GetStory godoc
// @Summary Get a story
// @Description Returns the localized title, audio source and narration segments of a story
// @Tags stories
// @Produce json
// @Param id path string true "Story ID"
// @Param locale query string false "Locale (en, fil)"
// @Success 200 {object} dto.StoryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /stories/{id} [get]
func (h *StoryHandler) GetStory(c *fiber.Ctx) error {
	story, err := h.service.GetStory(c.UserContext(), c.Params("id"), localeParam(c))
	if err != nil {
		return err
	}
	return c.JSON(story)
}

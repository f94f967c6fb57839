package handler

import (
	"story-time/internal/dto"
	"story-time/internal/service"
	"story-time/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ReadingHandler handles reader view HTTP requests. The page owns the audio
// element and reports its media events here; every response carries the
// resulting player and highlight state.
type ReadingHandler struct {
	service   service.ReadingService
	validator *validation.Validator
}

// NewReadingHandler creates a new ReadingHandler instance
func NewReadingHandler(service service.ReadingService) *ReadingHandler {
	return &ReadingHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// OpenSession godoc
// @Summary Open a reading session
// @Description Opens the reader for a story and loads its narration audio for the locale
// @Tags reading
// @Accept json
// @Produce json
// @Param id path string true "Story ID"
// @Param request body dto.OpenSessionRequest false "Session options"
// @Success 201 {object} dto.ReadingView
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /stories/{id}/reading [post]
func (h *ReadingHandler) OpenSession(c *fiber.Ctx) error {
	var req dto.OpenSessionRequest
	if err := parseOptionalBody(c, &req); err != nil {
		return err
	}
	if req.Locale == "" {
		req.Locale = localeParam(c)
	}
	if errs := h.validator.ValidateLocale("locale", req.Locale); len(errs) > 0 {
		return errs
	}

	view, err := h.service.Open(c.UserContext(), c.Params("id"), req.Locale)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetSession godoc
// @Summary Get a reading session
// @Tags reading
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} dto.ReadingView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /reading/{sid} [get]
func (h *ReadingHandler) GetSession(c *fiber.Ctx) error {
	view, err := h.service.Get(c.UserContext(), c.Params("sid"))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// HandleEvent godoc
// @Summary Report a page event
// @Description Reports a media event (timeupdate, loadedmetadata, ended, error) or a layout event (layout, scrollend)
// @Tags reading
// @Accept json
// @Produce json
// @Param sid path string true "Session ID"
// @Param request body dto.ReadingEventRequest true "Event"
// @Success 200 {object} dto.ReadingEventResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /reading/{sid}/events [post]
func (h *ReadingHandler) HandleEvent(c *fiber.Ctx) error {
	var req dto.ReadingEventRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateReadingEvent(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.HandleEvent(c.UserContext(), c.Params("sid"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// TogglePlayPause godoc
// @Summary Toggle play/pause
// @Description Ignored while no narration audio is available
// @Tags reading
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} dto.ReadingView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /reading/{sid}/play-pause [post]
func (h *ReadingHandler) TogglePlayPause(c *fiber.Ctx) error {
	view, err := h.service.TogglePlayPause(c.UserContext(), c.Params("sid"))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// ToggleMute godoc
// @Summary Toggle mute
// @Tags reading
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} dto.ReadingView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /reading/{sid}/mute [post]
func (h *ReadingHandler) ToggleMute(c *fiber.Ctx) error {
	view, err := h.service.ToggleMute(c.UserContext(), c.Params("sid"))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// SetLocale godoc
// @Summary Switch the narration language
// @Description Swaps the segment set and re-resolves the highlight at the current playback position
// @Tags reading
// @Accept json
// @Produce json
// @Param sid path string true "Session ID"
// @Param request body dto.SetLocaleRequest true "Locale"
// @Success 200 {object} dto.ReadingEventResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /reading/{sid}/locale [put]
func (h *ReadingHandler) SetLocale(c *fiber.Ctx) error {
	var req dto.SetLocaleRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateSetLocaleRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SetLocale(c.UserContext(), c.Params("sid"), req.Locale)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CloseSession godoc
// @Summary Close a reading session
// @Description Pauses playback and detaches every listener of the session
// @Tags reading
// @Param sid path string true "Session ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /reading/{sid} [delete]
func (h *ReadingHandler) CloseSession(c *fiber.Ctx) error {
	if err := h.service.Close(c.UserContext(), c.Params("sid")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

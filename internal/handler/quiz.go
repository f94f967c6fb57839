package handler

import (
	"story-time/internal/dto"
	"story-time/internal/service"
	"story-time/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// OpenQuiz godoc
// @Summary Start a quiz
// @Description Starts the quiz of a story at the first question, restoring the persisted score
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Story ID"
// @Param request body dto.OpenSessionRequest false "Session options"
// @Success 201 {object} dto.QuizView
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /stories/{id}/quiz [post]
func (h *QuizHandler) OpenQuiz(c *fiber.Ctx) error {
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

// GetQuiz godoc
// @Summary Get a quiz session
// @Tags quiz
// @Produce json
// @Param sid path string true "Session ID"
// @Param locale query string false "Locale (en, fil)"
// @Success 200 {object} dto.QuizView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{sid} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	view, err := h.service.Get(c.UserContext(), c.Params("sid"), localeParam(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// SelectAnswer godoc
// @Summary Answer the current question
// @Description Reveals the answer. A question that was already answered is not re-scored.
// @Tags quiz
// @Accept json
// @Produce json
// @Param sid path string true "Session ID"
// @Param locale query string false "Locale (en, fil)"
// @Param request body dto.AnswerRequest true "Selected option"
// @Success 200 {object} dto.AnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{sid}/answer [post]
func (h *QuizHandler) SelectAnswer(c *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateAnswerRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SelectAnswer(c.UserContext(), c.Params("sid"), *req.Option, localeParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// NextQuestion godoc
// @Summary Advance to the next question
// @Description Moves past a revealed question, or completes the quiz after the last one
// @Tags quiz
// @Produce json
// @Param sid path string true "Session ID"
// @Param locale query string false "Locale (en, fil)"
// @Success 200 {object} dto.QuizView
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quiz/{sid}/next [post]
func (h *QuizHandler) NextQuestion(c *fiber.Ctx) error {
	view, err := h.service.Next(c.UserContext(), c.Params("sid"), localeParam(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// RestartQuiz godoc
// @Summary Restart the quiz
// @Description Resets to the first question with a score of zero and erases the persisted score
// @Tags quiz
// @Produce json
// @Param sid path string true "Session ID"
// @Param locale query string false "Locale (en, fil)"
// @Success 200 {object} dto.QuizView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{sid}/restart [post]
func (h *QuizHandler) RestartQuiz(c *fiber.Ctx) error {
	view, err := h.service.Restart(c.UserContext(), c.Params("sid"), localeParam(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// CloseQuiz godoc
// @Summary Close a quiz session
// @Tags quiz
// @Param sid path string true "Session ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{sid} [delete]
func (h *QuizHandler) CloseQuiz(c *fiber.Ctx) error {
	if err := h.service.Close(c.UserContext(), c.Params("sid")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

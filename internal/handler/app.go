package handler

import (
	"context"
	"time"

	"story-time/internal/domain"
	"story-time/internal/dto"
	"story-time/internal/locale"
	"story-time/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LocaleState is the process-wide locale exposed to every view.
type LocaleState interface {
	Current() domain.Locale
	Supported() []domain.Locale
	Toggle() domain.Locale
	Set(value string) (domain.Locale, error)
	FromAcceptLanguage(header string) domain.Locale
	Resolve(explicit string) domain.Locale
}

// Pinger reports whether the score store is reachable.
type Pinger func(ctx context.Context) error

const healthTimeout = 2 * time.Second

// AppHandler serves the locale toggle, the About page and health checks.
type AppHandler struct {
	locales    LocaleState
	scoreStore string
	ping       Pinger
}

// NewAppHandler creates a new AppHandler. ping may be nil when the score
// store has nothing to check.
func NewAppHandler(locales LocaleState, scoreStore string, ping Pinger) *AppHandler {
	return &AppHandler{locales: locales, scoreStore: scoreStore, ping: ping}
}

// GetLocale godoc
// @Summary Get the current locale
// @Tags locale
// @Produce json
// @Success 200 {object} dto.LocaleResponse
// @Router /locale [get]
func (h *AppHandler) GetLocale(c *fiber.Ctx) error {
	resp := h.localeResponse(h.locales.Current())
	if header := c.Get(fiber.HeaderAcceptLanguage); header != "" {
		resp.Suggested = h.locales.FromAcceptLanguage(header).String()
	}
	return c.JSON(resp)
}

// ToggleLocale godoc
// @Summary Toggle the locale
// @Description Cycles to the next supported locale
// @Tags locale
// @Produce json
// @Success 200 {object} dto.LocaleResponse
// @Router /locale/toggle [post]
func (h *AppHandler) ToggleLocale(c *fiber.Ctx) error {
	l := h.locales.Toggle()
	logger.Get().Info("Locale toggled", zap.String("locale", l.String()))
	return c.JSON(h.localeResponse(l))
}

// SetLocale godoc
// @Summary Set the locale
// @Tags locale
// @Accept json
// @Produce json
// @Param request body dto.SetLocaleRequest true "Locale"
// @Success 200 {object} dto.LocaleResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /locale [put]
func (h *AppHandler) SetLocale(c *fiber.Ctx) error {
	var req dto.SetLocaleRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	l, err := h.locales.Set(req.Locale)
	if err != nil {
		return err
	}
	return c.JSON(h.localeResponse(l))
}

func (h *AppHandler) localeResponse(l domain.Locale) dto.LocaleResponse {
	supported := h.locales.Supported()
	resp := dto.LocaleResponse{
		Locale:    l.String(),
		Label:     locale.T(l, locale.MsgLanguageLabel),
		Supported: make([]string, 0, len(supported)),
	}
	for _, s := range supported {
		resp.Supported = append(resp.Supported, s.String())
	}
	return resp
}

// GetAbout godoc
// @Summary Get the About page
// @Tags about
// @Produce json
// @Param locale query string false "Locale (en, fil)"
// @Success 200 {object} dto.AboutResponse
// @Router /about [get]
func (h *AppHandler) GetAbout(c *fiber.Ctx) error {
	l := h.locales.Resolve(localeParam(c))
	return c.JSON(dto.AboutResponse{
		Locale:        l.String(),
		Title:         locale.T(l, locale.MsgAboutTitle),
		Subtitle:      locale.T(l, locale.MsgAboutSubtitle),
		Description:   locale.T(l, locale.MsgAboutDescription),
		FeaturesTitle: locale.T(l, locale.MsgFeaturesTitle),
		Features: []string{
			locale.T(l, locale.MsgFeatureStory),
			locale.T(l, locale.MsgFeatureQuiz),
			locale.T(l, locale.MsgFeatureLanguages),
			locale.T(l, locale.MsgFeatureColorful),
		},
		MissionTitle: locale.T(l, locale.MsgMissionTitle),
		MissionText:  locale.T(l, locale.MsgMissionText),
	})
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *AppHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", ScoreStore: h.scoreStore}
	if h.ping == nil {
		return c.JSON(resp)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()
	if err := h.ping(ctx); err != nil {
		logger.Get().Warn("Score store health check failed",
			zap.String("score_store", h.scoreStore),
			zap.Error(err),
		)
		resp.Status = "degraded"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}

package handler

import (
	"story-time/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// localeParam returns the locale a request asked for explicitly, if any.
func localeParam(c *fiber.Ctx) string {
	return c.Query("locale")
}

// parseOptionalBody decodes a JSON body when one was sent.
func parseOptionalBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return parseBody(c, out)
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return domain.NewError(domain.CodeInvalidInput, "Invalid request body", err)
	}
	return nil
}

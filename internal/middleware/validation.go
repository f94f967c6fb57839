package middleware

import (
	"story-time/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware.
const (
	StoryIDKey   = "validated_story_id"
	SessionIDKey = "validated_session_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateStoryID validates the :id path parameter
func (vm *ValidationMiddleware) ValidateStoryID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storyID := c.Params("id")
		if errors := vm.validator.ValidateStoryID(storyID); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}
		c.Locals(StoryIDKey, storyID)
		return c.Next()
	}
}

// ValidateSessionID validates the :sid path parameter
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Params("sid")
		if errors := vm.validator.ValidateSessionID(sessionID); len(errors) > 0 {
			return errors
		}
		c.Locals(SessionIDKey, sessionID)
		return c.Next()
	}
}

// ValidateLocaleQuery validates the optional locale query parameter
func (vm *ValidationMiddleware) ValidateLocaleQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errors := vm.validator.ValidateLocale("locale", c.Query("locale")); len(errors) > 0 {
			return errors
		}
		return c.Next()
	}
}

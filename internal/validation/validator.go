package validation

import (
	"regexp"
	"strings"

	"story-time/internal/domain"
	"story-time/internal/dto"
	"story-time/internal/util"
)

const (
	maxStoryIDLength = 100
	maxLocaleLength  = 35
	maxLayoutItems   = 1000
)

var storyIDPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateStoryID validates a story id path parameter
func (v *Validator) ValidateStoryID(storyID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(storyID) == "" {
		errors = append(errors, domain.NewMissingFieldError("story_id"))
		return errors
	}

	if len(storyID) > maxStoryIDLength || !storyIDPattern.MatchString(storyID) {
		errors = append(errors, domain.NewInvalidFormatError("story_id", storyID))
	}

	return errors
}

// ValidateSessionID validates a session id path parameter
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(sessionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	} else if !util.IsULID(sessionID) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", sessionID))
	}

	return errors
}

// ValidateLocale validates an optional locale value. Whether the locale is
// supported is decided by the resolver, not here.
func (v *Validator) ValidateLocale(field, locale string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if len(locale) > maxLocaleLength {
		errors = append(errors, domain.NewOutOfRangeError(field, len(locale), 0, maxLocaleLength))
	}
	return errors
}

// ValidateSetLocaleRequest validates a locale switch request
func (v *Validator) ValidateSetLocaleRequest(req *dto.SetLocaleRequest) domain.ValidationErrors {
	if strings.TrimSpace(req.Locale) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("locale")}
	}
	return v.ValidateLocale("locale", req.Locale)
}

// ValidateAnswerRequest validates an answer selection request
func (v *Validator) ValidateAnswerRequest(req *dto.AnswerRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Option == nil {
		errors = append(errors, domain.NewMissingFieldError("option"))
	} else if *req.Option < 0 {
		errors = append(errors, domain.NewInvalidFormatError("option", *req.Option))
	}

	return errors
}

// ValidateReadingEvent validates the shape of a page-reported event. The
// event type itself is checked by the reading service.
func (v *Validator) ValidateReadingEvent(req *dto.ReadingEventRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Type) == "" {
		errors = append(errors, domain.NewMissingFieldError("type"))
	}
	if req.Time != nil && *req.Time < 0 {
		errors = append(errors, domain.NewInvalidFormatError("time", *req.Time))
	}
	if req.Duration != nil && *req.Duration < 0 {
		errors = append(errors, domain.NewInvalidFormatError("duration", *req.Duration))
	}
	if req.Height < 0 {
		errors = append(errors, domain.NewInvalidFormatError("height", req.Height))
	}
	if len(req.Elements) > maxLayoutItems {
		errors = append(errors, domain.NewOutOfRangeError("elements", len(req.Elements), 0, maxLayoutItems))
	}
	for _, el := range req.Elements {
		if el.End < el.Start {
			errors = append(errors, domain.NewInvalidFormatError("elements", el))
			break
		}
	}

	return errors
}

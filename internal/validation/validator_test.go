package validation

import (
	"strings"
	"testing"

	"story-time/internal/domain"
	"story-time/internal/dto"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestValidator_ValidateStoryID(t *testing.T) {
	v := NewValidator()
	tests := []struct {
		name     string
		storyID  string
		wantCode domain.ErrorCode
	}{
		{name: "slug", storyID: "turtle-and-monkey"},
		{name: "digits", storyID: "story1"},
		{name: "empty", storyID: " ", wantCode: domain.CodeMissingField},
		{name: "uppercase", storyID: "Turtle", wantCode: domain.CodeInvalidFormat},
		{name: "underscore", storyID: "a_b", wantCode: domain.CodeInvalidFormat},
		{name: "trailing hyphen", storyID: "a-", wantCode: domain.CodeInvalidFormat},
		{name: "too long", storyID: strings.Repeat("a", 101), wantCode: domain.CodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateStoryID(tt.storyID)
			if tt.wantCode == "" {
				assert.Empty(t, errs)
				return
			}
			if assert.Len(t, errs, 1) {
				assert.Equal(t, tt.wantCode, errs[0].Code)
				assert.Equal(t, "story_id", errs[0].Field)
			}
		})
	}
}

func TestValidator_ValidateSessionID(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateSessionID("01HGZ8VNRYXS8QKNJV5GRWPWDQ"))

	errs := v.ValidateSessionID("")
	if assert.Len(t, errs, 1) {
		assert.Equal(t, domain.CodeMissingField, errs[0].Code)
	}
	errs = v.ValidateSessionID("not-a-ulid")
	if assert.Len(t, errs, 1) {
		assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
	}
}

func TestValidator_ValidateLocale(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateLocale("locale", ""))
	assert.Empty(t, v.ValidateLocale("locale", "fil-PH"))
	assert.Len(t, v.ValidateLocale("locale", strings.Repeat("x", 36)), 1)

	assert.Len(t, v.ValidateSetLocaleRequest(&dto.SetLocaleRequest{}), 1)
	assert.Empty(t, v.ValidateSetLocaleRequest(&dto.SetLocaleRequest{Locale: "fil"}))
}

func TestValidator_ValidateAnswerRequest(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateAnswerRequest(&dto.AnswerRequest{Option: intPtr(0)}))
	assert.Empty(t, v.ValidateAnswerRequest(&dto.AnswerRequest{Option: intPtr(3)}))

	errs := v.ValidateAnswerRequest(&dto.AnswerRequest{})
	if assert.Len(t, errs, 1) {
		assert.Equal(t, domain.CodeMissingField, errs[0].Code)
	}
	errs = v.ValidateAnswerRequest(&dto.AnswerRequest{Option: intPtr(-1)})
	if assert.Len(t, errs, 1) {
		assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
	}
}

func TestValidator_ValidateReadingEvent(t *testing.T) {
	v := NewValidator()
	tests := []struct {
		name      string
		req       dto.ReadingEventRequest
		wantCount int
	}{
		{name: "timeupdate", req: dto.ReadingEventRequest{Type: "timeupdate", Time: floatPtr(3.5)}},
		{name: "layout", req: dto.ReadingEventRequest{Type: "layout", Height: 200, Elements: []dto.ElementLayout{{Start: 0, End: 5, Top: 10, Height: 20}}}},
		{name: "missing type", req: dto.ReadingEventRequest{}, wantCount: 1},
		{name: "negative time and duration", req: dto.ReadingEventRequest{Type: "timeupdate", Time: floatPtr(-1), Duration: floatPtr(-2)}, wantCount: 2},
		{name: "negative height", req: dto.ReadingEventRequest{Type: "layout", Height: -1}, wantCount: 1},
		{name: "inverted element", req: dto.ReadingEventRequest{Type: "layout", Elements: []dto.ElementLayout{{Start: 5, End: 1}, {Start: 9, End: 2}}}, wantCount: 1},
		{name: "too many elements", req: dto.ReadingEventRequest{Type: "layout", Elements: make([]dto.ElementLayout, maxLayoutItems+1)}, wantCount: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, v.ValidateReadingEvent(&tt.req), tt.wantCount)
		})
	}
}

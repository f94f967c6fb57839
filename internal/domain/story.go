package domain

import (
	"fmt"
	"strings"
)

// Segment is a timed span of narration text. Times are in seconds.
type Segment struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
	Text  string  `json:"text" yaml:"text"`
}

// SegmentKey identifies a segment. Segments carry no id of their own, so the
// (start, end) pair is the identity.
type SegmentKey struct {
	Start float64
	End   float64
}

func (k SegmentKey) String() string {
	return fmt.Sprintf("%g-%g", k.Start, k.End)
}

// Key returns the segment's identity.
func (s Segment) Key() SegmentKey {
	return SegmentKey{Start: s.Start, End: s.End}
}

// Contains reports whether t falls inside the closed interval [Start, End].
func (s Segment) Contains(t float64) bool {
	return s.Start <= t && t <= s.End
}

// Chapter holds one ordered segment sequence per locale.
type Chapter = Localized[[]Segment]

// Question is a multiple-choice quiz question.
type Question struct {
	Question Localized[string]   `json:"question" yaml:"question"`
	Options  Localized[[]string] `json:"options" yaml:"options"`
	Answer   int                 `json:"answer" yaml:"answer"`
}

// IsCorrect reports whether option is the correct one.
func (q Question) IsCorrect(option int) bool {
	return option == q.Answer
}

// OptionCount returns the number of options in the default locale.
func (q Question) OptionCount() int {
	return len(q.Options[DefaultLocale])
}

// Validate checks that the question has a default entry, that every locale
// carries the same number of options and that the answer index is in bounds.
func (q Question) Validate() error {
	var errs ValidationErrors
	if !q.Question.HasDefault() {
		errs = append(errs, NewMissingFieldError("question.en"))
	}
	if !q.Options.HasDefault() {
		errs = append(errs, NewMissingFieldError("options.en"))
		return errs
	}
	count := q.OptionCount()
	if count == 0 {
		errs = append(errs, NewMissingFieldError("options.en"))
	}
	for locale, opts := range q.Options {
		if len(opts) != count {
			errs = append(errs, NewOutOfRangeError("options."+locale.String(), len(opts), count, count))
		}
	}
	if q.Answer < 0 || q.Answer >= count {
		errs = append(errs, NewOutOfRangeError("answer", q.Answer, 0, count-1))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Story is the full content unit: metadata, narration and quiz.
type Story struct {
	ID         string            `json:"id" yaml:"id"`
	Title      Localized[string] `json:"title" yaml:"title"`
	Cover      string            `json:"cover,omitempty" yaml:"cover,omitempty"`
	Voice      Localized[string] `json:"voice,omitempty" yaml:"voice,omitempty"`
	Chapters   []Chapter         `json:"chapters" yaml:"chapters"`
	Quiz       []Question        `json:"quiz" yaml:"quiz"`
	ComingSoon bool              `json:"comingSoon,omitempty" yaml:"comingSoon,omitempty"`
}

// Segments flattens every chapter's sequence for locale in chapter order.
// Each chapter falls back to the default locale on its own.
func (s Story) Segments(locale Locale) []Segment {
	var out []Segment
	for _, chapter := range s.Chapters {
		out = append(out, chapter.Lookup(locale)...)
	}
	return out
}

// AudioSource returns the narration URL for locale, or "" when none exists.
func (s Story) AudioSource(locale Locale) string {
	return s.Voice.Lookup(locale)
}

// HasQuiz reports whether the story carries at least one question.
func (s Story) HasQuiz() bool {
	return len(s.Quiz) > 0
}

// Validate checks the structural invariants of a story record. Quiz questions
// are not checked here; a broken quiz makes the quiz unavailable, not the story.
func (s Story) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(s.ID) == "" {
		errs = append(errs, NewMissingFieldError("id"))
	}
	if !s.Title.HasDefault() {
		errs = append(errs, NewMissingFieldError("title.en"))
	}
	if len(s.Voice) > 0 && !s.Voice.HasDefault() {
		errs = append(errs, NewMissingFieldError("voice.en"))
	}
	for i, chapter := range s.Chapters {
		field := fmt.Sprintf("chapters[%d]", i)
		if !chapter.HasDefault() {
			errs = append(errs, NewMissingFieldError(field+".en"))
		}
		for locale, segments := range chapter {
			if err := ValidateSegments(segments); err != nil {
				errs = append(errs, NewInvalidFormatError(field+"."+locale.String(), err.Error()))
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateSegments checks that every segment has 0 <= start < end and that the
// sequence is sorted by start time.
func ValidateSegments(segments []Segment) error {
	for i, seg := range segments {
		if seg.Start < 0 || seg.End <= seg.Start {
			return fmt.Errorf("segment %d has invalid span [%g, %g]", i, seg.Start, seg.End)
		}
		if i > 0 && seg.Start < segments[i-1].Start {
			return fmt.Errorf("segment %d starts before segment %d", i, i-1)
		}
	}
	return nil
}

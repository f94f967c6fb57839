// Package locale holds the process-wide display language and the localized
// interface strings.
package locale

import (
	"fmt"
	"strings"
	"sync"

	"story-time/internal/domain"

	"golang.org/x/text/language"
)

// Resolver is the process-wide current locale. Every view reads it; the
// language toggle writes it.
type Resolver struct {
	mu        sync.RWMutex
	current   domain.Locale
	fallback  domain.Locale
	supported []domain.Locale
	tags      []language.Tag
	matcher   language.Matcher
}

// NewResolver builds a resolver over supported, starting at defaultLocale.
func NewResolver(defaultLocale string, supported []string) (*Resolver, error) {
	if len(supported) == 0 {
		return nil, fmt.Errorf("at least one supported locale is required")
	}
	r := &Resolver{}
	for _, code := range supported {
		tag, err := language.Parse(strings.TrimSpace(code))
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", code, err)
		}
		r.tags = append(r.tags, tag)
		r.supported = append(r.supported, domain.Locale(tag.String()))
	}
	r.matcher = language.NewMatcher(r.tags)

	def, ok := r.Parse(defaultLocale)
	if !ok {
		return nil, fmt.Errorf("default locale %q is not supported", defaultLocale)
	}
	r.current = def
	r.fallback = def
	return r, nil
}

// Current returns the active locale.
func (r *Resolver) Current() domain.Locale {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Default returns the locale the resolver started with.
func (r *Resolver) Default() domain.Locale {
	return r.fallback
}

// Supported returns the fixed locale set in toggle order.
func (r *Resolver) Supported() []domain.Locale {
	out := make([]domain.Locale, len(r.supported))
	copy(out, r.supported)
	return out
}

// Toggle advances to the next supported locale, wrapping around, and
// returns it.
func (r *Resolver) Toggle() domain.Locale {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.supported {
		if l == r.current {
			r.current = r.supported[(i+1)%len(r.supported)]
			return r.current
		}
	}
	r.current = r.supported[0]
	return r.current
}

// Set makes value the active locale. Regional variants such as "fil-PH"
// resolve to their supported base.
func (r *Resolver) Set(value string) (domain.Locale, error) {
	l, ok := r.Parse(value)
	if !ok {
		return "", domain.NewInvalidLocaleError(value)
	}
	r.mu.Lock()
	r.current = l
	r.mu.Unlock()
	return l, nil
}

// Parse maps value onto a supported locale.
func (r *Resolver) Parse(value string) (domain.Locale, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	_, idx, conf := r.matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return r.supported[idx], true
}

// FromAcceptLanguage picks the best supported locale for an Accept-Language
// header, or the current locale when nothing matches.
func (r *Resolver) FromAcceptLanguage(header string) domain.Locale {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return r.Current()
	}
	_, idx, conf := r.matcher.Match(tags...)
	if conf == language.No {
		return r.Current()
	}
	return r.supported[idx]
}

// Resolve returns the locale a request should render in: an explicit value
// when it is supported, otherwise the process-wide current locale.
func (r *Resolver) Resolve(explicit string) domain.Locale {
	if l, ok := r.Parse(explicit); ok {
		return l
	}
	return r.Current()
}

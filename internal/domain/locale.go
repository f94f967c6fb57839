package domain

// Locale is a language code selecting which pre-translated branch of a record to use.
type Locale string

const (
	LocaleEnglish  Locale = "en"
	LocaleFilipino Locale = "fil"

	// DefaultLocale is the branch every localized record must carry.
	DefaultLocale = LocaleEnglish
)

func (l Locale) String() string {
	return string(l)
}

// Localized maps a locale to its variant of a value.
type Localized[T any] map[Locale]T

// Lookup returns the value for locale, falling back to DefaultLocale when the
// locale has no entry. The zero value is returned when neither exists.
func (m Localized[T]) Lookup(locale Locale) T {
	v, _ := m.Resolve(locale)
	return v
}

// Resolve is Lookup that also reports which locale actually served the value.
// The returned locale is empty when nothing matched.
func (m Localized[T]) Resolve(locale Locale) (T, Locale) {
	if v, ok := m[locale]; ok {
		return v, locale
	}
	if v, ok := m[DefaultLocale]; ok {
		return v, DefaultLocale
	}
	var zero T
	return zero, ""
}

// HasDefault reports whether the DefaultLocale entry is present.
func (m Localized[T]) HasDefault() bool {
	_, ok := m[DefaultLocale]
	return ok
}

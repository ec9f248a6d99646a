package i18n

import (
	"fmt"
	"strings"

	"github.com/cloudfoundry/jibber_jabber"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

// Locale identifies one of the supported display languages.
type Locale string

const (
	EN Locale = "en"
	PT Locale = "pt"
)

// Auto requests detection of the system language.
const Auto = "auto"

var supportedTags = []language.Tag{
	language.English,
	language.Portuguese,
}

// Supported returns the supported locales in display order.
func Supported() []Locale {
	return []Locale{EN, PT}
}

// Default returns the locale used when nothing else is requested.
func Default() Locale {
	return EN
}

func (l Locale) String() string {
	return string(l)
}

// Valid reports whether l is a supported locale.
func (l Locale) Valid() bool {
	return lo.Contains(Supported(), l)
}

// Toggle flips between the two supported locales. Unknown values toggle to
// the default's counterpart.
func (l Locale) Toggle() Locale {
	if l == EN {
		return PT
	}
	return EN
}

// Other is an alias of Toggle that reads better in labels ("switch to ...").
func (l Locale) Other() Locale {
	return l.Toggle()
}

// Tag returns the BCP 47 tag for the locale.
func (l Locale) Tag() language.Tag {
	if l == PT {
		return language.Portuguese
	}
	return language.English
}

// ParseLocale resolves a user supplied locale. BCP 47 tags and POSIX style
// values (pt_BR, en-US.UTF-8) map to their base language; "auto" detects the
// system language.
func ParseLocale(value string) (Locale, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Default(), nil
	}
	if strings.EqualFold(trimmed, Auto) {
		return Detect(), nil
	}
	return parseTag(trimmed)
}

func parseTag(value string) (Locale, error) {
	if idx := strings.IndexAny(value, ".@"); idx >= 0 {
		value = value[:idx]
	}
	value = strings.ReplaceAll(value, "_", "-")
	tag, err := language.Parse(value)
	if err != nil {
		return "", fmt.Errorf("parse locale %q: %w", value, err)
	}
	base, _ := tag.Base()
	for _, supported := range supportedTags {
		if b, _ := supported.Base(); b == base {
			return Locale(base.String()), nil
		}
	}
	return "", fmt.Errorf("unsupported locale %q (supported: %s)", value, strings.Join(lo.Map(Supported(), func(l Locale, _ int) string {
		return l.String()
	}), ", "))
}

// Detect returns the system language when it is supported, EN otherwise.
func Detect() Locale {
	return detect(jibber_jabber.DetectLanguage)
}

func detect(detector func() (string, error)) Locale {
	lang, err := detector()
	if err != nil {
		return Default()
	}
	locale, err := parseTag(strings.TrimSpace(lang))
	if err != nil {
		return Default()
	}
	return locale
}

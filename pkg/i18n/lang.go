package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no requested language is available.
const DefaultLanguage = "en"

// MatchLanguage picks the supported language for a BCP 47 tag. An exact
// match wins over a base language match ("vi-VN" falls back to "vi").
// Unparseable or unsupported tags return fallback.
func MatchLanguage(tag string, supported []string, fallback string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" || len(supported) == 0 {
		return fallback
	}

	t, err := language.Parse(tag)
	if err != nil {
		return fallback
	}

	normalized := make([]string, len(supported))
	for i, s := range supported {
		normalized[i] = strings.ToLower(s)
	}

	if exact := strings.ToLower(t.String()); slices.Contains(normalized, exact) {
		return supported[slices.Index(normalized, exact)]
	}

	if base, conf := t.Base(); conf != language.No {
		if i := slices.Index(normalized, base.String()); i >= 0 {
			return supported[i]
		}
	}
	return fallback
}

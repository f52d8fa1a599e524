package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxLenString validates that the trimmed value has at most max characters.
// Length is counted in runes so that Vietnamese diacritics count once.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(strings.TrimSpace(value)) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

package address

import (
	"strings"
	"unicode"
)

// IsValidCharacters reports whether input is non-blank and made up solely of
// letters, combining marks, ASCII digits, whitespace, hyphens, commas and
// periods. Any other rune, including the replacement rune produced for
// invalid UTF-8, rejects the whole string.
func IsValidCharacters(input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}
	for _, r := range input {
		if !isNameRune(r) {
			return false
		}
	}
	return true
}

func isNameRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '-', r == ',', r == '.':
		return true
	case unicode.IsLetter(r), unicode.IsMark(r), unicode.IsSpace(r):
		return true
	}
	return false
}

package address

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// foldKey returns the comparison key for a province or ward name.
// Casers keep internal state, so a fresh one is created per call.
func foldKey(name string) string {
	return cases.Fold().String(norm.NFC.String(name))
}

// normalizeName trims surrounding whitespace and composes the name to NFC.
// It returns an empty string for blank input.
func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return norm.NFC.String(name)
}

// sortVietnamese orders names using Vietnamese collation rules so that,
// for example, "Đ" sorts after "D" rather than after "Z".
func sortVietnamese(names []string) {
	collate.New(language.Vietnamese).SortStrings(names)
}

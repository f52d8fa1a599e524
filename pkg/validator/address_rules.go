package validator

import (
	"strings"

	"github.com/dmitrymomot/vnaddress/pkg/address"
)

// MaxNameLength bounds province and ward names checked by AddressRules.
// The longest real names are well under this.
const MaxNameLength = 100

// AddressBook answers province and ward membership questions.
// *address.Database satisfies it.
type AddressBook interface {
	IsValidProvince(name string) bool
	IsValidAddressPair(province, ward string) bool
}

// VietnameseText validates that value only contains letters, combining marks,
// ASCII digits, whitespace, hyphens, commas and periods.
func VietnameseText(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return address.IsValidCharacters(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "contains characters not allowed in Vietnamese names",
			TranslationKey: "validation.vietnamese_text",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Province validates that value names a province known to book.
func Province(field string, book AddressBook, value string) Rule {
	return Rule{
		Check: func() bool {
			return book != nil && book.IsValidProvince(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "unknown province",
			TranslationKey: "validation.province",
			TranslationValues: map[string]any{
				"field":    field,
				"province": strings.TrimSpace(value),
			},
		},
	}
}

// WardInProvince validates that ward belongs to province according to book.
// The failure is reported against field, normally the ward field.
func WardInProvince(field string, book AddressBook, province, ward string) Rule {
	return Rule{
		Check: func() bool {
			return book != nil && book.IsValidAddressPair(province, ward)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "ward does not belong to the selected province",
			TranslationKey: "validation.ward_in_province",
			TranslationValues: map[string]any{
				"field":    field,
				"province": strings.TrimSpace(province),
				"ward":     strings.TrimSpace(ward),
			},
		},
	}
}

// AddressRules returns the full rule chain for a province/ward pair:
// required, length and character checks for both fields, then province
// existence and ward membership. The membership rule is skipped when the
// province itself is invalid so the failure is reported once, on the
// province field.
func AddressRules(book AddressBook, provinceField, wardField, province, ward string) []Rule {
	pair := WardInProvince(wardField, book, province, ward)
	pair.Skip = func() bool {
		return book == nil || !book.IsValidProvince(province)
	}

	return []Rule{
		RequiredString(provinceField, province),
		MaxLenString(provinceField, province, MaxNameLength),
		VietnameseText(provinceField, province),
		Province(provinceField, book, province),
		RequiredString(wardField, ward),
		MaxLenString(wardField, ward, MaxNameLength),
		VietnameseText(wardField, ward),
		pair,
	}
}

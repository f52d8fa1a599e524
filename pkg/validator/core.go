package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes a single failed rule. TranslationKey and
// TranslationValues let callers render the message in the user's language.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors collects the failures of one Apply call.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) match any ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether field has at least one failure.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field in rule order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Keys returns the translation keys recorded for field in rule order.
func (ve ValidationErrors) Keys(field string) []string {
	var keys []string
	for _, err := range ve {
		if err.Field == field {
			keys = append(keys, err.TranslationKey)
		}
	}
	return keys
}

// Fields returns the failed field names in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
	// Skip, when set and returning true, excludes the rule from Apply.
	Skip func() bool
}

// Apply runs rules in order and returns ValidationErrors for those that fail,
// or nil when all pass.
//
// Once a field has failed, later rules for the same field are skipped so a
// blank province reports "required" instead of every downstream check.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if errs.Has(rule.Error.Field) {
			continue
		}
		if rule.Skip != nil && rule.Skip() {
			continue
		}
		if !rule.Check() {
			errs.Add(rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, if any.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}

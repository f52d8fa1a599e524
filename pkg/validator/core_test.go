package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vnaddress/pkg/validator"
)

func passing(field string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return true },
		Error: validator.ValidationError{Field: field, Message: "never fails"},
	}
}

func failing(field, message string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: field, Message: message, TranslationKey: "test." + message},
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins field messages", func(t *testing.T) {
		errs := validator.ValidationErrors{
			{Field: "province", Message: "unknown province"},
			{Field: "ward", Message: "field is required"},
		}
		assert.Equal(t, "validation failed: province: unknown province; ward: field is required", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())

	errs.Add(validator.ValidationError{Field: "ward", Message: "first", TranslationKey: "k.first"})
	errs.Add(validator.ValidationError{Field: "province", Message: "second", TranslationKey: "k.second"})
	errs.Add(validator.ValidationError{Field: "ward", Message: "third", TranslationKey: "k.third"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("ward"))
	assert.False(t, errs.Has("street"))
	assert.Equal(t, []string{"first", "third"}, errs.Get("ward"))
	assert.Equal(t, []string{"k.second"}, errs.Keys("province"))
	assert.Nil(t, errs.Get("street"))
	assert.Equal(t, []string{"ward", "province"}, errs.Fields())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when every rule passes", func(t *testing.T) {
		assert.NoError(t, validator.Apply(passing("a"), passing("b")))
	})

	t.Run("returns nil without rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects failures in order", func(t *testing.T) {
		err := validator.Apply(failing("b", "bad b"), passing("a"), failing("a", "bad a"))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "b", verrs[0].Field)
		assert.Equal(t, "a", verrs[1].Field)
	})

	t.Run("stops at the first failure per field", func(t *testing.T) {
		called := false
		later := validator.Rule{
			Check: func() bool { called = true; return false },
			Error: validator.ValidationError{Field: "ward", Message: "later"},
		}

		err := validator.Apply(failing("ward", "first"), later)
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, []string{"first"}, verrs.Get("ward"))
		assert.False(t, called)
	})

	t.Run("honours skip", func(t *testing.T) {
		rule := failing("ward", "skipped")
		rule.Skip = func() bool { return true }
		assert.NoError(t, validator.Apply(rule))
	})

	t.Run("matches ErrValidationFailed", func(t *testing.T) {
		err := validator.Apply(failing("ward", "bad"))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		err := fmt.Errorf("save address: %w", validator.Apply(failing("province", "bad")))
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("province"))
		assert.True(t, validator.IsValidationError(err))
	})
}

// Package validator provides composable validation rules for address input
// such as the province and ward fields of a delivery or registration form.
//
// A Rule couples a boolean Check with translation-friendly error metadata.
// Rules are evaluated with Apply, which collects the failures into a
// ValidationErrors slice that satisfies the error interface, so several
// field-level problems can be returned from a single call.
//
// # Usage
//
//	db := address.MustDefault()
//
//	err := validator.Apply(validator.AddressRules(db,
//	    "province", "ward",
//	    form.Province, form.Ward,
//	)...)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field) or translate verrs.Keys(field)
//	    }
//	}
//
// Apply stops evaluating a field after its first failure, so a blank ward is
// reported as "validation.required" only.
//
// # Translation keys
//
//   - validation.required         – blank value.
//   - validation.max_length       – value longer than the allowed rune count.
//   - validation.vietnamese_text  – value has characters outside the allowed set.
//   - validation.province         – unknown province.
//   - validation.ward_in_province – ward not part of the given province.
//
// ValidationError.Translate renders a failure through any Translator, such
// as *i18n.Translator, looking the field label up under "fields.<name>":
//
//	tr, _ := i18n.Embedded(ctx)
//	msgs := verrs.Translate(tr, "vi") // map[field][]message
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed with errors.Is and can be
// recovered from wrapped errors with ExtractValidationErrors.
package validator

// Package i18n translates validation messages for address forms.
//
// Translations are nested maps keyed by language code. Keys use dot
// notation ("validation.required") and values may contain named
// placeholders in the form %{name}:
//
//	en:
//	  validation:
//	    required: "The %{field} field is required"
//
// # Architecture
//
// A Translator is built once from a TranslationAdapter and is read-only
// afterwards, so it is safe for concurrent use. MapAdapter serves in-memory
// maps and FSAdapter reads every JSON or YAML file in a directory of an
// fs.FS. Embedded returns a translator over the bundled English and
// Vietnamese locales.
//
// # Usage
//
//	tr, err := i18n.Embedded(ctx)
//	if err != nil {
//	    return err
//	}
//	msg := tr.T("vi-VN", "validation.required", "field", "phường/xã")
//
// Lookups resolve the language with MatchLanguage ("vi-VN" and "VI" both
// select "vi"), then fall back to the default language and finally to the
// key itself.
//
// # Error Handling
//
// Loading errors wrap one of the package sentinels (ErrFailedToParseFile,
// ErrNoTranslations, ...) with errors.Join, so they can be matched with
// errors.Is.
package i18n

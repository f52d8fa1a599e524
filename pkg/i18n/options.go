package i18n

import "log/slog"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when the requested one is
// missing. Empty values are ignored.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithLogger sets the logger. A discard logger is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every key that falls
// back to the key itself. Off by default.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.missingLogMode = log
	}
}

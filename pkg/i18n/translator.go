package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/dmitrymomot/vnaddress/pkg/logger"
)

// Translator looks up translations by language and dot-separated key.
// It is immutable after NewTranslator returns.
type Translator struct {
	translations   map[string]map[string]any
	languages      []string
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads translations through adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      logger.Discard(),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.languages = make([]string, 0, len(translations))
	for lang := range translations {
		t.languages = append(t.languages, lang)
	}
	sort.Strings(t.languages)

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.languages))
	return t, nil
}

func validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		return ErrNoTranslations
	}
	for lang, m := range trans {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidTranslation)
		}
		if m == nil {
			return fmt.Errorf("%w: nil translations for language %q", ErrInvalidTranslation, lang)
		}
	}
	return nil
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	return append([]string(nil), t.languages...)
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Language resolves a requested tag to a loaded language code.
func (t *Translator) Language(tag string) string {
	return MatchLanguage(tag, t.languages, t.defaultLang)
}

// HasTranslation reports whether lang has a string value for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from args
// given as name, value pairs. The lookup tries the resolved language, then
// the default language, then returns key itself.
//
//	tr.T("vi", "validation.required", "field", "phường/xã")
func (t *Translator) T(lang, key string, args ...string) string {
	resolved := t.Language(lang)
	if tmpl, ok := t.lookup(resolved, key); ok {
		return sprintf(tmpl, args)
	}
	if resolved != t.defaultLang {
		if tmpl, ok := t.lookup(t.defaultLang, key); ok {
			return sprintf(tmpl, args)
		}
	}

	if t.missingLogMode {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	return sprintf(key, args)
}

// Td works like T but returns defaultValue instead of the key.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	resolved := t.Language(lang)
	if tmpl, ok := t.lookup(resolved, key); ok {
		return sprintf(tmpl, args)
	}
	if tmpl, ok := t.lookup(t.defaultLang, key); ok {
		return sprintf(tmpl, args)
	}
	return sprintf(defaultValue, args)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	m, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := getTranslation(m, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// getTranslation walks m along the dot-separated key.
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		if current, ok = asMap(val); !ok {
			return nil, false
		}
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf replaces %{name} placeholders. Unknown placeholders are kept and
// a trailing unpaired argument is ignored.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

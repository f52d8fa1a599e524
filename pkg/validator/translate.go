package validator

import (
	"fmt"
	"sort"
)

// Translator renders a translation key with name, value argument pairs.
// *i18n.Translator satisfies it.
type Translator interface {
	T(lang, key string, args ...string) string
}

// Translate renders the error in lang. The "field" value is itself looked
// up under "fields.<name>" so labels can be localized too. Without a
// translator, or when the key is unknown, Message is returned.
func (e ValidationError) Translate(tr Translator, lang string) string {
	if tr == nil || e.TranslationKey == "" {
		return e.Message
	}

	keys := make([]string, 0, len(e.TranslationValues))
	for k := range e.TranslationValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		val := fmt.Sprint(e.TranslationValues[k])
		if k == "field" {
			if label := tr.T(lang, "fields."+val); label != "fields."+val {
				val = label
			}
		}
		args = append(args, k, val)
	}

	msg := tr.T(lang, e.TranslationKey, args...)
	if msg == e.TranslationKey {
		return e.Message
	}
	return msg
}

// Translate renders every error in lang, keyed by field in rule order.
func (ve ValidationErrors) Translate(tr Translator, lang string) map[string][]string {
	if len(ve) == 0 {
		return nil
	}
	out := make(map[string][]string)
	for _, err := range ve {
		out[err.Field] = append(out[err.Field], err.Translate(tr, lang))
	}
	return out
}

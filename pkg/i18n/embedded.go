package i18n

import (
	"context"
	"embed"
)

//go:embed locales
var locales embed.FS

// Embedded returns a translator over the bundled locales (en, vi).
func Embedded(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, NewFSAdapter(locales, "locales"), options...)
}

package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a translation file into a map keyed by language code.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension accepts the extension with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// ParserForFile returns the parser matching the file extension, or nil.
func ParserForFile(name string) Parser {
	ext := path.Ext(name)
	for _, p := range []Parser{NewJSONParser(), NewYAMLParser()} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return byLanguage(data)
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return byLanguage(data)
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// byLanguage checks that every top-level value is a map of translations.
func byLanguage(data map[string]any) (map[string]map[string]any, error) {
	if len(data) == 0 {
		return nil, ErrNoTranslations
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		m, ok := asMap(val)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidTranslation, lang, val)
		}
		result[lang] = m
	}
	return result, nil
}

// asMap accepts both map shapes the decoders can produce.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

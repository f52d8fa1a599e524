package address

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a dataset document into province records.
type Parser interface {
	// Parse decodes data. It must reject documents that are not a list of
	// provinces, each carrying a wards list.
	Parse(ctx context.Context, data []byte) ([]ProvinceRecord, error)

	// SupportsFileExtension reports whether the parser handles files with the
	// given extension, with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// ParserForFile returns the parser registered for the file extension of name,
// or nil when the extension is unknown.
func ParserForFile(name string) Parser {
	ext := path.Ext(name)
	for _, p := range []Parser{NewJSONParser(), NewYAMLParser()} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// JSONParser decodes the bundled JSON dataset format.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, data []byte) ([]ProvinceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var records []ProvinceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Join(ErrInvalidDataset, err)
	}
	if err := checkShape(records); err != nil {
		return nil, err
	}
	return records, nil
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// YAMLParser decodes datasets written as YAML sequences.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) ([]ProvinceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var records []ProvinceRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, errors.Join(ErrInvalidDataset, err)
	}
	if err := checkShape(records); err != nil {
		return nil, err
	}
	return records, nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// checkShape rejects null documents and provinces missing their wards list.
// An explicitly empty wards list is accepted.
func checkShape(records []ProvinceRecord) error {
	if records == nil {
		return errors.Join(ErrInvalidDataset, errors.New("document is empty or null"))
	}
	for i, rec := range records {
		if rec.Wards == nil {
			return errors.Join(ErrInvalidDataset, fmt.Errorf("province %q at index %d has no wards list", rec.Name, i))
		}
	}
	return nil
}

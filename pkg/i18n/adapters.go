package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter loads translations from a source.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	if a.Data == nil {
		return map[string]map[string]any{}, nil
	}
	return a.Data, nil
}

// FSAdapter loads every JSON and YAML file in dir. Files are merged in
// directory order, later files overriding top-level keys of earlier ones.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter returns nil when fsys is nil.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a == nil {
		return nil, ErrNilAdapter
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := ParserForFile(entry.Name())
		if parser == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		translations, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("file %q", name), err)
		}

		for lang, m := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			maps.Copy(all[lang], m)
		}
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslations, a.dir)
	}
	return all, nil
}

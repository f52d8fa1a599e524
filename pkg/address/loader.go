package address

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
)

//go:embed data/provinces.json
var embeddedData embed.FS

const embeddedPath = "data/provinces.json"

// EmbeddedSource is the dataset label used in log records for the bundled sample.
const EmbeddedSource = "embedded:" + embeddedPath

// Load reads a dataset document from r, decodes it with parser and builds a
// Database.
func Load(ctx context.Context, r io.Reader, parser Parser, opts ...Option) (*Database, error) {
	if r == nil || parser == nil {
		return nil, ErrNilSource
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrReadDataset, err)
	}

	records, err := parser.Parse(ctx, data)
	if err != nil {
		return nil, err
	}
	return New(records, opts...)
}

// LoadFile loads a dataset from the filesystem. The parser is chosen by the
// file extension.
func LoadFile(ctx context.Context, path string, opts ...Option) (*Database, error) {
	return loadFrom(ctx, path, os.ReadFile, opts)
}

// LoadFS loads a dataset from fsys. The parser is chosen by the file
// extension.
func LoadFS(ctx context.Context, fsys fs.FS, path string, opts ...Option) (*Database, error) {
	if fsys == nil {
		return nil, ErrNilSource
	}
	return loadFrom(ctx, path, func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, name)
	}, opts)
}

// Embedded loads the sample dataset bundled with the package. It lists every
// province but only a subset of wards; use LoadFile with a complete dataset
// when ward membership must be exhaustive.
func Embedded(ctx context.Context, opts ...Option) (*Database, error) {
	opts = append([]Option{WithSource(EmbeddedSource)}, opts...)
	return LoadFS(ctx, embeddedData, embeddedPath, opts...)
}

var defaultDatabase = sync.OnceValues(func() (*Database, error) {
	return Embedded(context.Background())
})

// Default returns the embedded dataset, loading it on first use. Every call
// returns the same Database, or the same error if loading failed.
func Default() (*Database, error) {
	return defaultDatabase()
}

// MustDefault works like Default but panics if the embedded dataset cannot be
// loaded.
func MustDefault() *Database {
	db, err := Default()
	if err != nil {
		panic(err)
	}
	return db
}

func loadFrom(ctx context.Context, path string, read func(string) ([]byte, error), opts []Option) (*Database, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	parser := ParserForFile(path)
	if parser == nil {
		return nil, errors.Join(ErrUnsupportedFormat, fmt.Errorf("file %q", path))
	}

	data, err := read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(ErrDatasetNotFound, err)
		}
		return nil, errors.Join(ErrReadDataset, err)
	}

	records, err := parser.Parse(ctx, data)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("dataset %q", path), err)
	}

	opts = append([]Option{WithSource(path)}, opts...)
	return New(records, opts...)
}

package wordlist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

// Loader fetches the values of the named list.
// Names are slash-separated, e.g. "en_us/first_names".
type Loader interface {
	Load(ctx context.Context, name string) ([]string, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, name string) ([]string, error)

// Load implements Loader.
func (f LoaderFunc) Load(ctx context.Context, name string) ([]string, error) {
	return f(ctx, name)
}

// FSOption configures an FSLoader.
type FSOption func(*FSLoader)

// WithExtension appends ext (e.g. ".txt") to every list name before lookup.
func WithExtension(ext string) FSOption {
	return func(l *FSLoader) { l.ext = ext }
}

// FSLoader loads lists from a file system, one file per list.
type FSLoader struct {
	fsys fs.FS
	ext  string
}

// NewFSLoader returns a loader reading from fsys. It panics if fsys is nil.
func NewFSLoader(fsys fs.FS, opts ...FSOption) *FSLoader {
	if fsys == nil {
		panic("wordlist: nil file system")
	}
	l := &FSLoader{fsys: fsys}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load implements Loader.
func (l *FSLoader) Load(ctx context.Context, name string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadFailed, err)
	}
	path := name + l.ext
	if !fs.ValidPath(path) || path == "." {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	f, err := l.fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrListNotFound, name)
		}
		return nil, errors.Join(ErrLoadFailed, err)
	}
	defer f.Close()

	values, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", name, err)
	}
	return values, nil
}

// Chain returns a loader that asks each loader in turn and returns the first
// list found. Errors other than ErrListNotFound stop the search.
func Chain(loaders ...Loader) Loader {
	return LoaderFunc(func(ctx context.Context, name string) ([]string, error) {
		for _, l := range loaders {
			values, err := l.Load(ctx, name)
			if errors.Is(err, ErrListNotFound) {
				continue
			}
			return values, err
		}
		return nil, fmt.Errorf("%w: %q", ErrListNotFound, name)
	})
}

package wordlist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/fakegen/pkg/generator"
	"github.com/dmitrymomot/fakegen/pkg/logger"
)

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used to report list loading.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// Registry memoizes pools built from a Loader. It is safe for concurrent use.
type Registry struct {
	loader Loader
	logger *slog.Logger

	mu      sync.Mutex
	entries map[string]*registryEntry
}

type registryEntry struct {
	mu     sync.Mutex
	loaded bool
	pool   *generator.Generator
	err    error
}

// NewRegistry returns an empty registry backed by loader. It panics if loader is nil.
func NewRegistry(loader Loader, opts ...RegistryOption) *Registry {
	if loader == nil {
		panic("wordlist: nil loader")
	}
	r := &Registry{
		loader:  loader,
		logger:  logger.Noop(),
		entries: make(map[string]*registryEntry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Pool returns the pool generator for the named list, loading it on first use.
// The outcome of a load is memoized, except for context cancellation which
// leaves the list unloaded so a later call can retry.
func (r *Registry) Pool(ctx context.Context, name string) (*generator.Generator, error) {
	e := r.entry(name)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.loaded {
		return e.pool, e.err
	}

	values, err := r.loader.Load(ctx, name)
	if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return nil, err
	}

	e.loaded = true
	if err != nil {
		e.err = err
		r.logger.WarnContext(ctx, "word list failed to load", logger.List(name), logger.Error(err))
		return nil, err
	}

	pool, err := generator.NewPool(values...)
	if err != nil {
		e.err = fmt.Errorf("list %q: %w", name, errors.Join(ErrEmptyList, err))
		return nil, e.err
	}
	e.pool = pool.Named(name)
	r.logger.DebugContext(ctx, "word list loaded", logger.List(name), logger.Count(len(values)))
	return e.pool, nil
}

// Values returns a copy of the named list's values.
func (r *Registry) Values(ctx context.Context, name string) ([]string, error) {
	p, err := r.Pool(ctx, name)
	if err != nil {
		return nil, err
	}
	return p.Values(), nil
}

// Preload loads every named list and returns all failures joined.
func (r *Registry) Preload(ctx context.Context, names ...string) error {
	var errs []error
	for _, name := range names {
		if _, err := r.Pool(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Loaded returns the sorted names of lists loaded successfully so far.
func (r *Registry) Loaded() []string {
	r.mu.Lock()
	entries := make(map[string]*registryEntry, len(r.entries))
	for k, v := range r.entries {
		entries[k] = v
	}
	r.mu.Unlock()

	names := make([]string, 0, len(entries))
	for name, e := range entries {
		e.mu.Lock()
		if e.loaded && e.err == nil {
			names = append(names, name)
		}
		e.mu.Unlock()
	}
	slices.Sort(names)
	return names
}

func (r *Registry) entry(name string) *registryEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[name]
	if !ok {
		e = &registryEntry{}
		r.entries[name] = e
	}
	return e
}

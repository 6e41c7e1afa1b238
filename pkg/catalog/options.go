package catalog

import (
	"io/fs"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/fakegen/pkg/logger"
	"github.com/dmitrymomot/fakegen/pkg/wordlist"
)

// Option configures Load, LoadAll and Build.
type Option func(*options)

type options struct {
	registry    *wordlist.Registry
	loaders     []wordlist.Loader
	definitions fs.FS
	logger      *slog.Logger
}

// WithRegistry loads word lists through r. Sharing one registry between
// catalogs loads every list once. It takes precedence over WithLoader.
func WithRegistry(r *wordlist.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithLoader adds a word-list source consulted before the embedded lists.
// Loaders added later are consulted first.
func WithLoader(l wordlist.Loader) Option {
	return func(o *options) {
		if l != nil {
			o.loaders = append([]wordlist.Loader{l}, o.loaders...)
		}
	}
}

// WithDefinitions reads catalog definitions ("<locale>.yaml") from fsys
// instead of the embedded ones.
func WithDefinitions(fsys fs.FS) Option {
	return func(o *options) {
		if fsys != nil {
			o.definitions = fsys
		}
	}
}

// WithLogger sets the logger used while loading word lists and building
// catalogs. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		definitions: Definitions(),
		logger:      logger.Noop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// wordRegistry returns the configured registry or builds one over the
// configured loaders and the embedded word lists.
func (o *options) wordRegistry() *wordlist.Registry {
	if o.registry != nil {
		return o.registry
	}
	loaders := append(slices.Clone(o.loaders), EmbeddedLoader())
	o.registry = wordlist.NewRegistry(wordlist.Chain(loaders...), wordlist.WithLogger(o.logger))
	return o.registry
}


package catalog

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/fakegen/pkg/generator"
)

// Catalog is an immutable set of named generators for one locale.
// It is safe for concurrent use; samplers bring their own Source.
type Catalog struct {
	locale     string
	generators map[string]*generator.Generator
	names      []string
}

// Locale returns the locale the catalog was built for, e.g. "en_us".
func (c *Catalog) Locale() string { return c.locale }

// Names returns the sorted names of the public generators.
func (c *Catalog) Names() []string { return slices.Clone(c.names) }

// Has reports whether name is a public generator of c.
func (c *Catalog) Has(name string) bool {
	_, ok := c.generators[name]
	return ok
}

// Get returns the named public generator.
func (c *Catalog) Get(name string) (*generator.Generator, error) {
	g, ok := c.generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in locale %q", ErrGeneratorNotFound, name, c.locale)
	}
	return g, nil
}

// MustGet is like Get but panics when the generator does not exist.
func (c *Catalog) MustGet(name string) *generator.Generator {
	g, err := c.Get(name)
	if err != nil {
		panic(err)
	}
	return g
}

// Sample draws one value from the named generator.
func (c *Catalog) Sample(name string, src generator.Source) (string, error) {
	g, err := c.Get(name)
	if err != nil {
		return "", err
	}
	return g.Sample(src), nil
}

// SampleN draws n values from the named generator.
func (c *Catalog) SampleN(name string, src generator.Source, n int) ([]string, error) {
	g, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	return g.SampleN(src, n), nil
}

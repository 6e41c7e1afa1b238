package generator

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a Generator.
type Kind int

// Generator variants.
const (
	KindPool Kind = iota
	KindTemplate
	KindTransform
)

func (k Kind) String() string {
	switch k {
	case KindPool:
		return "pool"
	case KindTemplate:
		return "template"
	case KindTransform:
		return "transform"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Generator produces a string from a Source.
// Only the fields of its Kind are populated; the zero value is not usable,
// build generators with NewPool, NewTemplate or NewTransform.
type Generator struct {
	kind Kind
	name string

	// KindPool
	values []string

	// KindTemplate
	rules []compiledRule

	// KindTransform
	inner *Generator
	fn    TransformFunc
}

// Sample draws one value. It never fails for a generator returned by one of
// the constructors; it consumes randomness from src only.
func (g *Generator) Sample(src Source) string {
	switch g.kind {
	case KindPool:
		return g.values[src.IntN(len(g.values))]
	case KindTemplate:
		return g.rules[src.IntN(len(g.rules))].render(src)
	case KindTransform:
		return g.fn(g.inner.Sample(src))
	default:
		panic(fmt.Sprintf("generator: unknown kind %d", int(g.kind)))
	}
}

// SampleN draws n successive values. A non-positive n yields an empty slice.
func (g *Generator) SampleN(src Source, n int) []string {
	if n <= 0 {
		return []string{}
	}
	out := make([]string, n)
	for i := range out {
		out[i] = g.Sample(src)
	}
	return out
}

// Kind reports the variant of g.
func (g *Generator) Kind() Kind { return g.kind }

// Name returns the label attached with Named, or "" if none.
func (g *Generator) Name() string { return g.name }

// Named returns a copy of g labelled with name. The copy shares g's
// immutable data, so both sample identically.
func (g *Generator) Named(name string) *Generator {
	c := *g
	c.name = name
	return &c
}

// String describes the generator, e.g. "template(names.full_name, 4 rules)".
func (g *Generator) String() string {
	var detail string
	switch g.kind {
	case KindPool:
		detail = plural(len(g.values), "value")
	case KindTemplate:
		detail = plural(len(g.rules), "rule")
	case KindTransform:
		detail = "of " + g.inner.String()
	}
	parts := make([]string, 0, 2)
	if g.name != "" {
		parts = append(parts, g.name)
	}
	parts = append(parts, detail)
	return g.kind.String() + "(" + strings.Join(parts, ", ") + ")"
}

// Must panics if err is non-nil and returns g otherwise.
// Use it for generator graphs wired at program start.
func Must(g *Generator, err error) *Generator {
	if err != nil {
		panic(err)
	}
	return g
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/fakegen/pkg/generator"
	"github.com/dmitrymomot/fakegen/pkg/logger"
	"github.com/dmitrymomot/fakegen/pkg/wordlist"
)

// Build compiles a definition into a Catalog. Includes are resolved against
// the definitions source (the embedded catalogs unless WithDefinitions is
// given) and word lists are loaded through the configured registry.
//
// Every generator is built, internal ones included, so a definition with an
// unknown reference, a cycle or an invalid pattern fails here rather than at
// sampling time.
func Build(ctx context.Context, def *Definition, opts ...Option) (*Catalog, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: nil definition", ErrInvalidDefinition)
	}
	return build(ctx, def, newOptions(opts))
}

func build(ctx context.Context, def *Definition, o *options) (*Catalog, error) {
	expanded, err := expand(o.definitions, def)
	if err != nil {
		return nil, err
	}

	b := &builder{
		ctx:      ctx,
		def:      expanded,
		registry: o.wordRegistry(),
		log:      o.logger,
		built:    make(map[string]*generator.Generator),
		exprs:    make(map[string]*generator.Generator),
		state:    make(map[string]visitState),
	}

	c := &Catalog{
		locale:     expanded.Locale,
		generators: make(map[string]*generator.Generator),
	}
	for _, name := range expanded.names() {
		g, err := b.resolve(name)
		if err != nil {
			return nil, err
		}
		if b.internal(name) {
			continue
		}
		c.generators[name] = g
		c.names = append(c.names, name)
	}

	b.log.DebugContext(ctx, "catalog built",
		logger.Locale(c.locale),
		logger.Count(len(c.names)),
	)
	return c, nil
}

type visitState uint8

const (
	unvisited visitState = iota
	visiting
	done
)

type builder struct {
	ctx      context.Context
	def      *Definition
	registry *wordlist.Registry
	log      *slog.Logger

	built map[string]*generator.Generator
	exprs map[string]*generator.Generator
	state map[string]visitState
	path  []string
}

func (b *builder) internal(name string) bool {
	if p, ok := b.def.Pools[name]; ok {
		return p.Internal
	}
	return b.def.Templates[name].Internal
}

// resolve builds the named generator after everything it references.
func (b *builder) resolve(name string) (*generator.Generator, error) {
	switch b.state[name] {
	case done:
		return b.built[name], nil
	case visiting:
		return nil, fmt.Errorf("%w: %s -> %s", ErrCycle, strings.Join(b.path, " -> "), name)
	}

	b.state[name] = visiting
	b.path = append(b.path, name)
	defer func() { b.path = b.path[:len(b.path)-1] }()

	var (
		g   *generator.Generator
		err error
	)
	if p, ok := b.def.Pools[name]; ok {
		g, err = b.buildPool(name, p)
	} else if t, ok := b.def.Templates[name]; ok {
		g, err = b.buildTemplate(name, t)
	} else {
		err = fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
	if err != nil {
		return nil, err
	}

	b.built[name] = g
	b.state[name] = done
	return g, nil
}

func (b *builder) buildPool(name string, p PoolDefinition) (*generator.Generator, error) {
	switch {
	case p.List != "" && len(p.Values) > 0:
		return nil, fmt.Errorf("%w: pool %q sets both list and values", ErrInvalidDefinition, name)
	case p.List != "":
		pool, err := b.registry.Pool(b.ctx, p.List)
		if err != nil {
			return nil, fmt.Errorf("pool %q: %w", name, err)
		}
		return pool.Named(name), nil
	case len(p.Values) > 0:
		pool, err := generator.NewPool(p.Values...)
		if err != nil {
			return nil, fmt.Errorf("%w: pool %q: %w", ErrInvalidDefinition, name, err)
		}
		return pool.Named(name), nil
	default:
		return nil, fmt.Errorf("%w: pool %q needs a list or values", ErrInvalidDefinition, name)
	}
}

func (b *builder) buildTemplate(name string, t TemplateDefinition) (*generator.Generator, error) {
	rules := make([]generator.Rule, 0, len(t.Rules))
	for i, r := range t.Rules {
		args := make([]*generator.Generator, 0, len(r.Args))
		for _, raw := range r.Args {
			e, err := parseExpr(raw)
			if err != nil {
				return nil, fmt.Errorf("template %q rule %d: %w", name, i, err)
			}
			g, err := b.resolveExpr(e)
			if err != nil {
				return nil, err
			}
			args = append(args, g)
		}
		rules = append(rules, generator.NewRule(r.Pattern, args...))
	}

	g, err := generator.NewTemplate(rules...)
	if err != nil {
		return nil, fmt.Errorf("%w: template %q: %w", ErrInvalidDefinition, name, err)
	}
	return g.Named(name), nil
}

// resolveExpr builds an argument expression. Identical transform expressions
// share one generator.
func (b *builder) resolveExpr(e *expr) (*generator.Generator, error) {
	if e.inner == nil {
		if !b.defined(e.ref) {
			return nil, fmt.Errorf("%w: %q referenced from %q", ErrUnknownGenerator, e.ref, b.path[len(b.path)-1])
		}
		return b.resolve(e.ref)
	}

	key := e.String()
	if g, ok := b.exprs[key]; ok {
		return g, nil
	}
	inner, err := b.resolveExpr(e.inner)
	if err != nil {
		return nil, err
	}
	g, err := generator.NewTransform(inner, transforms[e.transform])
	if err != nil {
		return nil, errors.Join(ErrInvalidDefinition, err)
	}
	g = g.Named(key)
	b.exprs[key] = g
	return g, nil
}

func (b *builder) defined(name string) bool {
	if _, ok := b.def.Pools[name]; ok {
		return true
	}
	_, ok := b.def.Templates[name]
	return ok
}

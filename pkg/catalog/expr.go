package catalog

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/fakegen/pkg/generator"
)

// transforms maps the names usable in argument expressions to their functions.
var transforms = map[string]generator.TransformFunc{
	"lowercase":       generator.LowercaseFold,
	"ascii_lowercase": generator.ASCIILowercase,
	"capitalize":      generator.CapitalizeFirst,
}

// TransformNames returns the transform names accepted in argument expressions.
func TransformNames() []string {
	return slices.Sorted(maps.Keys(transforms))
}

// expr is a parsed argument expression: either a reference to a generator or
// a transform applied to a nested expression.
type expr struct {
	ref       string
	transform string
	inner     *expr
}

func (e *expr) String() string {
	if e.inner == nil {
		return e.ref
	}
	return e.transform + "(" + e.inner.String() + ")"
}

func parseExpr(s string) (*expr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty argument", ErrInvalidDefinition)
	}

	open := strings.IndexByte(s, '(')
	if open < 0 {
		if strings.ContainsAny(s, ") \t") {
			return nil, fmt.Errorf("%w: malformed argument %q", ErrInvalidDefinition, s)
		}
		return &expr{ref: s}, nil
	}
	if !strings.HasSuffix(s, ")") || open == 0 {
		return nil, fmt.Errorf("%w: malformed argument %q", ErrInvalidDefinition, s)
	}

	name := strings.TrimSpace(s[:open])
	if _, ok := transforms[name]; !ok {
		return nil, fmt.Errorf("%w: %q in %q", ErrUnknownTransform, name, s)
	}
	inner, err := parseExpr(s[open+1 : len(s)-1])
	if err != nil {
		return nil, err
	}
	return &expr{transform: name, inner: inner}, nil
}

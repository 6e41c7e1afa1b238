package generator

import (
	"errors"
	"fmt"
	"strings"
)

// Rule is one alternative of a template: a pattern with `{}` placeholders and
// the generators that fill them, in order. Use `{{` and `}}` for literal braces.
type Rule struct {
	Pattern string
	Args    []*Generator
}

// NewRule is shorthand for Rule{Pattern: pattern, Args: args}.
func NewRule(pattern string, args ...*Generator) Rule {
	return Rule{Pattern: pattern, Args: args}
}

// compiledRule holds a pattern split around its placeholders:
// len(segments) == len(args)+1.
type compiledRule struct {
	segments []string
	args     []*Generator
}

// NewTemplate returns a generator that picks one of rules uniformly at random
// and renders it. A rule listed n times is n times as likely to be chosen.
func NewTemplate(rules ...Rule) (*Generator, error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}
	compiled := make([]compiledRule, 0, len(rules))
	for i, r := range rules {
		cr, err := compileRule(r)
		if err != nil {
			return nil, errors.Join(err, fmt.Errorf("rule %d %q", i, r.Pattern))
		}
		compiled = append(compiled, cr)
	}
	return &Generator{kind: KindTemplate, rules: compiled}, nil
}

// Rules returns the number of rules of a template, or 0 for other kinds.
func (g *Generator) Rules() int {
	if g.kind != KindTemplate {
		return 0
	}
	return len(g.rules)
}

func compileRule(r Rule) (compiledRule, error) {
	segments, err := splitPattern(r.Pattern)
	if err != nil {
		return compiledRule{}, err
	}
	if len(segments)-1 != len(r.Args) {
		return compiledRule{}, fmt.Errorf("%w: %d placeholders, %d arguments",
			ErrPlaceholderMismatch, len(segments)-1, len(r.Args))
	}
	for i, a := range r.Args {
		if a == nil {
			return compiledRule{}, fmt.Errorf("%w: argument %d", ErrNilGenerator, i)
		}
	}
	return compiledRule{
		segments: segments,
		args:     append([]*Generator(nil), r.Args...),
	}, nil
}

// splitPattern cuts pattern at every `{}` and unescapes `{{` and `}}`.
func splitPattern(pattern string) ([]string, error) {
	var (
		segments []string
		cur      strings.Builder
	)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '{':
			if i+1 < len(pattern) && pattern[i+1] == '{' {
				cur.WriteByte('{')
				i++
				continue
			}
			if i+1 < len(pattern) && pattern[i+1] == '}' {
				segments = append(segments, cur.String())
				cur.Reset()
				i++
				continue
			}
			return nil, fmt.Errorf("%w: unmatched '{' at offset %d", ErrMalformedPattern, i)
		case '}':
			if i+1 < len(pattern) && pattern[i+1] == '}' {
				cur.WriteByte('}')
				i++
				continue
			}
			return nil, fmt.Errorf("%w: unmatched '}' at offset %d", ErrMalformedPattern, i)
		default:
			cur.WriteByte(c)
		}
	}
	return append(segments, cur.String()), nil
}

func (r compiledRule) render(src Source) string {
	var b strings.Builder
	b.WriteString(r.segments[0])
	for i, arg := range r.args {
		b.WriteString(arg.Sample(src))
		b.WriteString(r.segments[i+1])
	}
	return b.String()
}

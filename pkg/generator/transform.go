package generator

import (
	"strings"
	"unicode/utf8"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TransformFunc is a pure string mapping applied to a sampled value.
type TransformFunc func(string) string

// NewTransform returns a generator that samples inner and maps the result through fn.
func NewTransform(inner *Generator, fn TransformFunc) (*Generator, error) {
	if inner == nil {
		return nil, ErrNilGenerator
	}
	if fn == nil {
		return nil, ErrNilTransform
	}
	return &Generator{kind: KindTransform, inner: inner, fn: fn}, nil
}

// Lowercase wraps g with LowercaseFold. It panics if g is nil.
func Lowercase(g *Generator) *Generator {
	return Must(NewTransform(g, LowercaseFold))
}

// ASCIILower wraps g with ASCIILowercase. It panics if g is nil.
func ASCIILower(g *Generator) *Generator {
	return Must(NewTransform(g, ASCIILowercase))
}

// Capitalize wraps g with CapitalizeFirst. It panics if g is nil.
func Capitalize(g *Generator) *Generator {
	return Must(NewTransform(g, CapitalizeFirst))
}

// LowercaseFold lowercases every rune using Unicode simple case mapping,
// independent of locale.
func LowercaseFold(s string) string {
	return strings.ToLower(s)
}

// ASCIILowercase transliterates s to ASCII, lowercases it and drops every
// rune outside a-z. Any script is romanized ("Иванов" becomes "ivanov") and
// the result may be empty. ASCIILowercase(ASCIILowercase(s)) equals
// ASCIILowercase(s).
func ASCIILowercase(s string) string {
	ascii := unidecode.Unidecode(s)

	var b strings.Builder
	b.Grow(len(ascii))
	for i := 0; i < len(ascii); i++ {
		c := ascii[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c >= 'a' && c <= 'z' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// CapitalizeFirst uppercases the first rune of s and leaves the rest as is.
// Full Unicode mappings apply, so "ßa" becomes "SSa". Empty input yields ""
// and an invalid leading byte leaves s unchanged.
func CapitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}

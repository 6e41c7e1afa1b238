package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/fakegen/pkg/logger"
)

// DefaultLocale is used by Load when no locale is given.
const DefaultLocale = "en_us"

// Load builds the catalog of the locale best matching locale, which may be a
// catalog name ("fr_fr"), a BCP 47 tag ("fr-CA") or an Accept-Language value.
func Load(ctx context.Context, locale string, opts ...Option) (*Catalog, error) {
	o := newOptions(opts)
	if locale == "" {
		locale = DefaultLocale
	}

	available, err := LocalesIn(o.definitions)
	if err != nil {
		return nil, err
	}
	name, err := ResolveLocale(locale, available...)
	if err != nil {
		return nil, err
	}

	def, err := ReadDefinition(o.definitions, name)
	if err != nil {
		return nil, err
	}
	c, err := build(ctx, def, o)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", name, err)
	}
	o.logger.InfoContext(ctx, "catalog loaded", logger.Locale(name), logger.Count(len(c.names)))
	return c, nil
}

// LoadAll builds the catalog of every available locale, keyed by locale name.
// The catalogs share one word-list registry.
func LoadAll(ctx context.Context, opts ...Option) (map[string]*Catalog, error) {
	o := newOptions(opts)
	available, err := LocalesIn(o.definitions)
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		return nil, fmt.Errorf("%w: no locale definitions found", ErrUnsupportedLocale)
	}

	out := make(map[string]*Catalog, len(available))
	var errs []error
	for _, name := range available {
		def, err := ReadDefinition(o.definitions, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		c, err := build(ctx, def, o)
		if err != nil {
			errs = append(errs, fmt.Errorf("locale %q: %w", name, err))
			continue
		}
		out[name] = c
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	o.logger.InfoContext(ctx, "catalogs loaded", logger.Count(len(out)))
	return out, nil
}

// Locales returns the sorted locales of the embedded catalogs.
func Locales() []string {
	names, err := LocalesIn(Definitions())
	if err != nil {
		panic(err)
	}
	return names
}

// LocalesIn lists the definitions in fsys that declare a locale. Definitions
// without one, like common.yaml, exist only to be included.
func LocalesIn(fsys fs.FS) ([]string, error) {
	matches, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSuffix(m, path.Ext(m))
		def, err := ReadDefinition(fsys, name)
		if err != nil {
			return nil, err
		}
		if def.Locale != "" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

// ResolveLocale maps s to one of supported (the embedded locales when none are
// given). Exact names match first; otherwise s is parsed as an
// Accept-Language value and matched with golang.org/x/text/language, so
// "en", "en-GB" and "fr-CH, fr;q=0.9" all resolve.
func ResolveLocale(s string, supported ...string) (string, error) {
	if len(supported) == 0 {
		supported = Locales()
	}

	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for _, l := range supported {
		if key == strings.ToLower(l) {
			return l, nil
		}
	}

	names := make([]string, 0, len(supported))
	tags := make([]language.Tag, 0, len(supported))
	for _, l := range supported {
		tag, err := language.Parse(strings.ReplaceAll(l, "_", "-"))
		if err != nil {
			continue
		}
		names = append(names, l)
		tags = append(tags, tag)
	}

	desired, _, err := language.ParseAcceptLanguage(strings.ReplaceAll(s, "_", "-"))
	if err != nil || len(desired) == 0 || len(tags) == 0 {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
	}

	_, idx, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
	}
	return names[idx], nil
}

package catalog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"path"
	"slices"

	"gopkg.in/yaml.v3"
)

// Definition is the data-driven description of a catalog.
// Generator names are free-form but conventionally "<group>.<name>".
type Definition struct {
	Locale    string                        `yaml:"locale"`
	Include   []string                      `yaml:"include"`
	Pools     map[string]PoolDefinition     `yaml:"pools"`
	Templates map[string]TemplateDefinition `yaml:"templates"`
}

// PoolDefinition takes its values either inline or from a word list.
type PoolDefinition struct {
	List     string   `yaml:"list"`
	Values   []string `yaml:"values"`
	Internal bool     `yaml:"internal"`
}

// TemplateDefinition lists the alternatives of a template generator.
type TemplateDefinition struct {
	Rules    []RuleDefinition `yaml:"rules"`
	Internal bool             `yaml:"internal"`
}

// RuleDefinition is one alternative: a pattern with `{}` placeholders and one
// argument expression per placeholder. An argument is a generator name or a
// transform applied to an expression, e.g. "capitalize(lorem.word)".
type RuleDefinition struct {
	Pattern string   `yaml:"pattern"`
	Args    []string `yaml:"args"`
}

// ParseDefinition decodes a YAML catalog definition. Unknown fields are rejected.
func ParseDefinition(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return &Definition{}, nil
		}
		return nil, errors.Join(ErrInvalidDefinition, err)
	}
	return &def, nil
}

// ReadDefinition reads "<name>.yaml" from fsys.
func ReadDefinition(fsys fs.FS, name string) (*Definition, error) {
	p := name + ".yaml"
	if !fs.ValidPath(p) {
		return nil, fmt.Errorf("%w: definition name %q", ErrInvalidDefinition, name)
	}
	f, err := fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("definition %q: %w", name, err)
	}
	defer f.Close()

	def, err := ParseDefinition(f)
	if err != nil {
		return nil, fmt.Errorf("definition %q: %w", name, err)
	}
	return def, nil
}

// expand merges def with its includes, read from fsys, into a definition
// without includes. A generator defined twice across the merged files is an
// error; includes already merged are skipped.
func expand(fsys fs.FS, def *Definition) (*Definition, error) {
	out := &Definition{
		Locale:    def.Locale,
		Pools:     make(map[string]PoolDefinition),
		Templates: make(map[string]TemplateDefinition),
	}
	seen := make(map[string]bool)

	var merge func(d *Definition, from string) error
	merge = func(d *Definition, from string) error {
		for _, inc := range d.Include {
			inc = path.Clean(inc)
			if seen[inc] {
				continue
			}
			seen[inc] = true
			if fsys == nil {
				return fmt.Errorf("%w: include %q without a definitions source", ErrInvalidDefinition, inc)
			}
			child, err := ReadDefinition(fsys, inc)
			if err != nil {
				return err
			}
			if err := merge(child, inc); err != nil {
				return err
			}
		}
		for name, p := range d.Pools {
			if err := claim(out, name, from); err != nil {
				return err
			}
			out.Pools[name] = p
		}
		for name, t := range d.Templates {
			if err := claim(out, name, from); err != nil {
				return err
			}
			out.Templates[name] = t
		}
		return nil
	}

	if err := merge(def, "definition"); err != nil {
		return nil, err
	}
	return out, nil
}

func claim(d *Definition, name, from string) error {
	_, inPools := d.Pools[name]
	_, inTemplates := d.Templates[name]
	if inPools || inTemplates {
		return fmt.Errorf("%w: %q redefined in %s", ErrDuplicateGenerator, name, from)
	}
	return nil
}

// names returns every generator name of an expanded definition, sorted.
func (d *Definition) names() []string {
	all := slices.Collect(maps.Keys(d.Pools))
	all = append(all, slices.Collect(maps.Keys(d.Templates))...)
	slices.Sort(all)
	return all
}

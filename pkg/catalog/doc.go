// Package catalog turns data-driven definitions into ready-to-sample
// generators and ships the en_us and fr_fr catalogs.
//
// A definition is YAML. Pools draw from a word list or inline values;
// templates list rules whose arguments are generator names or transforms of
// them:
//
//	locale: en_us
//	include: [common]
//	pools:
//	  names.first_name: {list: en_us/first_names}
//	  names.greeting: {values: [Hi, Hello], internal: true}
//	templates:
//	  names.full_name:
//	    rules:
//	      - {pattern: "{} {}", args: [names.first_name, names.last_name]}
//	      - {pattern: "{}", args: ["capitalize(ascii_lowercase(names.last_name))"]}
//
// The transforms are lowercase, ascii_lowercase and capitalize. Internal
// generators can be referenced but are not exposed by the Catalog.
//
// Build compiles every generator up front and reports unknown references,
// cycles, duplicate names and invalid patterns. Load picks the definition of a
// locale (resolved with golang.org/x/text/language, so "fr-CA" or an
// Accept-Language header work) and builds it:
//
//	c, err := catalog.Load(ctx, "en-US")
//	if err != nil {
//		return err
//	}
//	src := generator.NewSource(42)
//	name, _ := c.Sample(catalog.FullName, src)
//
// Word lists come from the embedded data unless other sources are added with
// WithLoader (a directory, S3 or Redis, see package wordlist). Lists are
// memoized in a wordlist.Registry; pass one with WithRegistry to share it
// between catalogs.
package catalog

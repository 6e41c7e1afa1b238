// Package generator composes small random generators into generators of
// human-plausible fake data.
//
// A Generator is one of three variants:
//
//   - Pool picks one value uniformly from a fixed, non-empty list.
//   - Template picks one Rule uniformly, samples every generator the rule
//     references (left to right) and substitutes the results into the rule's
//     `{}` placeholders.
//   - Transform samples a wrapped generator and maps the result through a
//     pure string function (see LowercaseFold, ASCIILowercase, CapitalizeFirst).
//
// Variants nest freely: a Transform may wrap a Template whose rules reference
// other Transforms, and so on. Generators are immutable after construction and
// safe for concurrent use. All randomness comes from the Source passed to
// Sample, so a seeded Source yields byte-for-byte reproducible output.
//
// # Usage
//
//	first := generator.Must(generator.NewPool("Ada", "Grace", "Linus"))
//	last := generator.Must(generator.NewPool("Lovelace", "Hopper", "Torvalds"))
//
//	full := generator.Must(generator.NewTemplate(
//	    generator.NewRule("{} {}", first, last),
//	    generator.NewRule("{}", last),
//	))
//
//	src := generator.NewSource(42)
//	fmt.Println(full.Sample(src))                            // e.g. "Grace Hopper"
//	fmt.Println(generator.ASCIILower(full).Sample(src))      // e.g. "linustorvalds"
//
// # Biasing
//
// Rules are never deduplicated. Listing a rule twice doubles its probability,
// which is the supported way to favour one alternative over another.
//
// # Errors
//
// Every misconfiguration is reported by the constructors, never by Sample:
//
//   - ErrEmptyPool           a pool without values.
//   - ErrNoRules             a template without rules.
//   - ErrPlaceholderMismatch placeholder count differs from the argument count.
//   - ErrMalformedPattern    a lone '{' or '}' in a pattern.
//   - ErrNilGenerator        a nil generator reference.
//   - ErrNilTransform        a nil transform function.
//
// Must turns a constructor error into a panic for statically wired catalogs.
package generator

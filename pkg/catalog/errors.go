package catalog

import "errors"

var (
	// ErrInvalidDefinition is returned for malformed YAML, patterns or pool entries.
	ErrInvalidDefinition = errors.New("catalog: invalid definition")

	// ErrDuplicateGenerator is returned when a name is defined twice, directly or through includes.
	ErrDuplicateGenerator = errors.New("catalog: duplicate generator name")

	// ErrUnknownGenerator is returned when a rule argument names no defined generator.
	ErrUnknownGenerator = errors.New("catalog: unknown generator reference")

	// ErrUnknownTransform is returned for an argument expression with an unregistered transform.
	ErrUnknownTransform = errors.New("catalog: unknown transform")

	// ErrCycle is returned when templates reference each other in a loop.
	ErrCycle = errors.New("catalog: generator reference cycle")

	// ErrUnsupportedLocale is returned when no available locale matches the request.
	ErrUnsupportedLocale = errors.New("catalog: unsupported locale")

	// ErrGeneratorNotFound is returned by lookups for names the catalog does not expose.
	ErrGeneratorNotFound = errors.New("catalog: generator not found")
)

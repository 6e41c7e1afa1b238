package generator

import "errors"

var (
	// ErrEmptyPool is returned when a pool is constructed without values.
	ErrEmptyPool = errors.New("generator: pool must contain at least one value")

	// ErrNoRules is returned when a template is constructed without rules.
	ErrNoRules = errors.New("generator: template must contain at least one rule")

	// ErrPlaceholderMismatch is returned when a rule's placeholder count differs from its argument count.
	ErrPlaceholderMismatch = errors.New("generator: placeholder count does not match argument count")

	// ErrMalformedPattern is returned for patterns containing an unmatched brace.
	ErrMalformedPattern = errors.New("generator: malformed pattern")

	// ErrNilGenerator is returned when a nil generator is referenced.
	ErrNilGenerator = errors.New("generator: nil generator")

	// ErrNilTransform is returned when a transform generator is built without a function.
	ErrNilTransform = errors.New("generator: nil transform function")
)

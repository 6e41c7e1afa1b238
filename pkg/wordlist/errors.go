package wordlist

import "errors"

var (
	// ErrListNotFound is returned when a loader has no list with the requested name.
	ErrListNotFound = errors.New("wordlist: list not found")

	// ErrEmptyList is returned when a list contains no values.
	ErrEmptyList = errors.New("wordlist: list is empty")

	// ErrInvalidName is returned for names that cannot be mapped to a source location.
	ErrInvalidName = errors.New("wordlist: invalid list name")

	// ErrLoadFailed wraps failures of the underlying source.
	ErrLoadFailed = errors.New("wordlist: failed to load list")

	// ErrInvalidConfig is returned when a loader is constructed with incomplete configuration.
	ErrInvalidConfig = errors.New("wordlist: invalid loader configuration")

	// ErrRedisNotReady is returned when a Redis server does not answer pings in time.
	ErrRedisNotReady = errors.New("wordlist: redis not ready")
)

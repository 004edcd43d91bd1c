package domain

import "errors"

var (
	// ErrInvalidKey is returned when a cache key is empty. Key validation
	// runs before any hashing, file or network I/O, so an invalid key never
	// produces partial side effects.
	ErrInvalidKey = errors.New("invalid cache key")

	// ErrInvalidArgument is returned for malformed batch input, such as an
	// unparseable request body at the HTTP boundary.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCorruptRecord is returned when stored bytes do not decode into the
	// expected (value, expiration) shape. Corruption is surfaced to the
	// caller rather than silently treated as a cache miss.
	ErrCorruptRecord = errors.New("corrupt cache record")
)

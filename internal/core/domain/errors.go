package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// Cache adapters return it to signal a miss.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCacheUnavailable indicates the summary cache backing store could
	// not be reached. Callers treat it as a miss, never a failure.
	ErrCacheUnavailable = errors.New("summary cache unavailable")
)

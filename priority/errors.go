package priority

import "errors"

var (
	// ErrEmpty is returned by the min/max accessors of a queue without entries.
	ErrEmpty = errors.New("priority queue is empty")
	// ErrNotFound is returned when no entry has the requested key.
	ErrNotFound = errors.New("key not found")
)

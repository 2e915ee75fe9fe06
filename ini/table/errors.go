package table

import "errors"

var (
	// ErrOverflow indicates a new key would push the load factor past 50%.
	ErrOverflow = errors.New("table: capacity ceiling reached")

	// ErrBadCapacity indicates a capacity that is not a power of two >= 2.
	ErrBadCapacity = errors.New("table: capacity must be a power of two >= 2")
)

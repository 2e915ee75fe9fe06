package alloc

import "errors"

var (
	// ErrOutOfMemory indicates the aligned request does not fit in the remaining capacity.
	ErrOutOfMemory = errors.New("alloc: arena exhausted")

	// ErrBadSize indicates a negative or overflowing allocation size.
	ErrBadSize = errors.New("alloc: invalid allocation size")

	// ErrReleased indicates an allocation on an arena whose block was released.
	ErrReleased = errors.New("alloc: arena released")

	// ErrAlignment indicates a type whose alignment exceeds the arena's 8 bytes.
	ErrAlignment = errors.New("alloc: type alignment exceeds 8 bytes")
)

package alloc

import (
	"unsafe"

	"github.com/joshuapare/inikit/internal/buf"
	"github.com/joshuapare/inikit/internal/format"
)

// MakeSlice carves a zeroed []T of length and capacity n out of the arena.
//
// T must not contain Go pointers (strings, slices, maps, pointers...): the
// garbage collector does not scan arena memory. Use Span for references.
func MakeSlice[T any](a *Arena, n int) ([]T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if int(unsafe.Alignof(zero)) > format.Alignment {
		return nil, ErrAlignment
	}
	if n < 0 {
		return nil, ErrBadSize
	}
	if n == 0 || size == 0 {
		return make([]T, n), nil
	}
	total, ok := buf.MulOverflowSafe(n, size)
	if !ok || total > a.Cap() {
		return nil, ErrOutOfMemory
	}

	b, err := a.Alloc(total)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

// Append appends elems to s, moving s into a larger arena array when its
// capacity is exhausted. The old array is not reclaimed.
//
// The same pointer-free restriction as MakeSlice applies to T.
func Append[T any](a *Arena, s []T, elems ...T) ([]T, error) {
	if cap(s)-len(s) >= len(elems) {
		return append(s, elems...), nil
	}

	newCap := 2 * cap(s)
	if need := len(s) + len(elems); newCap < need {
		newCap = need
	}
	if newCap < minAppendCap {
		newCap = minAppendCap
	}

	grown, err := MakeSlice[T](a, newCap)
	if err != nil {
		return s, err
	}
	grown = grown[:len(s)]
	copy(grown, s)
	return append(grown, elems...), nil
}

// minAppendCap is the smallest array Append allocates.
const minAppendCap = 8

// Package buf provides overflow-checked size arithmetic for sizing arena
// allocations from untrusted input lengths.
package buf

import (
	"math"
)

// AddOverflowSafe adds two non-negative sizes, returning ok = false when the
// result would overflow int or an operand is negative.
func AddOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 || a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// MulOverflowSafe multiplies two non-negative sizes, returning ok = false
// when the result would overflow int or an operand is negative.
// This is the count * elementSize check for arena arrays.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// Size accumulates a byte count. Once a step overflows the total stays
// invalid; check it once at the end instead of after every step.
type Size struct {
	n  int
	ok bool
}

// NewSize starts a total at n.
func NewSize(n int) Size {
	return Size{n: n, ok: n >= 0}
}

// Add adds n bytes.
func (s *Size) Add(n int) {
	if !s.ok {
		return
	}
	s.n, s.ok = AddOverflowSafe(s.n, n)
}

// AddMul adds count elements of elemSize bytes.
func (s *Size) AddMul(count, elemSize int) {
	if !s.ok {
		return
	}
	n, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		s.ok = false
		return
	}
	s.Add(n)
}

// Total returns the accumulated size and whether no step overflowed.
func (s Size) Total() (int, bool) {
	if !s.ok {
		return 0, false
	}
	return s.n, true
}

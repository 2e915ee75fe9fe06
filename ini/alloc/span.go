package alloc

import "unsafe"

// Span is an arena-relative reference to a byte range: a non-owning handle
// that stays meaningful for as long as the arena is neither reset nor released.
type Span struct {
	Off uint32
	Len uint32
}

// SpanSize is the number of arena bytes one Span occupies.
const SpanSize = int(unsafe.Sizeof(Span{}))

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Len == 0
}

// End returns the offset one past the last byte.
func (s Span) End() int {
	return int(s.Off) + int(s.Len)
}

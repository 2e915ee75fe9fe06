package alloc

import (
	"math"
	"unsafe"

	"github.com/joshuapare/inikit/internal/format"
)

// maxCapacity keeps every offset representable in a Span.
const maxCapacity = math.MaxUint32 &^ format.AlignmentMask

// Arena is a bump allocator over one fixed-size block.
type Arena struct {
	buf []byte

	// off is the bump pointer: the next allocation starts at or after it.
	// Always 8-byte aligned and <= len(buf).
	off int

	// peak is the high-water mark of off. Not cleared by Reset.
	peak int

	released bool
}

// New reserves a block of at least capacity bytes.
// The capacity is rounded up to a multiple of 8 so the offset invariant holds
// for the last allocation too.
func New(capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	capacity = format.Align8(capacity)
	if capacity > maxCapacity {
		capacity = maxCapacity
	}
	return &Arena{buf: make([]byte, capacity)}
}

// Alloc returns a zeroed region of size bytes starting on an 8-byte boundary.
func (a *Arena) Alloc(size int) ([]byte, error) {
	_, b, err := a.AllocSpan(size)
	return b, err
}

// AllocSpan is Alloc that also returns the arena-relative span of the region.
//
// On failure the arena is not modified.
func (a *Arena) AllocSpan(size int) (Span, []byte, error) {
	if a.released {
		return Span{}, nil, ErrReleased
	}
	if size < 0 {
		return Span{}, nil, ErrBadSize
	}

	aligned := format.Align8(a.off)
	if size > len(a.buf)-aligned {
		return Span{}, nil, ErrOutOfMemory
	}

	end := aligned + size
	b := a.buf[aligned:end:end]
	clear(b)

	// Capacity is a multiple of 8, so the rounded end never passes it.
	a.off = format.Align8(end)
	if a.off > a.peak {
		a.peak = a.off
	}
	return Span{Off: uint32(aligned), Len: uint32(size)}, b, nil
}

// CopyBytes duplicates b into arena storage.
func (a *Arena) CopyBytes(b []byte) (Span, error) {
	sp, dst, err := a.AllocSpan(len(b))
	if err != nil {
		return Span{}, err
	}
	copy(dst, b)
	return sp, nil
}

// CopyString duplicates s into arena storage.
func (a *Arena) CopyString(s string) (Span, error) {
	sp, dst, err := a.AllocSpan(len(s))
	if err != nil {
		return Span{}, err
	}
	copy(dst, s)
	return sp, nil
}

// Bytes returns the bytes a span refers to. The slice aliases arena memory.
// Returns nil for spans outside the live block.
func (a *Arena) Bytes(sp Span) []byte {
	end := int(sp.Off) + int(sp.Len)
	if a.released || end > len(a.buf) {
		return nil
	}
	return a.buf[sp.Off:end:end]
}

// String returns the string a span refers to without copying.
// The string is only valid until the next Reset or Release.
func (a *Arena) String(sp Span) string {
	b := a.Bytes(sp)
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Reset rewinds the offset to zero without clearing memory.
// After invoking this method every region and span previously handed out is invalid.
func (a *Arena) Reset() {
	a.off = 0
}

// Release drops the underlying block. The arena cannot allocate afterwards.
func (a *Arena) Release() {
	a.buf = nil
	a.off = 0
	a.released = true
}

// Len returns the number of bytes consumed, alignment padding included.
func (a *Arena) Len() int {
	return a.off
}

// Cap returns the capacity of the block.
func (a *Arena) Cap() int {
	return len(a.buf)
}

// Available returns how many bytes an 8-byte-aligned allocation may still take.
func (a *Arena) Available() int {
	return len(a.buf) - format.Align8(a.off)
}

// Peak returns the high-water mark of Len. Reset does not lower it.
func (a *Arena) Peak() int {
	return a.peak
}

// Released reports whether Release was called.
func (a *Arena) Released() bool {
	return a.released
}

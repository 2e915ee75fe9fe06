// Package alloc provides the bump-pointer arena that owns every string and
// structure produced while parsing one INI document.
//
// # Overview
//
// An Arena reserves one contiguous block up front and hands out zeroed,
// 8-byte-aligned regions by advancing a single offset. There is no
// per-allocation free: the arena is a lifetime-scoping device. Everything
// allocated from it lives until Reset or Release.
//
// Key characteristics:
//   - O(1) allocation: align the offset, check capacity, zero, advance
//   - No growth: an allocation that does not fit fails with ErrOutOfMemory
//     and leaves the arena untouched
//   - Only 8-byte alignment is supported
//
// # Spans
//
// Parsed keys, values and section names are referred to by Span, an
// (offset, length) pair relative to the start of the block. Spans are plain
// integers, so structures holding them can themselves be carved out of the
// arena with MakeSlice without hiding Go pointers from the garbage collector.
//
// # Usage Example
//
//	a := alloc.New(4096)
//	sp, err := a.CopyString("localhost")
//	if err != nil {
//	    return err // ErrOutOfMemory
//	}
//	fmt.Println(a.String(sp))
//
//	a.Reset() // every span and slice handed out so far is now invalid
//
// # Thread Safety
//
// An Arena is single-owner and not safe for concurrent use.
package alloc

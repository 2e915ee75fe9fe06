package parse

import (
	"unsafe"

	"github.com/joshuapare/inikit/ini/alloc"
)

// Entry is one recognised assignment. All three spans point into the arena;
// Section is a non-owning reference to the section name active when the
// assignment was read, and is empty for the default section.
type Entry struct {
	Key     alloc.Span
	Value   alloc.Span
	Section alloc.Span
}

// EntrySize is the number of arena bytes one Entry occupies.
const EntrySize = int(unsafe.Sizeof(Entry{}))

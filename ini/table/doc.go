// Package table provides a fixed-capacity, open-addressing hash table whose
// slot array and keys live in an alloc.Arena.
//
// # Layout
//
// The slot array is allocated once, at construction, with alloc.MakeSlice.
// Each slot holds the key span, the value span, the key's FNV-1a hash and an
// occupancy flag; nothing in it is a Go pointer.
//
// # Probing
//
// Set and Get start at hash(key) & (capacity-1) and probe linearly, wrapping
// at the end of the array. A lookup stops at the first empty slot, which is
// only correct because entries are never removed: the probe chain from a
// key's home slot to the key never passes an empty slot.
//
// # Capacity Ceiling
//
// The table never resizes. Inserting a new key while Len() >= Cap()/2 fails
// with ErrOverflow. This is a hard table-size ceiling, not a growth trigger:
// size the table for the document (types.Limits.TableCapacity) instead.
//
// # Values
//
// Values are opaque spans supplied by the caller. The table never reads or
// copies them; only keys are duplicated into the arena.
//
// # Thread Safety
//
// Table instances are not thread-safe.
package table

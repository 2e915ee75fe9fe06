package table

import (
	"bytes"
	"unsafe"

	"github.com/joshuapare/inikit/ini/alloc"
	"github.com/joshuapare/inikit/internal/format"
)

// slot is one cell of the open-addressing array.
type slot struct {
	key  alloc.Span
	val  alloc.Span
	hash uint32
	used uint32 // 0 = empty
}

// SlotSize is the number of arena bytes one slot occupies.
const SlotSize = int(unsafe.Sizeof(slot{}))

// Table maps keys to opaque value spans.
type Table struct {
	arena *alloc.Arena
	slots []slot
	mask  uint32
	n     int
}

// Stats reports table metrics.
type Stats struct {
	Len      int // Number of keys
	Cap      int // Number of slots
	MaxKeys  int // Keys accepted before ErrOverflow
	MaxProbe int // Longest distance from a key's home slot
}

// New allocates a table of capacity slots from a.
func New(a *alloc.Arena, capacity int) (*Table, error) {
	if capacity < format.MinTableCapacity || !format.IsPowerOfTwo(capacity) {
		return nil, ErrBadCapacity
	}
	slots, err := alloc.MakeSlice[slot](a, capacity)
	if err != nil {
		return nil, err
	}
	return &Table{
		arena: a,
		slots: slots,
		mask:  uint32(capacity - 1),
	}, nil
}

// Set stores value under key.
//
// If key is present its value is replaced in place and the existing key span
// is returned. Otherwise key is duplicated into the arena and the new span is
// returned. Inserting a new key into a table at its ceiling fails with
// ErrOverflow; updating an existing key never does.
func (t *Table) Set(key []byte, value alloc.Span) (alloc.Span, error) {
	h := Hash(key)
	i := h & t.mask
	for {
		s := &t.slots[i]
		if s.used == 0 {
			if t.n >= t.MaxKeys() {
				return alloc.Span{}, ErrOverflow
			}
			ks, err := t.arena.CopyBytes(key)
			if err != nil {
				return alloc.Span{}, err
			}
			*s = slot{key: ks, val: value, hash: h, used: 1}
			t.n++
			return ks, nil
		}
		if s.hash == h && bytes.Equal(t.arena.Bytes(s.key), key) {
			s.val = value
			return s.key, nil
		}
		// The load factor ceiling keeps at least half the slots empty,
		// so this probe always terminates.
		i = (i + 1) & t.mask
	}
}

// SetString is Set with a string key.
func (t *Table) SetString(key string, value alloc.Span) (alloc.Span, error) {
	return t.Set(stringBytes(key), value)
}

// Get returns the value stored under key.
func (t *Table) Get(key []byte) (alloc.Span, bool) {
	h := Hash(key)
	i := h & t.mask
	for range len(t.slots) {
		s := &t.slots[i]
		if s.used == 0 {
			return alloc.Span{}, false
		}
		if s.hash == h && bytes.Equal(t.arena.Bytes(s.key), key) {
			return s.val, true
		}
		i = (i + 1) & t.mask
	}
	return alloc.Span{}, false
}

// GetString is Get with a string key.
func (t *Table) GetString(key string) (alloc.Span, bool) {
	return t.Get(stringBytes(key))
}

// Len returns the number of keys.
func (t *Table) Len() int {
	return t.n
}

// Cap returns the number of slots.
func (t *Table) Cap() int {
	return len(t.slots)
}

// MaxKeys returns how many distinct keys fit under the 50% load factor cap.
func (t *Table) MaxKeys() int {
	return len(t.slots) * format.MaxLoadNumerator / format.MaxLoadDenominator
}

// LoadFactor returns Len()/Cap().
func (t *Table) LoadFactor() float64 {
	return float64(t.n) / float64(len(t.slots))
}

// Each calls fn for every key in slot-index order until fn returns false.
// The order has nothing to do with insertion order; use it for diagnostics.
func (t *Table) Each(fn func(key, value alloc.Span) bool) {
	for i := range t.slots {
		s := &t.slots[i]
		if s.used == 0 {
			continue
		}
		if !fn(s.key, s.val) {
			return
		}
	}
}

// Stats returns table metrics.
func (t *Table) Stats() Stats {
	st := Stats{Len: t.n, Cap: len(t.slots), MaxKeys: t.MaxKeys()}
	for i := range t.slots {
		s := &t.slots[i]
		if s.used == 0 {
			continue
		}
		home := s.hash & t.mask
		dist := int((uint32(i) - home) & t.mask)
		if dist > st.MaxProbe {
			st.MaxProbe = dist
		}
	}
	return st
}

// stringBytes views s as bytes without copying. The result must not be modified.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

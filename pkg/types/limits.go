package types

import (
	"fmt"

	"github.com/joshuapare/inikit/internal/format"
)

// Limits sizes the fixed-capacity structures backing one parse.
// Neither structure grows: exceeding a limit is reported as an error.
type Limits struct {
	// ArenaSize is the arena capacity in bytes.
	// 0 selects an automatic size derived from the input length.
	ArenaSize int

	// TableCapacity is the hash table slot count; must be a power of two.
	// At most TableCapacity/2 distinct keys fit.
	// 0 selects format.DefaultTableCapacity.
	TableCapacity int
}

// DefaultLimits returns the limits used by the zero-value options.
func DefaultLimits() Limits {
	return Limits{
		ArenaSize:     0,
		TableCapacity: format.DefaultTableCapacity,
	}
}

// Validate checks the limits for obviously unusable values.
func (l Limits) Validate() error {
	if l.ArenaSize < 0 {
		return NewError(KindConfig, NoOffset, fmt.Sprintf("arena size %d is negative", l.ArenaSize), nil)
	}
	if l.TableCapacity == 0 {
		return nil
	}
	if l.TableCapacity < format.MinTableCapacity || !format.IsPowerOfTwo(l.TableCapacity) {
		return NewError(KindConfig, NoOffset,
			fmt.Sprintf("table capacity %d must be a power of two >= %d", l.TableCapacity, format.MinTableCapacity), nil)
	}
	return nil
}

// Capacity returns the effective table capacity.
func (l Limits) Capacity() int {
	if l.TableCapacity == 0 {
		return format.DefaultTableCapacity
	}
	return l.TableCapacity
}

// MaxKeys returns how many distinct keys the table accepts before overflowing.
func (l Limits) MaxKeys() int {
	return l.Capacity() * format.MaxLoadNumerator / format.MaxLoadDenominator
}

// ArenaSizeFor returns the arena capacity for a parse estimated to need
// need bytes. A configured ArenaSize wins; otherwise the estimate plus
// format.ArenaSlack, never less than format.DefaultArenaSize.
func (l Limits) ArenaSizeFor(need int) int {
	if l.ArenaSize > 0 {
		return l.ArenaSize
	}
	est := format.Align8(need) + format.ArenaSlack
	if est < format.DefaultArenaSize {
		return format.DefaultArenaSize
	}
	return est
}

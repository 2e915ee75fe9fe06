package format

// Align8 returns n aligned up to the next 8-byte boundary.
// Used for arena offsets, which must stay 8-byte aligned after every allocation.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
//	Align8(16) = 16
func Align8(n int) int {
	return (n + AlignmentMask) & ^AlignmentMask
}

// IsAligned8 reports whether n sits on an 8-byte boundary.
func IsAligned8(n int) bool {
	return n&AlignmentMask == 0
}

// IsPowerOfTwo reports whether n is a positive power of two.
// Table capacities must satisfy this so hash & (cap-1) is a valid modulo.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

package table

import "github.com/joshuapare/inikit/internal/format"

// Hash returns the 32-bit FNV-1a hash of key.
func Hash(key []byte) uint32 {
	h := format.FNVOffset32
	for _, c := range key {
		h ^= uint32(c)
		h *= format.FNVPrime32
	}
	return h
}

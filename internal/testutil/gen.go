package testutil

import (
	"bytes"
	"fmt"
	"math/rand/v2"
)

// Profile defines characteristics for generated INI data.
type Profile struct {
	// Keys is the number of distinct keys written.
	Keys int

	// KeysPerSection controls how often a new section header is written.
	// 0 = all keys in the default section
	KeysPerSection int

	// CommentEvery inserts a comment line after every n assignments.
	// 0 = no comments
	CommentEvery int

	// MinValueSize and MaxValueSize bound the value length.
	// 0 = use defaults (4-16)
	MinValueSize int
	MaxValueSize int

	// Seed for reproducibility
	Seed uint64
}

// GenerateINI creates INI data with the specified profile. Keys are named
// key0, key1, ... and sections section0, section1, ...
func GenerateINI(profile Profile) []byte {
	if profile.MinValueSize == 0 {
		profile.MinValueSize = 4
	}
	if profile.MaxValueSize < profile.MinValueSize {
		profile.MaxValueSize = max(profile.MinValueSize, 16)
	}

	rng := rand.New(rand.NewPCG(profile.Seed, profile.Seed))
	var buf bytes.Buffer

	section := 0
	for i := range profile.Keys {
		if profile.KeysPerSection > 0 && i%profile.KeysPerSection == 0 {
			fmt.Fprintf(&buf, "[section%d]\n", section)
			section++
		}
		fmt.Fprintf(&buf, "key%d=%s\n", i, generateValue(profile, rng))
		if profile.CommentEvery > 0 && (i+1)%profile.CommentEvery == 0 {
			fmt.Fprintf(&buf, "; after key%d\n", i)
		}
	}
	return buf.Bytes()
}

const valueAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789_"

// generateValue creates one identifier value.
func generateValue(profile Profile, rng *rand.Rand) string {
	n := profile.MinValueSize
	if profile.MaxValueSize > profile.MinValueSize {
		n += rng.IntN(profile.MaxValueSize - profile.MinValueSize + 1)
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = valueAlphabet[rng.IntN(len(valueAlphabet))]
	}
	return string(b)
}

package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlign8(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{1, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{16, 16},
		{4095, 4096},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Align8(tt.in), "Align8(%d)", tt.in)
		require.True(t, IsAligned8(Align8(tt.in)))
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 64, 1024} {
		require.True(t, IsPowerOfTwo(n), "%d", n)
	}
	for _, n := range []int{-4, 0, 3, 6, 63, 100} {
		require.False(t, IsPowerOfTwo(n), "%d", n)
	}
}

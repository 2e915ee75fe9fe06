package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOverflowSafe(t *testing.T) {
	sum, ok := AddOverflowSafe(10, 5)
	require.True(t, ok)
	assert.Equal(t, 15, sum)

	_, ok = AddOverflowSafe(math.MaxInt, 1)
	assert.False(t, ok, "expected overflow when adding to MaxInt")

	_, ok = AddOverflowSafe(-1, 5)
	assert.False(t, ok, "negative sizes are rejected")
}

func TestMulOverflowSafe(t *testing.T) {
	tests := []struct {
		a, b   int
		want   int
		wantOK bool
	}{
		{3, 8, 24, true},
		{0, math.MaxInt, 0, true},
		{math.MaxInt / 2, 2, math.MaxInt - 1, true},
		{math.MaxInt/2 + 1, 2, 0, false},
		{-1, 8, 0, false},
	}
	for _, tt := range tests {
		got, ok := MulOverflowSafe(tt.a, tt.b)
		assert.Equal(t, tt.wantOK, ok, "%d*%d", tt.a, tt.b)
		assert.Equal(t, tt.want, got, "%d*%d", tt.a, tt.b)
	}
}

func TestSize(t *testing.T) {
	s := NewSize(100)
	s.Add(20)
	s.AddMul(3, 8)
	n, ok := s.Total()
	require.True(t, ok)
	assert.Equal(t, 144, n)

	s.AddMul(math.MaxInt, 2)
	s.Add(1)
	_, ok = s.Total()
	assert.False(t, ok, "overflow is sticky")

	_, ok = NewSize(-1).Total()
	assert.False(t, ok)
}

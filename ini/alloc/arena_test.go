package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArena_SimpleAlloc tests basic bump allocation.
func TestArena_SimpleAlloc(t *testing.T) {
	a := New(64)

	b, err := a.Alloc(10)
	require.NoError(t, err)
	require.Len(t, b, 10)
	assert.Equal(t, 16, a.Len(), "offset should be rounded up to the next 8-byte boundary")
	assert.Equal(t, 64, a.Cap())
}

// TestArena_Alignment tests that every region starts on an 8-byte boundary.
func TestArena_Alignment(t *testing.T) {
	a := New(1024)

	for _, size := range []int{1, 3, 5, 7, 9, 13, 17, 25} {
		sp, _, err := a.AllocSpan(size)
		require.NoError(t, err, "AllocSpan(%d)", size)
		assert.Zero(t, sp.Off%8, "region for size %d should be 8-byte aligned", size)
		assert.Zero(t, a.Len()%8, "offset after size %d should be 8-byte aligned", size)
	}
}

// TestArena_CapacityRounded tests that the block capacity is a multiple of 8.
func TestArena_CapacityRounded(t *testing.T) {
	assert.Equal(t, 16, New(9).Cap())
	assert.Equal(t, 0, New(-5).Cap())
}

// TestArena_OutOfMemory tests that a failed allocation leaves the arena untouched.
func TestArena_OutOfMemory(t *testing.T) {
	a := New(32)

	_, err := a.Alloc(20)
	require.NoError(t, err)
	before := a.Len()

	_, err = a.Alloc(16)
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, before, a.Len(), "failed allocation must not move the offset")

	// The remaining 8 bytes are still usable.
	b, err := a.Alloc(8)
	require.NoError(t, err)
	assert.Len(t, b, 8)
	assert.Equal(t, 0, a.Available())
}

// TestArena_ExactFit tests an allocation that consumes the whole block.
func TestArena_ExactFit(t *testing.T) {
	a := New(48)
	_, err := a.Alloc(48)
	require.NoError(t, err)
	_, err = a.Alloc(1)
	require.ErrorIs(t, err, ErrOutOfMemory)

	// Zero-size allocations still succeed on a full arena.
	b, err := a.Alloc(0)
	require.NoError(t, err)
	assert.Empty(t, b)
}

// TestArena_BadSize tests negative sizes.
func TestArena_BadSize(t *testing.T) {
	a := New(32)
	_, err := a.Alloc(-1)
	require.ErrorIs(t, err, ErrBadSize)
	assert.Equal(t, 0, a.Len())
}

// TestArena_Zeroed tests that reused memory is zeroed on allocation.
func TestArena_Zeroed(t *testing.T) {
	a := New(64)

	b, err := a.Alloc(16)
	require.NoError(t, err)
	for i := range b {
		b[i] = 0xAB
	}

	a.Reset()
	assert.Equal(t, 0, a.Len())

	b, err = a.Alloc(16)
	require.NoError(t, err)
	for i, c := range b {
		require.Zero(t, c, "byte %d should be zeroed after reset", i)
	}
}

// TestArena_Peak tests that Reset keeps the high-water mark.
func TestArena_Peak(t *testing.T) {
	a := New(128)
	_, err := a.Alloc(40)
	require.NoError(t, err)
	a.Reset()
	_, err = a.Alloc(8)
	require.NoError(t, err)

	assert.Equal(t, 8, a.Len())
	assert.Equal(t, 40, a.Peak())
}

// TestArena_Release tests that a released arena refuses allocations.
func TestArena_Release(t *testing.T) {
	a := New(64)
	sp, err := a.CopyString("key")
	require.NoError(t, err)

	a.Release()
	assert.True(t, a.Released())
	assert.Equal(t, 0, a.Cap())
	assert.Nil(t, a.Bytes(sp))
	assert.Equal(t, "", a.String(sp))

	_, err = a.Alloc(1)
	require.ErrorIs(t, err, ErrReleased)
}

// TestArena_CopyString tests the key store round trip.
func TestArena_CopyString(t *testing.T) {
	a := New(256)

	input := []byte("host=localhost")
	key, err := a.CopyBytes(input[:4])
	require.NoError(t, err)
	val, err := a.CopyString("localhost")
	require.NoError(t, err)

	// Mutating the source must not affect the arena copy.
	input[0] = 'X'

	assert.Equal(t, "host", a.String(key))
	assert.Equal(t, "localhost", a.String(val))
	assert.Equal(t, []byte("host"), a.Bytes(key))
	assert.Greater(t, val.Off, key.Off)
}

// TestArena_EmptySpan tests that empty spans resolve to empty values.
func TestArena_EmptySpan(t *testing.T) {
	a := New(16)
	sp, err := a.CopyString("")
	require.NoError(t, err)
	assert.True(t, sp.IsEmpty())
	assert.Equal(t, "", a.String(sp))
	assert.Equal(t, "", a.String(Span{}))
}

func BenchmarkArena_CopyString(b *testing.B) {
	a := New(1 << 20)
	b.ReportAllocs()
	for b.Loop() {
		if _, err := a.CopyString("timeout"); err != nil {
			a.Reset()
		}
	}
}

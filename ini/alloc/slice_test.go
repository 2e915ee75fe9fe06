package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	a, b Span
}

func TestMakeSlice(t *testing.T) {
	a := New(1024)

	s, err := MakeSlice[pair](a, 8)
	require.NoError(t, err)
	require.Len(t, s, 8)
	assert.Equal(t, 8, cap(s))
	assert.Equal(t, 8*int(unsafe.Sizeof(pair{})), a.Len())

	for _, p := range s {
		assert.Equal(t, pair{}, p)
	}

	// Writes land in arena memory.
	s[3].a = Span{Off: 7, Len: 2}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
	elem := uintptr(unsafe.Pointer(&s[3]))
	assert.GreaterOrEqual(t, elem, base)
	assert.Less(t, elem, base+uintptr(a.Cap()))
}

func TestMakeSlice_OutOfMemory(t *testing.T) {
	a := New(32)
	_, err := MakeSlice[pair](a, 100)
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, 0, a.Len())
}

func TestMakeSlice_Empty(t *testing.T) {
	a := New(32)
	s, err := MakeSlice[pair](a, 0)
	require.NoError(t, err)
	assert.Empty(t, s)
	assert.Equal(t, 0, a.Len())

	_, err = MakeSlice[pair](a, -1)
	require.ErrorIs(t, err, ErrBadSize)
}

func TestAppend(t *testing.T) {
	a := New(4096)

	var s []uint32
	var err error
	for i := range 100 {
		s, err = Append(a, s, uint32(i))
		require.NoError(t, err)
	}
	require.Len(t, s, 100)
	for i, v := range s {
		require.Equal(t, uint32(i), v)
	}
}

func TestAppend_OutOfMemoryKeepsSlice(t *testing.T) {
	a := New(64)

	s, err := Append(a, nil, uint64(1))
	require.NoError(t, err)
	require.Equal(t, 8, cap(s), "first append allocates the minimum array")

	for i := 2; i <= 8; i++ {
		s, err = Append(a, s, uint64(i))
		require.NoError(t, err)
	}

	// The arena is full: growing fails and the old slice is returned intact.
	s, err = Append(a, s, uint64(9))
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.Len(t, s, 8)
	assert.Equal(t, uint64(8), s[7])
}

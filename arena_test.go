package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArena(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantErr  error
	}{
		{"small capacity", 64, nil},
		{"large capacity", 1 << 20, nil},
		{"zero capacity", 0, ErrInvalidSize},
		{"negative capacity", -1, ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewArena(NewHeap(), tt.capacity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.capacity, a.Capacity())
			assert.Equal(t, 0, a.SizeInUse())
		})
	}
}

func TestArenaAllocMonotonic(t *testing.T) {
	a, err := NewArena(NewHeap(), 1024)
	require.NoError(t, err)

	prevHead := 0
	var regions [][]byte
	for _, n := range []int{1, 16, 7, 100, 33} {
		b, err := a.Alloc(n)
		require.NoError(t, err)
		require.Len(t, b, n)
		assert.Equal(t, prevHead, a.offsetOf(b), "region must start at the old head")
		assert.Greater(t, a.head, prevHead, "head must advance")
		prevHead = a.head
		regions = append(regions, b)
	}

	// Non-overlapping: each region's bytes are its own.
	for i, b := range regions {
		for j := range b {
			b[j] = byte(i + 1)
		}
	}
	for i, b := range regions {
		for _, got := range b {
			require.Equal(t, byte(i+1), got, "region %d was overwritten", i)
		}
	}
}

func TestArenaAllocInvalidSize(t *testing.T) {
	a, err := NewArena(NewHeap(), 64)
	require.NoError(t, err)

	_, err = a.Alloc(0)
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = a.Alloc(-1)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.Equal(t, 0, a.head, "failed alloc must not move the head")
}

func TestArenaExhaustion(t *testing.T) {
	a, err := NewArena(NewHeap(), 64)
	require.NoError(t, err)

	_, err = a.Alloc(65)
	assert.ErrorIs(t, err, ErrOutOfCapacity)

	// A freshly created arena serves exactly one full-capacity allocation.
	b, err := a.Alloc(64)
	require.NoError(t, err)
	require.Len(t, b, 64)
	_, err = a.Alloc(1)
	assert.ErrorIs(t, err, ErrOutOfCapacity)
}

func TestArenaFreeLIFO(t *testing.T) {
	a, err := NewArena(NewHeap(), 256)
	require.NoError(t, err)

	_, err = a.Alloc(10)
	require.NoError(t, err)
	headBefore := a.head

	b, err := a.Alloc(30)
	require.NoError(t, err)
	a.Free(b, 30)
	assert.Equal(t, headBefore, a.head, "freeing the tail must roll the head back exactly")
}

func TestArenaFreeInteriorNoop(t *testing.T) {
	a, err := NewArena(NewHeap(), 256)
	require.NoError(t, err)

	b1, err := a.Alloc(16)
	require.NoError(t, err)
	_, err = a.Alloc(16)
	require.NoError(t, err)
	headBefore := a.head

	a.Free(b1, 16)
	assert.Equal(t, headBefore, a.head, "interior free must be a no-op")
}

func TestArenaReallocInPlace(t *testing.T) {
	// Concrete layout: capacity 64, Alloc(10) consumes 16 aligned bytes.
	a, err := NewArena(NewHeap(), 64)
	require.NoError(t, err)

	b, err := a.Alloc(10)
	require.NoError(t, err)
	assert.Equal(t, 0, a.offsetOf(b))
	assert.Equal(t, 16, a.head)

	_, err = a.Alloc(50)
	assert.ErrorIs(t, err, ErrOutOfCapacity, "16 + roundUp(50) exceeds 64")

	grown, err := a.Realloc(b, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, 0, a.offsetOf(grown), "tail realloc must not move the region")
	assert.Equal(t, 32, a.head)

	shrunk, err := a.Realloc(grown, 20, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, a.offsetOf(shrunk))
	assert.Equal(t, 16, a.head)
}

func TestArenaReallocInPlaceFailureKeepsHead(t *testing.T) {
	a, err := NewArena(NewHeap(), 32)
	require.NoError(t, err)

	b, err := a.Alloc(16)
	require.NoError(t, err)

	_, err = a.Realloc(b, 16, 64)
	assert.ErrorIs(t, err, ErrOutOfCapacity)
	assert.Equal(t, 16, a.head, "head must be unchanged after a failed tail realloc")

	_, err = a.Alloc(16)
	assert.NoError(t, err)
}

func TestArenaReallocRelocates(t *testing.T) {
	a, err := NewArena(NewHeap(), 256)
	require.NoError(t, err)

	b1, err := a.Alloc(16)
	require.NoError(t, err)
	for i := range b1 {
		b1[i] = byte(i)
	}
	_, err = a.Alloc(16)
	require.NoError(t, err)

	// b1 is no longer the tail, so growing it must relocate and copy.
	moved, err := a.Realloc(b1, 16, 32)
	require.NoError(t, err)
	assert.NotEqual(t, a.offsetOf(b1), a.offsetOf(moved))
	for i := 0; i < 16; i++ {
		assert.Equal(t, byte(i), moved[i], "contents must survive relocation")
	}
}

func TestArenaReallocZeroFrees(t *testing.T) {
	a, err := NewArena(NewHeap(), 64)
	require.NoError(t, err)

	b, err := a.Alloc(16)
	require.NoError(t, err)
	nb, err := a.Realloc(b, 16, 0)
	require.NoError(t, err)
	assert.Nil(t, nb)
	assert.Equal(t, 0, a.head, "realloc to zero behaves as a tail free")
}

func TestArenaResetIdempotent(t *testing.T) {
	const capacity = 128
	a, err := NewArena(NewHeap(), capacity)
	require.NoError(t, err)

	// Drive the arena through a fill cycle, reset, and check it behaves
	// like a fresh one of the same capacity.
	fill := func(a *Arena) []error {
		var errs []error
		for _, n := range []int{64, 64, 1} {
			_, err := a.Alloc(n)
			errs = append(errs, err)
		}
		return errs
	}

	fresh, err := NewArena(NewHeap(), capacity)
	require.NoError(t, err)
	want := fill(fresh)

	fill(a)
	a.Reset()
	assert.Equal(t, 0, a.head)
	assert.Equal(t, want, fill(a))
}

func TestArenaRelease(t *testing.T) {
	a, err := NewArena(NewHeap(), 64)
	require.NoError(t, err)
	a.Release()

	assert.Panics(t, func() { a.Alloc(1) })
	assert.Panics(t, func() { a.Reset() })
	assert.Panics(t, func() { a.Release() })
}

func BenchmarkArenaAlloc(b *testing.B) {
	a, err := NewArena(NewHeap(), 1<<20)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.Alloc(64); err != nil {
			a.Reset()
		}
	}
}

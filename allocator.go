package alloc

import "errors"

// MaxAlign is the alignment granularity used by the arena allocator.
// Every arena allocation is rounded up to a multiple of it.
const MaxAlign = 16

// Predefined errors returned by allocators in this package.
var (
	// ErrOutOfCapacity means the allocator's backing buffer cannot satisfy
	// the request. It is not fatal: callers may retry against a larger
	// allocator or fail the higher-level operation.
	ErrOutOfCapacity = errors.New("alloc: out of capacity")

	// ErrInvalidSize means the requested size is zero, negative, or
	// otherwise unrepresentable by the allocator.
	ErrInvalidSize = errors.New("alloc: invalid size")

	// ErrCorruptionDetected is reported only by Pool.Validate when the
	// free list is shorter or longer than a fully drained pool's would be.
	ErrCorruptionDetected = errors.New("alloc: free list corrupted")
)

// Allocator is the capability every allocator in this package implements.
// Arena and Pool both satisfy it, so either can serve as the backing
// allocator for further arenas and pools.
//
// Callers must track allocation sizes themselves: passing a region that was
// not obtained from the same allocator, or a size that does not match the
// original request, is undefined behavior.
type Allocator interface {
	// Alloc returns a region of at least size bytes.
	Alloc(size int) ([]byte, error)

	// Realloc grows or shrinks a previously returned region, possibly
	// relocating it. Contents are preserved up to min(oldSize, newSize).
	// newSize == 0 behaves as Free and returns (nil, nil).
	Realloc(b []byte, oldSize, newSize int) ([]byte, error)

	// Free returns a region to the allocator.
	Free(b []byte, size int)
}

// Heap is the trivial Allocator backed by the Go heap. It is the usual
// allocator-of-allocators that arenas and pools are carved out of.
type Heap struct{}

// NewHeap returns a heap-backed allocator.
func NewHeap() Heap { return Heap{} }

func (Heap) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return make([]byte, size), nil
}

func (h Heap) Realloc(b []byte, oldSize, newSize int) ([]byte, error) {
	if newSize == 0 {
		h.Free(b, oldSize)
		return nil, nil
	}
	nb, err := h.Alloc(newSize)
	if err != nil {
		return nil, err
	}
	copy(nb, b[:min(oldSize, newSize)])
	return nb, nil
}

// Free is a no-op: the garbage collector reclaims the region once the
// caller drops it.
func (Heap) Free(b []byte, size int) {}

// alignUp rounds n up to the next multiple of align. align must be a
// power of two.
func alignUp(n, align int) int {
	mask := align - 1
	return (n + mask) &^ mask
}

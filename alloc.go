package alloc

import "unsafe"

// New returns a pointer to a zeroed T stored inside a.
// The pointer is valid as long as the allocator it came from is.
// T's alignment must not exceed the allocator's placement granularity
// (MaxAlign for arenas, the slot width for pools).
func New[T any](a Allocator) (*T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return new(T), nil
	}
	b, err := a.Alloc(size)
	if err != nil {
		return nil, err
	}
	clear(b)
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// NewUninitialized is New without the zeroing. Faster, but the memory
// contents are whatever the region last held.
func NewUninitialized[T any](a Allocator) (*T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return new(T), nil
	}
	b, err := a.Alloc(size)
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// MakeSlice allocates a slice of n elements of type T inside a.
// The elements are not initialized.
func MakeSlice[T any](a Allocator, n int) ([]T, error) {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if n <= 0 || elemSize == 0 {
		return nil, ErrInvalidSize
	}
	b, err := a.Alloc(elemSize * n)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// MakeSliceZeroed is MakeSlice with the elements cleared.
func MakeSliceZeroed[T any](a Allocator, n int) ([]T, error) {
	s, err := MakeSlice[T](a, n)
	if err != nil {
		return nil, err
	}
	clear(s)
	return s, nil
}

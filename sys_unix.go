//go:build unix

package alloc

import "golang.org/x/sys/unix"

// Sys is an Allocator backed by anonymous private memory mappings, keeping
// its buffers outside the Go heap. Intended as an allocator-of-allocators
// for long-lived arena and pool buffers. The size passed to Free must match
// the mapped length.
type Sys struct{}

// NewSys returns a mapping-backed allocator.
func NewSys() Sys { return Sys{} }

func (Sys) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	b, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s Sys) Realloc(b []byte, oldSize, newSize int) ([]byte, error) {
	if newSize == 0 {
		s.Free(b, oldSize)
		return nil, nil
	}
	nb, err := s.Alloc(newSize)
	if err != nil {
		return nil, err
	}
	copy(nb, b[:min(oldSize, newSize)])
	s.Free(b, oldSize)
	return nb, nil
}

func (Sys) Free(b []byte, size int) {
	// Munmap can only fail on an address that was never mapped, which the
	// Allocator contract already rules out.
	_ = unix.Munmap(b[:size])
}

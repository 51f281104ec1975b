package alloc

import "unsafe"

// Arena is a bump allocator over a single fixed-capacity buffer.
// Allocation advances a head offset; only the most recent allocation can be
// resized or freed in place, and Reset reclaims everything at once.
// Not goroutine-safe.
type Arena struct {
	backing Allocator
	buf     []byte // backing memory, exclusively owned
	head    int    // offset of the next free byte
}

// NewArena creates an arena by requesting capacity bytes from backing.
func NewArena(backing Allocator, capacity int) (*Arena, error) {
	buf, err := backing.Alloc(capacity)
	if err != nil {
		return nil, err
	}
	return &Arena{backing: backing, buf: buf[:capacity]}, nil
}

// Alloc returns a region of size bytes starting at the current head.
// The head advances by size rounded up to MaxAlign, so successive regions
// never overlap. The region is valid until the arena is reset or released.
func (a *Arena) Alloc(size int) ([]byte, error) {
	a.panicIfReleased()
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	newHead := a.head + alignUp(size, MaxAlign)
	if newHead > len(a.buf) {
		return nil, ErrOutOfCapacity
	}
	b := a.buf[a.head : a.head+size : newHead]
	a.head = newHead
	return b, nil
}

// Realloc resizes a previously allocated region. If b is the most recent
// allocation it grows or shrinks in place, leaving the head unchanged on
// failure. Otherwise a fresh region is allocated and min(oldSize, newSize)
// bytes are copied; the old region becomes dead space until Reset.
func (a *Arena) Realloc(b []byte, oldSize, newSize int) ([]byte, error) {
	a.panicIfReleased()
	if newSize == 0 {
		a.Free(b, oldSize)
		return nil, nil
	}
	if newSize < 0 {
		return nil, ErrInvalidSize
	}

	off := a.offsetOf(b)
	if off+alignUp(oldSize, MaxAlign) == a.head {
		newHead := off + alignUp(newSize, MaxAlign)
		if newHead > len(a.buf) {
			return nil, ErrOutOfCapacity
		}
		a.head = newHead
		return a.buf[off : off+newSize : newHead], nil
	}

	nb, err := a.Alloc(newSize)
	if err != nil {
		return nil, err
	}
	copy(nb, b[:min(oldSize, newSize)])
	return nb, nil
}

// Free rolls the head back if b is the most recent allocation. Interior
// regions are never reclaimed; freeing one is a no-op until Reset.
func (a *Arena) Free(b []byte, size int) {
	a.panicIfReleased()
	if len(b) == 0 {
		return
	}
	off := a.offsetOf(b)
	if off+alignUp(size, MaxAlign) == a.head {
		a.head = off
	}
}

// Reset sets the head back to zero, invalidating every region handed out
// so far. Callers must not touch prior allocations afterward.
func (a *Arena) Reset() {
	a.panicIfReleased()
	a.head = 0
}

// Release returns the buffer to the backing allocator and makes the arena
// unusable. Any subsequent operation panics.
func (a *Arena) Release() {
	a.panicIfReleased()
	a.backing.Free(a.buf, len(a.buf))
	a.buf = nil
	a.backing = nil
}

// offsetOf recovers b's byte offset within the arena buffer.
func (a *Arena) offsetOf(b []byte) int {
	return int(uintptr(unsafe.Pointer(&b[0])) - uintptr(unsafe.Pointer(&a.buf[0])))
}

func (a *Arena) panicIfReleased() {
	if a.buf == nil {
		panic("alloc: arena used after Release")
	}
}

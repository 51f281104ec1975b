package alloc

import (
	"encoding/binary"
	"unsafe"
)

// linkWidth is the size of the free-list link stored in the first bytes of
// every free slot. Slot widths are clamped so a link always fits.
const linkWidth = 8

// Pool is a fixed-slot allocator. Free slots form an intrusive singly
// linked list: the first 8 bytes of each free slot hold the byte offset of
// the next free slot, terminated by a sentinel equal to the buffer
// capacity. Alloc and free are O(1) and never scan. Not goroutine-safe.
//
// An in-use slot is opaque to the pool; its content belongs entirely to the
// caller. Freeing a slot twice, or freeing a region the pool did not hand
// out, corrupts the free list without being detected at call time. Validate
// can diagnose such corruption after the pool has been drained.
type Pool struct {
	backing   Allocator
	buf       []byte // itemWidth * itemCount bytes, exclusively owned
	itemWidth int
	nextFree  int // offset of the free-list head, len(buf) when empty
	inUse     int
}

// NewPool creates a pool of itemCount slots of itemWidth bytes each,
// requesting the buffer from backing. itemWidth is clamped to at least 8
// so the free-list link fits in a slot.
func NewPool(backing Allocator, itemWidth, itemCount int) (*Pool, error) {
	itemWidth = max(itemWidth, linkWidth)
	buf, err := backing.Alloc(itemWidth * itemCount)
	if err != nil {
		return nil, err
	}
	p := &Pool{
		backing:   backing,
		buf:       buf[:itemWidth*itemCount],
		itemWidth: itemWidth,
	}
	p.Reset()
	return p, nil
}

// Reset rebuilds the free list as a single ascending chain covering every
// slot exactly once, terminating at the sentinel. All outstanding slots are
// invalidated.
func (p *Pool) Reset() {
	p.panicIfReleased()
	slots := len(p.buf) / p.itemWidth
	for k := 0; k < slots; k++ {
		off := k * p.itemWidth
		next := off + p.itemWidth
		if k == slots-1 {
			next = len(p.buf)
		}
		binary.LittleEndian.PutUint64(p.buf[off:off+linkWidth], uint64(next))
	}
	p.nextFree = 0
	p.inUse = 0
}

// AllocSlot pops the head of the free list and returns it as a caller-owned
// region of ItemWidth bytes. Content is whatever the slot last held.
func (p *Pool) AllocSlot() ([]byte, error) {
	p.panicIfReleased()
	if p.nextFree > len(p.buf)-p.itemWidth {
		return nil, ErrOutOfCapacity
	}
	off := p.nextFree
	p.nextFree = int(binary.LittleEndian.Uint64(p.buf[off : off+linkWidth]))
	p.inUse++
	return p.buf[off : off+p.itemWidth : off+p.itemWidth], nil
}

// FreeSlot pushes b's slot onto the head of the free list. The most
// recently freed slot is the next one handed out.
func (p *Pool) FreeSlot(b []byte) {
	p.panicIfReleased()
	off := p.offsetOf(b)
	binary.LittleEndian.PutUint64(p.buf[off:off+linkWidth], uint64(p.nextFree))
	p.nextFree = off
	p.inUse--
}

// Validate walks the free list for exactly SlotCount steps and returns
// ErrCorruptionDetected if its length does not match a fully drained
// pool's. A shorter list means a leaked slot or a truncating corruption; a
// longer one means a double free or a cycle. The verdict is only meaningful
// once the caller believes every slot has been returned.
func (p *Pool) Validate() error {
	p.panicIfReleased()
	slots := len(p.buf) / p.itemWidth
	cursor := p.nextFree
	for i := 0; i < slots; i++ {
		if cursor < 0 || cursor > len(p.buf)-p.itemWidth {
			return ErrCorruptionDetected
		}
		cursor = int(binary.LittleEndian.Uint64(p.buf[cursor : cursor+linkWidth]))
	}
	if cursor != len(p.buf) {
		return ErrCorruptionDetected
	}
	return nil
}

// Alloc hands out one slot for requests of up to ItemWidth bytes, making
// the pool usable as the backing allocator for nested construction.
func (p *Pool) Alloc(size int) ([]byte, error) {
	if size <= 0 || size > p.itemWidth {
		return nil, ErrInvalidSize
	}
	b, err := p.AllocSlot()
	if err != nil {
		return nil, err
	}
	return b[:size:p.itemWidth], nil
}

// Realloc resizes a slot region. The slot never moves: any new size up to
// ItemWidth reslices in place, anything larger fails.
func (p *Pool) Realloc(b []byte, oldSize, newSize int) ([]byte, error) {
	p.panicIfReleased()
	if newSize == 0 {
		p.Free(b, oldSize)
		return nil, nil
	}
	if newSize < 0 || newSize > p.itemWidth {
		return nil, ErrInvalidSize
	}
	off := p.offsetOf(b)
	return p.buf[off : off+newSize : off+p.itemWidth], nil
}

// Free returns b's slot to the pool. The size argument is accepted for the
// Allocator contract; the whole slot is reclaimed regardless.
func (p *Pool) Free(b []byte, size int) {
	p.FreeSlot(b)
}

// Release returns the buffer to the backing allocator and makes the pool
// unusable. Any subsequent operation panics.
func (p *Pool) Release() {
	p.panicIfReleased()
	p.backing.Free(p.buf, len(p.buf))
	p.buf = nil
	p.backing = nil
}

// offsetOf recovers b's byte offset within the pool buffer.
func (p *Pool) offsetOf(b []byte) int {
	return int(uintptr(unsafe.Pointer(&b[0])) - uintptr(unsafe.Pointer(&p.buf[0])))
}

func (p *Pool) panicIfReleased() {
	if p.buf == nil {
		panic("alloc: pool used after Release")
	}
}

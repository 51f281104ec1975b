// Package alloc provides two fixed-capacity allocators — a bump-pointer
// arena and a fixed-slot pool — behind a single Allocator capability.
//
// # Overview
//
// An Allocator is an opaque value with three operations: Alloc, Realloc,
// and Free. Heap (and on unix, the mapping-backed Sys) implements it by
// delegating to the host; Arena and Pool implement it over a single
// contiguous buffer they carve out of a backing Allocator. Because arenas
// and pools are themselves Allocators, they compose: a per-frame arena can
// back a pool of fixed-size records, and so on.
//
// # Basic Usage
//
//	heap := alloc.NewHeap()
//
//	arena, err := alloc.NewArena(heap, 1<<16)
//	if err != nil {
//		// backing allocator could not provide the buffer
//	}
//	defer arena.Release() // returns the buffer to heap
//
//	buf, err := arena.Alloc(1024)
//	// ...
//	arena.Reset() // O(1) bulk reclaim, invalidates buf
//
//	pool, err := alloc.NewPool(heap, 64, 1024) // 1024 slots of 64 bytes
//	defer pool.Release()
//
//	slot, err := pool.AllocSlot()
//	// ...
//	pool.FreeSlot(slot)
//
// Typed allocation goes through the generic helpers:
//
//	v, err := alloc.New[Vertex](arena)
//	vs, err := alloc.MakeSlice[Vertex](arena, 128)
//
// # Lifetime
//
// Regions handed out by an arena or pool are borrowed views into its
// buffer. They stay valid until the owning allocator is reset or released;
// after that, using them is undefined. Running out of capacity is not
// fatal: every operation returns an error the caller must check, and
// nothing is retried internally.
//
// Arenas only reclaim in LIFO order: Free and in-place Realloc work on the
// most recent allocation, everything else waits for Reset. Pools reclaim
// any slot in O(1), but freeing a slot twice or freeing a foreign region
// silently corrupts the free list — Pool.Validate diagnoses this after the
// pool has been drained.
//
// # Thread Safety
//
// Nothing in this package is goroutine-safe. Arena and Pool hold mutable
// cursor state with no locking; concurrent use of one instance races.
// Give each goroutine its own arena, or serialize access externally.
package alloc

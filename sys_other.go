//go:build !unix

package alloc

// Sys falls back to the Go heap on platforms without anonymous mappings.
type Sys struct{ Heap }

// NewSys returns a heap-backed allocator on this platform.
func NewSys() Sys { return Sys{} }

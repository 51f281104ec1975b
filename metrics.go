package alloc

// SizeInUse returns the number of bytes currently allocated from the
// arena, including padding introduced by alignment.
func (a *Arena) SizeInUse() int {
	if a.buf == nil {
		return 0
	}
	return a.head
}

// Capacity returns the total capacity of the arena buffer in bytes.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
func (a *Arena) Utilization() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.head) / float64(len(a.buf))
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently allocated, padding included
	Capacity    int     // Buffer capacity in bytes
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// ItemWidth returns the width of a slot in bytes.
func (p *Pool) ItemWidth() int {
	return p.itemWidth
}

// SlotCount returns the number of slots in the pool.
func (p *Pool) SlotCount() int {
	if p.buf == nil {
		return 0
	}
	return len(p.buf) / p.itemWidth
}

// SlotsInUse returns the number of slots currently handed out.
func (p *Pool) SlotsInUse() int {
	return p.inUse
}

// Capacity returns the total capacity of the pool buffer in bytes.
func (p *Pool) Capacity() int {
	return len(p.buf)
}

// Utilization returns the ratio of slots in use to slot count (0.0 to 1.0).
func (p *Pool) Utilization() float64 {
	slots := p.SlotCount()
	if slots == 0 {
		return 0
	}
	return float64(p.inUse) / float64(slots)
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool) Metrics() PoolMetrics {
	return PoolMetrics{
		ItemWidth:   p.ItemWidth(),
		SlotCount:   p.SlotCount(),
		SlotsInUse:  p.SlotsInUse(),
		Capacity:    p.Capacity(),
		Utilization: p.Utilization(),
	}
}

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	ItemWidth   int     // Slot width in bytes
	SlotCount   int     // Total number of slots
	SlotsInUse  int     // Slots currently handed out
	Capacity    int     // Buffer capacity in bytes
	Utilization float64 // Ratio of in-use slots to slot count (0.0-1.0)
}

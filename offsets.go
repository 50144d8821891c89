package vgrid

// computeOffsets walks the iteration window in index order, records each
// column's cumulative offset, and assigns each column a rendering slot.
// During fast scrolling the window shrinks to the viewport span, skipping
// the buffer padding to bound per-frame cost, but slot capacity still
// tracks the full buffer span, not the reduced window.
func (v *Virtualizer) computeOffsets(next *State, rng Range, fastScrolling bool) {
	capacity := rng.BufferSize()
	if capacity <= 0 {
		next.Offsets = map[int]int{}
		next.Slots = map[int]int{}
		return
	}

	start, end := rng.FirstBuffer, rng.EndBuffer
	if fastScrolling {
		start, end = rng.FirstViewport, rng.EndViewport
	}

	offsets := make(map[int]int, end-start)
	slots := make(map[int]int, end-start)
	running := v.widths.SumUntil(start)
	for i := start; i < end; i++ {
		offsets[i] = running
		running += v.widths.Get(i)
		slots[v.slotFor(i, start, end, capacity)] = i
	}
	next.Offsets = offsets
	next.Slots = slots
}

// slotFor finds a rendering slot for the column: reuse its existing slot if
// it is still tracked, otherwise evict the tracked column furthest outside
// the window, otherwise allocate fresh. When the set is full but every
// tracked column is inside the window, allocation still falls through to a
// fresh slot: the set transiently exceeds its nominal capacity rather than
// evicting a column that is still on screen.
func (v *Virtualizer) slotFor(column, start, end, capacity int) int {
	if slot, ok := v.slots.Position(column); ok {
		return slot
	}
	if v.slots.Len() >= capacity {
		if slot, ok := v.slots.ReplaceFurthest(start, end-1, column); ok {
			return slot
		}
	}
	return v.slots.Assign(column)
}

package vgrid

// computeRange walks columns outward from the anchor until the viewport is
// filled, then pads the result with the configured buffer columns. It
// records the viewport span and first-column shift onto next and returns
// the full range. Every column the walk touches is measured, so the width
// store stays warm for the offset pass.
func (v *Virtualizer) computeRange(next *State, anchor Anchor) Range {
	avail := v.oracle.ViewportWidth()
	count := v.oracle.ColumnCount()
	if avail <= 0 || count == 0 {
		// Nothing to lay out. A defined terminal case, not an error.
		next.FirstColumn, next.EndColumn, next.FirstOffset = 0, 0, 0
		return Range{}
	}

	first, offset, last, backward := anchor.first, anchor.offset, anchor.last, anchor.backward
	if (backward && last >= count) || (!backward && first >= count) {
		// An anchor past the column list means "scroll to the end".
		backward, last = true, count-1
	}
	if !backward && first < 0 {
		first = 0
	}
	if backward && last < 0 {
		last = 0
	}

	// Forward walks seed the accumulator with the (non-positive) shift:
	// a partially hidden first column needs that much extra width before
	// the viewport is full. Backward walks derive the shift afterwards.
	step, index, acc := 1, first, offset
	if backward {
		step, index, acc = -1, last, 0
	}

	lo, hi := index, index
	for index >= 0 && index < count && acc < avail {
		acc += v.measure(index)
		if index < lo {
			lo = index
		}
		if index > hi {
			hi = index
		}
		index += step
	}

	rng := Range{
		FirstBuffer:   max(lo-v.bufferCols, 0),
		FirstViewport: lo,
		EndViewport:   hi + 1,
		EndBuffer:     min(hi+1+v.bufferCols, count),
	}

	// Keep the padding measured too, even though it is off-screen.
	for i := rng.FirstBuffer; i < rng.FirstViewport; i++ {
		v.measure(i)
	}
	for i := rng.EndViewport; i < rng.EndBuffer; i++ {
		v.measure(i)
	}

	if backward {
		// If the walk overshot the viewport, shift the first column left
		// by the overshoot so the last column's trailing edge lands
		// exactly on the viewport's trailing edge.
		offset = min(avail-acc, 0)
	}

	next.FirstColumn = rng.FirstViewport
	next.EndColumn = rng.EndViewport
	next.FirstOffset = offset
	return rng
}

package vgrid

// State is one layout decision: which columns to render, where they sit,
// and the reconciled scroll position. Reflow never mutates its input state;
// it returns a fresh snapshot, so callers can keep or discard either.
type State struct {
	// ScrollX is the scroll offset in cells, clamped to [0, MaxScrollX].
	ScrollX int

	// Scrolling marks a continuous fast scroll in progress. While set,
	// reflows skip warming the buffer padding to bound per-frame cost.
	Scrolling bool

	// FirstColumn and EndColumn bound the viewport span, end exclusive.
	FirstColumn int
	EndColumn   int

	// FirstOffset is the shift applied to the first viewport column,
	// normally <= 0 (part of it hangs off the leading edge).
	FirstOffset int

	// Offsets maps a column index to its cumulative cell offset. Only
	// columns inside the current buffer span are present.
	Offsets map[int]int

	// Slots maps a rendering slot to the column that owns it. Slot
	// assignments are stable across reflows for columns that stay near
	// the window, so a view element keyed by slot survives scrolling.
	Slots map[int]int
}

// Range is the ephemeral output of the range calculation: the viewport
// span and the padded buffer span around it, all end-exclusive.
type Range struct {
	FirstBuffer   int
	FirstViewport int
	EndViewport   int
	EndBuffer     int
}

// BufferSize returns the buffer span size, which caps the slot count for
// one reflow pass.
func (r Range) BufferSize() int {
	return r.EndBuffer - r.FirstBuffer
}

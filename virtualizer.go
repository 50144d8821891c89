// Package vgrid computes which columns of a horizontally scrollable grid
// must be rendered at a given scroll position: the visible columns plus a
// configurable off-screen buffer, each column's cell offset, and a stable
// assignment of columns to a small set of rendering slots. It decides
// layout only; rendering and event scheduling belong to callers (see
// GridModel for a ready-made bubbletea widget).
package vgrid

// WidthOracle supplies the scrollable geometry. ColumnWidth may measure
// lazily; the engine records every measured width into its width store, so
// repeated reflows only pay for columns they touch.
type WidthOracle interface {
	// ViewportWidth returns the available scroll width in cells.
	ViewportWidth() int

	// ColumnCount returns the number of scrollable columns.
	ColumnCount() int

	// ColumnWidth measures the width of one column in cells.
	ColumnWidth(index int) int

	// MaxScrollX returns the largest valid scroll offset.
	MaxScrollX() int
}

// Virtualizer owns the per-grid layout machinery: the width store and the
// slot set persist across reflows, so measured widths stay warm and slot
// assignments stay stable. One Virtualizer serves one grid instance and
// expects serialized calls.
type Virtualizer struct {
	oracle     WidthOracle
	widths     *WidthTree
	slots      *SlotSet
	bufferCols int
}

// NewVirtualizer creates a virtualizer over the given oracle. The width
// store is sized to the oracle's current column count; call ResetColumns
// after structural changes to the column set.
func NewVirtualizer(oracle WidthOracle) *Virtualizer {
	return &Virtualizer{
		oracle: oracle,
		widths: NewWidthTree(oracle.ColumnCount()),
		slots:  NewSlotSet(),
	}
}

// BufferColumns sets how many off-screen columns are kept warm on each side
// of the viewport. Default 0.
func (v *Virtualizer) BufferColumns(n int) *Virtualizer {
	if n < 0 {
		n = 0
	}
	v.bufferCols = n
	return v
}

// ResetColumns rebuilds the width store and slot set for the oracle's
// current column list. Existing slot assignments and cached widths are
// dropped; State snapshots taken before the reset are stale.
func (v *Virtualizer) ResetColumns() {
	v.widths = NewWidthTree(v.oracle.ColumnCount())
	v.slots.Reset()
}

// Widths exposes the width store for read-only queries, e.g. rendering code
// that needs a buffered column's stored width without re-measuring.
func (v *Virtualizer) Widths() *WidthTree {
	return v.widths
}

// Reflow computes the layout for the given anchor, starting from the prior
// snapshot. The prior value is never mutated. The returned snapshot carries
// the new viewport span, per-column offsets, slot assignments, and the
// reconciled scroll position clamped to [0, MaxScrollX].
func (v *Virtualizer) Reflow(prior State, anchor Anchor) State {
	next := prior
	rng := v.computeRange(&next, anchor)
	v.computeOffsets(&next, rng, next.Scrolling)

	if rng.EndViewport > rng.FirstViewport {
		next.ScrollX = next.Offsets[rng.FirstViewport] - next.FirstOffset
	}
	if maxX := v.oracle.MaxScrollX(); next.ScrollX > maxX {
		next.ScrollX = maxX
	}
	if next.ScrollX < 0 {
		next.ScrollX = 0
	}
	return next
}

// measure fetches a column's width from the oracle and records it, keeping
// the prefix sums in step with everything the walk has touched.
func (v *Virtualizer) measure(index int) int {
	w := v.oracle.ColumnWidth(index)
	v.widths.Set(index, w)
	return w
}

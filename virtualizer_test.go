package vgrid

import "testing"

// fakeOracle is a WidthOracle over fixed widths that logs every measurement.
type fakeOracle struct {
	widths   []int
	viewport int
	measured []int
}

func (o *fakeOracle) ViewportWidth() int { return o.viewport }
func (o *fakeOracle) ColumnCount() int   { return len(o.widths) }

func (o *fakeOracle) ColumnWidth(index int) int {
	o.measured = append(o.measured, index)
	return o.widths[index]
}

func (o *fakeOracle) MaxScrollX() int {
	total := 0
	for _, w := range o.widths {
		total += w
	}
	if maxX := total - o.viewport; maxX > 0 {
		return maxX
	}
	return 0
}

func equalWidths(n, w int) []int {
	widths := make([]int, n)
	for i := range widths {
		widths[i] = w
	}
	return widths
}

func TestReflow(t *testing.T) {
	t.Run("ForwardAnchor", func(t *testing.T) {
		// 5 columns of 100 in a 250 viewport: columns 0-2 visible.
		o := &fakeOracle{widths: equalWidths(5, 100), viewport: 250}
		v := NewVirtualizer(o)

		st := v.Reflow(State{}, AnchorFirst(0, 0))
		if st.FirstColumn != 0 || st.EndColumn != 3 {
			t.Errorf("expected viewport [0,3), got [%d,%d)", st.FirstColumn, st.EndColumn)
		}
		if st.FirstOffset != 0 {
			t.Errorf("expected first offset 0, got %d", st.FirstOffset)
		}
		want := map[int]int{0: 0, 1: 100, 2: 200}
		for col, off := range want {
			if st.Offsets[col] != off {
				t.Errorf("offset[%d]: expected %d, got %d", col, off, st.Offsets[col])
			}
		}
		if len(st.Offsets) != len(want) {
			t.Errorf("expected %d offsets, got %d", len(want), len(st.Offsets))
		}
		if st.ScrollX != 0 {
			t.Errorf("expected scrollX 0, got %d", st.ScrollX)
		}
	})

	t.Run("BackwardAnchor", func(t *testing.T) {
		// Anchoring at the last column pulls 3 columns in and shifts the
		// first one left by the 50-cell overflow.
		o := &fakeOracle{widths: equalWidths(5, 100), viewport: 250}
		v := NewVirtualizer(o)

		st := v.Reflow(State{}, AnchorLast(4))
		if st.FirstColumn != 2 || st.EndColumn != 5 {
			t.Errorf("expected viewport [2,5), got [%d,%d)", st.FirstColumn, st.EndColumn)
		}
		if st.FirstOffset != -50 {
			t.Errorf("expected first offset -50, got %d", st.FirstOffset)
		}
	})

	t.Run("BackwardUnderfilled", func(t *testing.T) {
		// Fewer columns than fit: the walk exhausts the column list
		// without overshooting the viewport, so no shift is needed and
		// scroll clamps to 0.
		o := &fakeOracle{widths: equalWidths(2, 50), viewport: 300}
		v := NewVirtualizer(o)

		st := v.Reflow(State{}, AnchorLast(1))
		if st.FirstColumn != 0 || st.EndColumn != 2 {
			t.Errorf("expected viewport [0,2), got [%d,%d)", st.FirstColumn, st.EndColumn)
		}
		if st.FirstOffset != 0 {
			t.Errorf("expected first offset 0, got %d", st.FirstOffset)
		}
		if st.ScrollX != 0 {
			t.Errorf("expected scrollX clamped to 0, got %d", st.ScrollX)
		}
	})

	t.Run("AnchorPastEnd", func(t *testing.T) {
		// An out-of-range anchor means "scroll to the end".
		o := &fakeOracle{widths: equalWidths(5, 100), viewport: 250}
		v := NewVirtualizer(o)

		st := v.Reflow(State{}, AnchorFirst(42, 0))
		if st.FirstColumn != 2 || st.EndColumn != 5 {
			t.Errorf("expected viewport [2,5), got [%d,%d)", st.FirstColumn, st.EndColumn)
		}
		if st.FirstOffset != -50 {
			t.Errorf("expected first offset -50, got %d", st.FirstOffset)
		}
	})

	t.Run("Degenerate", func(t *testing.T) {
		o := &fakeOracle{widths: nil, viewport: 250}
		v := NewVirtualizer(o)

		st := v.Reflow(State{ScrollX: 999}, AnchorFirst(0, 0))
		if st.FirstColumn != 0 || st.EndColumn != 0 || st.FirstOffset != 0 {
			t.Errorf("expected all-zero range, got [%d,%d) offset %d",
				st.FirstColumn, st.EndColumn, st.FirstOffset)
		}
		if len(st.Offsets) != 0 || len(st.Slots) != 0 {
			t.Errorf("expected cleared outputs, got %d offsets, %d slots",
				len(st.Offsets), len(st.Slots))
		}
		// The stale scroll position survives the pass, then clamps.
		if st.ScrollX != 0 {
			t.Errorf("expected scrollX clamped to 0, got %d", st.ScrollX)
		}
	})

	t.Run("ZeroViewportWidth", func(t *testing.T) {
		o := &fakeOracle{widths: equalWidths(5, 100), viewport: 0}
		v := NewVirtualizer(o)

		st := v.Reflow(State{}, AnchorFirst(2, 0))
		if st.FirstColumn != 0 || st.EndColumn != 0 {
			t.Errorf("expected degenerate range, got [%d,%d)", st.FirstColumn, st.EndColumn)
		}
	})

	t.Run("BackwardInvertsForward", func(t *testing.T) {
		// Re-anchoring forward from a backward result reproduces the
		// same viewport span.
		o := &fakeOracle{widths: []int{80, 120, 60, 140, 100, 90}, viewport: 250}
		v := NewVirtualizer(o)

		back := v.Reflow(State{}, AnchorLast(4))
		fwd := v.Reflow(back, AnchorFirst(back.FirstColumn, back.FirstOffset))
		if fwd.FirstColumn != back.FirstColumn || fwd.EndColumn != back.EndColumn {
			t.Errorf("expected forward re-anchor to reproduce [%d,%d), got [%d,%d)",
				back.FirstColumn, back.EndColumn, fwd.FirstColumn, fwd.EndColumn)
		}
	})

	t.Run("ScrollReconciliation", func(t *testing.T) {
		// Scrolled to column 3, the scroll position is its offset.
		o := &fakeOracle{widths: equalWidths(10, 100), viewport: 250}
		v := NewVirtualizer(o)

		// Warm the preceding widths so prefix sums are absolute.
		st := v.Reflow(State{}, AnchorFirst(0, 0))
		st = v.Reflow(st, AnchorFirst(2, 0))
		st = v.Reflow(st, AnchorFirst(3, -25))
		if st.ScrollX != 325 {
			t.Errorf("expected scrollX 325, got %d", st.ScrollX)
		}
	})

	t.Run("ScrollClampsToMax", func(t *testing.T) {
		o := &fakeOracle{widths: equalWidths(5, 100), viewport: 250}
		v := NewVirtualizer(o)

		st := v.Reflow(State{}, AnchorFirst(0, 0))
		st = v.Reflow(st, AnchorLast(4))
		if maxX := o.MaxScrollX(); st.ScrollX != maxX {
			t.Errorf("expected scrollX at max %d, got %d", maxX, st.ScrollX)
		}
	})

	t.Run("PriorStateUntouched", func(t *testing.T) {
		o := &fakeOracle{widths: equalWidths(5, 100), viewport: 250}
		v := NewVirtualizer(o)

		first := v.Reflow(State{}, AnchorFirst(0, 0))
		offsets := len(first.Offsets)
		_ = v.Reflow(first, AnchorLast(4))
		if first.FirstColumn != 0 || first.EndColumn != 3 || len(first.Offsets) != offsets {
			t.Errorf("expected prior snapshot to survive the second reflow")
		}
	})
}

func TestSlotStability(t *testing.T) {
	t.Run("OverlappingWindows", func(t *testing.T) {
		o := &fakeOracle{widths: equalWidths(10, 100), viewport: 250}
		v := NewVirtualizer(o)

		st := v.Reflow(State{}, AnchorFirst(0, 0))
		before := columnSlots(st)

		st = v.Reflow(st, AnchorFirst(1, 0))
		after := columnSlots(st)

		// Columns 1 and 2 stay in the window across both calls and must
		// keep their slots.
		for _, col := range []int{1, 2} {
			if before[col] != after[col] {
				t.Errorf("column %d moved from slot %d to %d", col, before[col], after[col])
			}
		}
		// Column 0 left the window; its slot is recycled for column 3.
		if after[3] != before[0] {
			t.Errorf("expected column 3 to reuse slot %d, got %d", before[0], after[3])
		}
	})

	t.Run("FarJumpReusesFurthestSlots", func(t *testing.T) {
		o := &fakeOracle{widths: equalWidths(20, 100), viewport: 250}
		v := NewVirtualizer(o)

		st := v.Reflow(State{}, AnchorFirst(0, 0))
		before := columnSlots(st)

		st = v.Reflow(st, AnchorFirst(7, 0))
		after := columnSlots(st)

		// The new window shares no columns with the old one, so every
		// new column takes over an old slot; the furthest straggler
		// (column 0) goes first.
		if after[7] != before[0] {
			t.Errorf("expected column 7 on column 0's slot %d, got %d", before[0], after[7])
		}
		if len(st.Slots) != 3 {
			t.Errorf("expected 3 tracked slots, got %d", len(st.Slots))
		}
	})
}

// columnSlots inverts a snapshot's slot table for assertions.
func columnSlots(st State) map[int]int {
	inv := make(map[int]int, len(st.Slots))
	for slot, col := range st.Slots {
		inv[col] = slot
	}
	return inv
}

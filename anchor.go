package vgrid

// Anchor describes where a reflow should scroll from. Forward anchors fix
// the first visible column plus a sub-column shift; backward anchors fix
// the last visible column and let the engine derive the shift.
type Anchor struct {
	first    int
	offset   int // <= 0, cells hidden off the leading edge
	last     int
	backward bool
}

// AnchorFirst anchors the viewport at the given first visible column,
// shifted left by offset cells (offset <= 0; 0 means fully visible).
func AnchorFirst(index, offset int) Anchor {
	return Anchor{first: index, offset: offset}
}

// AnchorLast anchors the viewport so the given column's trailing edge
// aligns with the viewport's trailing edge.
func AnchorLast(index int) Anchor {
	return Anchor{last: index, backward: true}
}

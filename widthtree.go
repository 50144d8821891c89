package vgrid

// WidthTree stores per-column pixel widths and answers prefix-sum queries.
// It backs the running-offset computation: a column's offset is the sum of
// every width before it. Point updates and prefix queries are both O(log n).
//
// Implemented as a Fenwick tree over a fixed column count; the raw widths
// are kept alongside so point reads stay O(1).
type WidthTree struct {
	width []int
	tree  []int // 1-based Fenwick array of partial sums
}

// NewWidthTree creates a width tree for n columns, all widths zero.
func NewWidthTree(n int) *WidthTree {
	if n < 0 {
		n = 0
	}
	return &WidthTree{
		width: make([]int, n),
		tree:  make([]int, n+1),
	}
}

// Len returns the column count the tree was built for.
func (t *WidthTree) Len() int {
	return len(t.width)
}

// Get returns the stored width for a column, 0 if never recorded or out of
// range.
func (t *WidthTree) Get(index int) int {
	if index < 0 || index >= len(t.width) {
		return 0
	}
	return t.width[index]
}

// Set records the width for a column, replacing any previous value.
func (t *WidthTree) Set(index, width int) {
	if index < 0 || index >= len(t.width) {
		return
	}
	delta := width - t.width[index]
	if delta == 0 {
		return
	}
	t.width[index] = width
	for i := index + 1; i < len(t.tree); i += i & -i {
		t.tree[i] += delta
	}
}

// SumUntil returns the sum of widths for all columns with index < end.
// Bounds beyond the column count sum the whole tree.
func (t *WidthTree) SumUntil(end int) int {
	if end > len(t.width) {
		end = len(t.width)
	}
	sum := 0
	for i := end; i > 0; i -= i & -i {
		sum += t.tree[i]
	}
	return sum
}

// Total returns the sum of all stored widths.
func (t *WidthTree) Total() int {
	return t.SumUntil(len(t.width))
}

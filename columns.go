package vgrid

import (
	"github.com/mattn/go-runewidth"
)

// Column is one column of text data: a title and its cells, one per row.
type Column struct {
	Title string
	Cells []string
}

// TextColumns is a WidthOracle over text columns. A column's width is the
// widest of its title and cells in terminal cells (measured with
// go-runewidth, so CJK and other wide runes count correctly), plus one cell
// of separation. Measurement happens lazily on first use and is memoized.
type TextColumns struct {
	columns  []Column
	widths   []int // -1 until measured
	viewport int
	minWidth int
}

// NewTextColumns creates an oracle over the given columns.
func NewTextColumns(columns []Column) *TextColumns {
	widths := make([]int, len(columns))
	for i := range widths {
		widths[i] = -1
	}
	return &TextColumns{
		columns:  columns,
		widths:   widths,
		minWidth: 3,
	}
}

// MinWidth sets the floor for measured column widths. Default 3.
func (c *TextColumns) MinWidth(w int) *TextColumns {
	c.minWidth = w
	return c
}

// SetViewportWidth records the available scroll width in cells. Callers
// update it on resize and reflow afterwards.
func (c *TextColumns) SetViewportWidth(w int) {
	c.viewport = w
}

// ViewportWidth implements WidthOracle.
func (c *TextColumns) ViewportWidth() int {
	return c.viewport
}

// ColumnCount implements WidthOracle.
func (c *TextColumns) ColumnCount() int {
	return len(c.columns)
}

// Column returns the column data at index.
func (c *TextColumns) Column(index int) Column {
	return c.columns[index]
}

// ColumnWidth implements WidthOracle. First call measures, later calls hit
// the memo.
func (c *TextColumns) ColumnWidth(index int) int {
	if index < 0 || index >= len(c.columns) {
		return 0
	}
	if c.widths[index] >= 0 {
		return c.widths[index]
	}
	col := c.columns[index]
	w := runewidth.StringWidth(col.Title)
	for _, cell := range col.Cells {
		if cw := runewidth.StringWidth(cell); cw > w {
			w = cw
		}
	}
	w++ // separator cell
	if w < c.minWidth {
		w = c.minWidth
	}
	c.widths[index] = w
	return w
}

// MaxScrollX implements WidthOracle: total content width minus the
// viewport, floored at zero. The first call measures every column; the
// memo makes later calls cheap.
func (c *TextColumns) MaxScrollX() int {
	total := 0
	for i := range c.columns {
		total += c.ColumnWidth(i)
	}
	if maxX := total - c.viewport; maxX > 0 {
		return maxX
	}
	return 0
}

package vgrid

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// scrollBurst is how close together two scroll keys must arrive to count
// as one continuous scroll, which makes reflows skip buffer warming.
const scrollBurst = 150 * time.Millisecond

// GridModel is a bubbletea widget over a Virtualizer: a horizontally
// scrollable grid of text columns. Only the visible columns are rendered,
// and each rendering slot caches its column's rendered block, so a slot is
// re-rendered only when its column assignment changes. That reuse is what
// slot stability buys.
type GridModel struct {
	oracle *TextColumns
	virt   *Virtualizer
	state  State
	anchor Anchor

	width  int
	height int
	rows   int // data rows shown, bounded by height

	styles GridStyles
	cache  *renderCache

	lastScroll time.Time
}

// renderCache holds the per-slot rendered blocks. It lives behind a
// pointer so the cache survives bubbletea's copy-on-update model values.
type renderCache struct {
	blocks []renderedBlock
}

func (c *renderCache) grow(n int) {
	if n > len(c.blocks) {
		c.blocks = append(c.blocks, make([]renderedBlock, n-len(c.blocks))...)
	}
}

// renderedBlock is one slot's cached render: the column it was rendered
// for and one string per visible line (header first).
type renderedBlock struct {
	column int
	width  int
	lines  []string
}

// NewGridModel creates a grid widget over the given columns, keeping two
// off-screen columns warm on each side of the viewport.
func NewGridModel(columns []Column) GridModel {
	oracle := NewTextColumns(columns)
	return GridModel{
		oracle: oracle,
		virt:   NewVirtualizer(oracle).BufferColumns(2),
		anchor: AnchorFirst(0, 0),
		styles: DefaultGridStyles(),
		cache:  &renderCache{},
	}
}

// Styles replaces the widget's style set.
func (m GridModel) Styles(s GridStyles) GridModel {
	m.styles = s
	return m
}

// BufferColumns sets the off-screen warm column count per side.
func (m GridModel) BufferColumns(n int) GridModel {
	m.virt.BufferColumns(n)
	return m
}

// State exposes the last computed layout snapshot.
func (m GridModel) State() State {
	return m.state
}

// Init implements tea.Model.
func (m GridModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.rows = m.maxRows()
		m.oracle.SetViewportWidth(msg.Width)
		m.state.Scrolling = false
		m.state = m.virt.Reflow(m.state, m.anchor)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m = m.scrollBy(-1)
		case "right", "l":
			m = m.scrollBy(1)
		case "pgup":
			m = m.scrollBy(-m.pageSize())
		case "pgdown":
			m = m.scrollBy(m.pageSize())
		case "home", "0":
			m = m.anchorTo(AnchorFirst(0, 0))
		case "end", "$":
			m = m.anchorTo(AnchorLast(m.oracle.ColumnCount() - 1))
		}
	}
	return m, nil
}

// scrollBy re-anchors the viewport delta columns away from the current
// first column. Rapid repeats flip the fast-scrolling flag so the engine
// skips buffer warming until the burst settles.
func (m GridModel) scrollBy(delta int) GridModel {
	count := m.oracle.ColumnCount()
	if count == 0 {
		return m
	}
	first := m.state.FirstColumn + delta
	if first < 0 {
		first = 0
	}
	if first > count-1 {
		first = count - 1
	}
	now := time.Now()
	m.state.Scrolling = now.Sub(m.lastScroll) < scrollBurst
	m.lastScroll = now
	return m.anchorTo(AnchorFirst(first, 0))
}

func (m GridModel) anchorTo(anchor Anchor) GridModel {
	m.anchor = anchor
	m.state = m.virt.Reflow(m.state, anchor)
	return m
}

// pageSize is one viewport's worth of columns, minus one for continuity.
func (m GridModel) pageSize() int {
	if n := m.state.EndColumn - m.state.FirstColumn - 1; n > 1 {
		return n
	}
	return 1
}

// maxRows bounds the data rows by the terminal height, leaving room for
// the header, scrollbar and status lines.
func (m GridModel) maxRows() int {
	rows := 0
	for i := 0; i < m.oracle.ColumnCount(); i++ {
		if n := len(m.oracle.Column(i).Cells); n > rows {
			rows = n
		}
	}
	if limit := m.height - 3; rows > limit {
		rows = limit
	}
	if rows < 0 {
		rows = 0
	}
	return rows
}

// View implements tea.Model.
func (m GridModel) View() string {
	if m.width <= 0 || m.oracle.ColumnCount() == 0 {
		return ""
	}

	// Slot lookup for the columns we are about to draw.
	slotOf := make(map[int]int, len(m.state.Slots))
	for slot, col := range m.state.Slots {
		m.cache.grow(slot + 1)
		slotOf[col] = slot
	}

	lines := make([]strings.Builder, m.rows+1)
	for col := m.state.FirstColumn; col < m.state.EndColumn; col++ {
		block := m.blockFor(col, slotOf)
		for i := range lines {
			lines[i].WriteString(block.lines[i])
		}
	}

	// The first column may hang off the leading edge; cut the assembled
	// lines ANSI-safely to the viewport window.
	trim := -m.state.FirstOffset
	var b strings.Builder
	for i := range lines {
		b.WriteString(ansi.Cut(lines[i].String(), trim, trim+m.width))
		b.WriteByte('\n')
	}
	b.WriteString(m.scrollbar())
	b.WriteByte('\n')
	b.WriteString(m.status())
	return b.String()
}

// blockFor returns the rendered block for a column, reusing the slot cache
// when the slot still owns the same column at the same width.
func (m GridModel) blockFor(col int, slotOf map[int]int) renderedBlock {
	w := m.oracle.ColumnWidth(col)
	slot, ok := slotOf[col]
	if ok {
		cached := m.cache.blocks[slot]
		if cached.column == col && cached.width == w && len(cached.lines) == m.rows+1 {
			return cached
		}
	}
	block := m.renderColumn(col, w)
	if ok {
		m.cache.blocks[slot] = block
	}
	return block
}

// renderColumn renders one column's header and cells at the given width.
func (m GridModel) renderColumn(col, w int) renderedBlock {
	data := m.oracle.Column(col)
	lines := make([]string, m.rows+1)
	lines[0] = m.styles.Header.Width(w).MaxWidth(w).Render(data.Title)
	for r := 0; r < m.rows; r++ {
		cell := ""
		if r < len(data.Cells) {
			cell = data.Cells[r]
		}
		style := m.styles.Cell
		if r%2 == 1 {
			style = m.styles.CellAlt
		}
		lines[r+1] = style.Width(w).MaxWidth(w).Render(cell)
	}
	return renderedBlock{column: col, width: w, lines: lines}
}

// scrollbar draws a proportional horizontal scrollbar across the viewport.
func (m GridModel) scrollbar() string {
	maxX := m.oracle.MaxScrollX()
	if maxX <= 0 || m.width < 2 {
		return m.styles.ScrollbarTrack.Render(strings.Repeat("─", max(m.width, 0)))
	}
	total := maxX + m.oracle.ViewportWidth()
	thumb := m.width * m.oracle.ViewportWidth() / total
	if thumb < 1 {
		thumb = 1
	}
	pos := (m.width - thumb) * m.state.ScrollX / maxX
	var b strings.Builder
	b.WriteString(m.styles.ScrollbarTrack.Render(strings.Repeat("─", pos)))
	b.WriteString(m.styles.ScrollbarThumb.Render(strings.Repeat("━", thumb)))
	b.WriteString(m.styles.ScrollbarTrack.Render(strings.Repeat("─", m.width-pos-thumb)))
	return b.String()
}

func (m GridModel) status() string {
	return m.styles.Status.MaxWidth(m.width).Render(fmt.Sprintf(
		"cols %d-%d of %d  x=%d  ←/→ scroll  home/end jump  q quit",
		m.state.FirstColumn+1, m.state.EndColumn, m.oracle.ColumnCount(), m.state.ScrollX,
	))
}

// Command vgrid-demo shows a horizontally scrollable grid with a few
// hundred variable-width columns. Scroll with the arrow keys, jump with
// home/end, quit with q.
package main

import (
	"fmt"
	"math/rand"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"vgrid"
)

const (
	numColumns = 300
	numRows    = 20
)

var words = []string{
	"alpha", "borealis", "cumulonimbus", "delta", "ephemeral", "fjord",
	"glacier", "hinterland", "isthmus", "jetstream", "kelvin", "longitude",
	"meridian", "nimbus", "orographic", "permafrost", "quartz", "riverine",
	"stratosphere", "tundra",
}

func makeColumns(rng *rand.Rand) []vgrid.Column {
	cols := make([]vgrid.Column, numColumns)
	for i := range cols {
		cells := make([]string, numRows)
		for r := range cells {
			cells[r] = words[rng.Intn(len(words))]
			if rng.Intn(4) == 0 {
				cells[r] += fmt.Sprintf("-%d", rng.Intn(1000))
			}
		}
		cols[i] = vgrid.Column{
			Title: fmt.Sprintf("%s %d", words[i%len(words)], i),
			Cells: cells,
		}
	}
	return cols
}

func main() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "vgrid-demo: stdin is not a terminal")
		os.Exit(1)
	}

	model := vgrid.NewGridModel(makeColumns(rand.New(rand.NewSource(42))))
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "vgrid-demo:", err)
		os.Exit(1)
	}
}

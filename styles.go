package vgrid

import "github.com/charmbracelet/lipgloss"

// GridStyles collects the lipgloss styles the grid widget renders with.
type GridStyles struct {
	Header         lipgloss.Style
	Cell           lipgloss.Style
	CellAlt        lipgloss.Style
	Status         lipgloss.Style
	ScrollbarTrack lipgloss.Style
	ScrollbarThumb lipgloss.Style
}

// DefaultGridStyles returns the stock look: bold underlined headers,
// zebra-striped rows, dim chrome.
func DefaultGridStyles() GridStyles {
	return GridStyles{
		Header:         lipgloss.NewStyle().Bold(true).Underline(true),
		Cell:           lipgloss.NewStyle(),
		CellAlt:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ScrollbarTrack: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		ScrollbarThumb: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// Package ui holds the lipgloss styles used for CLI headings and notes.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	colorPrimary = lipgloss.Color("12")  // Blue
	colorDim     = lipgloss.Color("240") // Gray
)

var (
	// TitleStyle for headers and titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// DimStyle for secondary/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// SetColorEnabled switches every style between the terminal's detected
// profile and plain text.
func SetColorEnabled(enabled bool) {
	if !enabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ANSI256)
}

// Title renders a section heading.
func Title(s string) string {
	return TitleStyle.Render(s)
}

// Note renders secondary text.
func Note(s string) string {
	return DimStyle.Render(s)
}

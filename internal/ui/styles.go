package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"go.klb.dev/clipsight/internal/interpret"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("205"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	sectionStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("81"))

	declinedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(14)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Italic(true)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)

// swatchCell renders a two-cell block filled with the given color.
func swatchCell(c interpret.RGBA) string {
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

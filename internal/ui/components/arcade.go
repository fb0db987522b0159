package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/playroom/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every section of a game
// screen, so boxes line up. It leaves room for the cabinet border and
// padding.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 24), 64)
}

// CabinetFrame centers content in a double border drawn in accent. Quiz
// games pass their level color so the frame tells the difficulty.
func CabinetFrame(content string, accent color.Color, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(accent).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded card cw wide.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// Chip is a selectable pill. The selected chip is filled with accent.
func Chip(label string, selected bool, accent color.Color, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		MarginRight(1)

	if selected {
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(accent).
			BorderForeground(accent).
			Render(label)
	}
	return style.
		Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render(label)
}

// Badge is a small filled label, like the level tag on a quiz.
func Badge(label string, c color.Color) string {
	return lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(c).
		Bold(true).
		Padding(0, 1).
		Render(label)
}

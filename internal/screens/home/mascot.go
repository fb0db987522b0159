package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/playroom/internal/ui/theme"
)

// MascotVariant selects how the buddy looks next to the menu.
type MascotVariant int

const (
	MascotIdle    MascotVariant = iota // Default, waving
	MascotExcited                      // A game is highlighted
	MascotSleepy                       // Exit is highlighted
)

// mascotLines is what the buddy says for each highlighted menu item.
var mascotLines = []string{
	"Let's add and take away!",
	"How many can you count?",
	"Find the letters with me!",
	"Fill the basket!",
	"Go on a star adventure!",
	"Bye bye! Come back soon!",
}

// RenderMascot draws the buddy with a speech bubble.
func RenderMascot(buddy, line string, variant MascotVariant) string {
	fg := theme.Primary
	face := buddy + " 👋"
	switch variant {
	case MascotExcited:
		fg = theme.ArcadeYellow
		face = "✨ " + buddy + " ✨"
	case MascotSleepy:
		fg = theme.TextDim
		face = buddy + " 💤"
	}

	bubble := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg).
		Foreground(theme.Text).
		Padding(0, 1).
		Render(line)

	return lipgloss.JoinHorizontal(lipgloss.Center, face+"  ", bubble)
}

// renderMascotBox renders the mascot centered at content width.
func renderMascotBox(buddy, line string, variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(buddy, line, variant))
}

package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/playroom/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗      █████╗ ██╗   ██╗██████╗  ██████╗  ██████╗ ███╗   ███╗
 ██╔══██╗██║     ██╔══██╗╚██╗ ██╔╝██╔══██╗██╔═══██╗██╔═══██╗████╗ ████║
 ██████╔╝██║     ███████║ ╚████╔╝ ██████╔╝██║   ██║██║   ██║██╔████╔██║
 ██╔═══╝ ██║     ██╔══██║  ╚██╔╝  ██╔══██╗██║   ██║██║   ██║██║╚██╔╝██║
 ██║     ███████╗██║  ██║   ██║   ██║  ██║╚██████╔╝╚██████╔╝██║ ╚═╝ ██║
 ╚═╝     ╚══════╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝  ╚═════╝ ╚═╝     ╚═╝`

const bannerCompact = "P L A Y R O O M"

// RenderBanner returns the PLAYROOM banner, or a one-line version for
// windows narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < lipgloss.Width(bannerArt)+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

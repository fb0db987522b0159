// Package notice shows a message when a game cannot start.
package notice

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/playroom/internal/router"
	"github.com/abhisek/playroom/internal/screen"
	"github.com/abhisek/playroom/internal/ui/theme"
)

// NoticeScreen displays a message until any key is pressed.
type NoticeScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*NoticeScreen)(nil)

// New creates a NoticeScreen.
func New(title, message string) *NoticeScreen {
	return &NoticeScreen{title: title, message: message}
}

func (n *NoticeScreen) Init() tea.Cmd {
	return nil
}

func (n *NoticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		return n, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return n, nil
}

func (n *NoticeScreen) View(width, height int) string {
	body := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Uh oh!") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Render(n.message) +
		"\n\n" +
		theme.Hint.Render("press any key to go back")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (n *NoticeScreen) Title() string {
	return n.title
}

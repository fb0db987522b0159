package summary

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/playroom/internal/router"
	"github.com/abhisek/playroom/internal/screen"
	"github.com/abhisek/playroom/internal/ui/components"
	"github.com/abhisek/playroom/internal/ui/layout"
	"github.com/abhisek/playroom/internal/ui/theme"
)

// Result is what a finished game reports.
type Result struct {
	Game     string
	Buddy    string
	Score    int
	Stars    int
	Rounds   int
	Mistakes int
}

var keyRestart = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "play again"))

// SummaryScreen shows the final score and offers another go.
type SummaryScreen struct {
	result  Result
	restart func() screen.Screen
	buttons []components.Button
	active  int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. restart builds the screen that replaces
// this one when the child plays again.
func New(result Result, restart func() screen.Screen) *SummaryScreen {
	s := &SummaryScreen{result: result, restart: restart}
	s.buttons = []components.Button{
		components.NewButton("Play again", true, s.playAgain),
		components.NewButton("All done", false, func() tea.Cmd {
			return func() tea.Msg { return router.PopToRootMsg{} }
		}),
	}
	return s
}

func (s *SummaryScreen) playAgain() tea.Cmd {
	next := s.restart()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Great Job!"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		components.Hint(components.KeyLeft),
		{Key: "Enter", Description: "Select"},
		components.Hint(keyRestart),
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, keyRestart):
		return s, s.playAgain()
	case key.Matches(kmsg, components.KeyLeft):
		s.focus(0)
		return s, nil
	case key.Matches(kmsg, components.KeyRight):
		s.focus(1)
		return s, nil
	}

	var cmd tea.Cmd
	s.buttons[s.active], cmd = s.buttons[s.active].Update(msg)
	return s, cmd
}

func (s *SummaryScreen) focus(i int) {
	s.active = i
	for j := range s.buttons {
		s.buttons[j].Active = j == i
	}
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%s  You finished %s!", r.Buddy, r.Game)))
	b.WriteString("\n\n")

	b.WriteString(center.Render(renderStars(r.Stars)))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Text).
		Render(fmt.Sprintf("Score: %d        Rounds: %d        Oopsies: %d", r.Score, r.Rounds, r.Mistakes)))
	b.WriteString("\n\n\n")

	views := make([]string, len(s.buttons))
	for i, btn := range s.buttons {
		views[i] = btn.View()
	}
	b.WriteString(center.Render(lipgloss.JoinHorizontal(lipgloss.Center, views[0], "   ", views[1])))

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}

func renderStars(n int) string {
	lit := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.Border)
	var parts []string
	for i := 0; i < 3; i++ {
		if i < n {
			parts = append(parts, lit.Render("★"))
		} else {
			parts = append(parts, dim.Render("☆"))
		}
	}
	return strings.Join(parts, " ")
}

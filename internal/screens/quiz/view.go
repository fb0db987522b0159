package quiz

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/playroom/internal/config"
	"github.com/abhisek/playroom/internal/round"
	"github.com/abhisek/playroom/internal/ui/components"
	"github.com/abhisek/playroom/internal/ui/theme"
)

const itemsPerRow = 5

func (s *QuizScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}

	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	sections := []string{
		s.renderInfoLine(cw),
		components.ArcadeCard(s.renderPicture(), cw),
		center.Foreground(theme.Text).Bold(true).Render(s.question.Prompt()),
		s.grid.View(cw),
		center.Foreground(theme.ArcadeCyan).Render(s.buddy() + "  " + s.buddyLine),
		components.NewProgressBar(s.done, s.total, cw).View(),
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), s.levelColor(), width, height)
}

// renderInfoLine shows the level badge on the left and the score on the
// right.
func (s *QuizScreen) renderInfoLine(cw int) string {
	cfg := s.driver.Session().Config()
	badge := components.Badge(config.LevelBadge(cfg.Domain, cfg.Difficulty), s.levelColor())

	score := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(fmt.Sprintf("Score: %d", s.score))

	gap := max(cw-lipgloss.Width(badge)-lipgloss.Width(score), 1)
	return badge + strings.Repeat(" ", gap) + score
}

func (s *QuizScreen) levelColor() color.Color {
	return theme.LevelColor(string(s.driver.Session().Config().Difficulty))
}

// renderPicture draws what the question is about: the sum, the things to
// count, or the letter to find.
func (s *QuizScreen) renderPicture() string {
	q := s.question
	big := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)

	switch q.Domain {
	case round.DomainArithmetic:
		return big.Render(fmt.Sprintf("%d  %s  %d  =  ?", q.Operand1, q.Operation.Symbol(), q.Operand2))
	case round.DomainCounting:
		return renderItems(q.Item.Symbol, q.Count)
	case round.DomainLetters:
		return big.Render(string(q.Letter))
	default:
		return ""
	}
}

func renderItems(symbol string, n int) string {
	var rows []string
	for n > 0 {
		k := min(n, itemsPerRow)
		rows = append(rows, strings.TrimSpace(strings.Repeat(symbol+" ", k)))
		n -= k
	}
	return strings.Join(rows, "\n")
}

func renderQuitConfirm(width, height int) string {
	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Leave this game?") +
				"\n\n" +
				theme.Hint.Render("Your score will not be kept.") +
				"\n\n" +
				lipgloss.NewStyle().Foreground(theme.Text).Render("[Y] Yes    [N] Keep playing"),
		)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dialog)
}

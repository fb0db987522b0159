// Package adventure is the screen for the star-collecting adventure game.
package adventure

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	game "github.com/abhisek/playroom/internal/adventure"
	"github.com/abhisek/playroom/internal/content"
	"github.com/abhisek/playroom/internal/feedback"
	"github.com/abhisek/playroom/internal/round"
	"github.com/abhisek/playroom/internal/router"
	"github.com/abhisek/playroom/internal/screen"
	"github.com/abhisek/playroom/internal/screens/summary"
	"github.com/abhisek/playroom/internal/ui/anim"
	"github.com/abhisek/playroom/internal/ui/components"
	"github.com/abhisek/playroom/internal/ui/layout"
	"github.com/abhisek/playroom/internal/ui/theme"
)

// Options configure the adventure screen.
type Options struct {
	Catalog      *content.Catalog
	Cues         feedback.CuePlayer
	Source       round.Source
	AdvanceDelay time.Duration
}

type levelDoneMsg struct{}

// AdventureScreen walks the buddy around the board and runs the bonus
// challenge between levels.
type AdventureScreen struct {
	opts   Options
	game   *game.Game
	grid   components.OptionGrid
	anim   anim.Sequence
	animID int
	line   string

	mistakes int
}

var _ screen.Screen = (*AdventureScreen)(nil)
var _ screen.KeyHintProvider = (*AdventureScreen)(nil)
var _ screen.StatusProvider = (*AdventureScreen)(nil)

// New starts an adventure at level 1.
func New(opts Options) *AdventureScreen {
	if opts.Source == nil {
		opts.Source = round.NewSource(0)
	}
	if opts.Cues == nil {
		opts.Cues = feedback.Silent{}
	}
	var challenges []content.Challenge
	if opts.Catalog != nil {
		challenges = opts.Catalog.Challenges
	}
	return &AdventureScreen{
		opts: opts,
		game: game.New(challenges, opts.Source),
		line: "Collect all the stars!",
	}
}

func (s *AdventureScreen) Init() tea.Cmd {
	return nil
}

func (s *AdventureScreen) Title() string {
	return fmt.Sprintf("Adventure · Level %d", s.game.Level())
}

func (s *AdventureScreen) Status() string {
	return fmt.Sprintf("★ %d", s.game.Collected())
}

func (s *AdventureScreen) KeyHints() []layout.KeyHint {
	if s.game.Phase() == game.PhaseChallenge {
		return []layout.KeyHint{
			components.Hint(components.KeyLeft),
			components.Hint(components.KeyDigits),
			components.Hint(components.KeyEnter),
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "walk"},
		{Key: "Esc", Description: "Back"},
	}
}

var directions = []struct {
	binding key.Binding
	dir     game.Direction
}{
	{components.KeyUp, game.Up},
	{components.KeyDown, game.Down},
	{components.KeyLeft, game.Left},
	{components.KeyRight, game.Right},
}

func (s *AdventureScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch s.game.Phase() {
		case game.PhaseExploring:
			return s, s.walk(msg)
		case game.PhaseChallenge:
			var cmd tea.Cmd
			s.grid, cmd = s.grid.Update(msg)
			return s, cmd
		}

	case components.OptionChosenMsg:
		return s, s.answer(msg.Index)

	case anim.TickMsg:
		var cmd tea.Cmd
		s.anim, cmd = s.anim.Update(msg)
		f := s.anim.Frame()
		s.grid.Offset, s.grid.Lit = f.Offset, f.Lit
		if s.anim.Done() && s.game.Phase() == game.PhaseChallenge {
			s.grid = s.grid.ClearMarks()
			s.grid.Locked = false
		}
		return s, cmd

	case levelDoneMsg:
		return s, s.levelDone()
	}
	return s, nil
}

func (s *AdventureScreen) walk(msg tea.KeyPressMsg) tea.Cmd {
	for _, d := range directions {
		if !key.Matches(msg, d.binding) {
			continue
		}
		res := s.game.Move(d.dir)
		if res.Collected {
			s.opts.Cues.PlayCorrect()
			s.line = fmt.Sprintf("%d stars to go!", s.game.StarsLeft())
		}
		if res.Cleared {
			s.openChallenge()
		}
		return nil
	}
	return nil
}

func (s *AdventureScreen) openChallenge() {
	ch := s.game.Challenge()
	labels := make([]string, len(ch.Options))
	for i, o := range ch.Options {
		labels[i] = strconv.Itoa(o)
	}
	s.grid = components.NewOptionGrid(labels)
	s.line = "Bonus time! " + ch.Question
}

func (s *AdventureScreen) answer(i int) tea.Cmd {
	ch := s.game.Challenge()
	if ch == nil || i < 0 || i >= len(ch.Options) || s.grid.Locked {
		return nil
	}
	ok, err := s.game.Answer(ch.Options[i])
	if err != nil {
		log.Printf("adventure: answer: %v", err)
		return nil
	}

	s.animID++
	s.grid.Locked = true
	if !ok {
		s.opts.Cues.PlayWrong()
		s.mistakes++
		s.grid = s.grid.Mark(i, components.MarkWrong)
		s.line = "Not quite, try again!"
		s.anim = anim.Shake(s.animID)
		return s.anim.Start()
	}

	s.opts.Cues.PlayCorrect()
	log.Printf("adventure: level %d cleared, %d stars", s.game.Level(), s.game.Collected())
	s.grid = s.grid.Mark(i, components.MarkCorrect)
	s.line = fmt.Sprintf("+%d bonus stars!", game.BonusStars)
	s.anim = anim.Flash(s.animID)
	return tea.Batch(
		s.anim.Start(),
		tea.Tick(s.opts.AdvanceDelay, func(time.Time) tea.Msg { return levelDoneMsg{} }),
	)
}

func (s *AdventureScreen) levelDone() tea.Cmd {
	switch s.game.Phase() {
	case game.PhaseLevelUp:
		if err := s.game.NextLevel(); err != nil {
			log.Printf("adventure: next level: %v", err)
			return nil
		}
		s.line = fmt.Sprintf("Level %d! Collect all the stars!", s.game.Level())
		s.anim = anim.Sequence{}
	case game.PhaseComplete:
		res := summary.Result{
			Game:     "the Adventure",
			Buddy:    s.buddy(),
			Score:    s.game.Collected(),
			Stars:    3,
			Rounds:   game.TotalLevels,
			Mistakes: s.mistakes,
		}
		opts := s.opts
		next := summary.New(res, func() screen.Screen { return New(opts) })
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return nil
}

func (s *AdventureScreen) buddy() string {
	if s.opts.Catalog == nil {
		return "🙂"
	}
	return s.opts.Catalog.Buddy(s.game.Level() - 1)
}

func (s *AdventureScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	sections := []string{
		center.Foreground(theme.ArcadeYellow).Bold(true).
			Render(fmt.Sprintf("Level %d of %d   ★ %d", s.game.Level(), game.TotalLevels, s.game.Collected())),
		s.renderBoard(),
	}
	if s.game.Phase() == game.PhaseChallenge || s.game.Phase() == game.PhaseLevelUp || s.game.Phase() == game.PhaseComplete {
		if ch := s.game.Challenge(); ch != nil {
			sections = append(sections,
				center.Foreground(theme.Text).Bold(true).Render(ch.Question),
				s.grid.View(cw),
			)
		}
	}
	sections = append(sections, center.Foreground(theme.ArcadeCyan).Render(s.buddy()+"  "+s.line))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), theme.Primary, width, height)
}

func (s *AdventureScreen) renderBoard() string {
	dot := lipgloss.NewStyle().Foreground(theme.Border).Render("· ")
	var b strings.Builder
	for y := 0; y < game.Height; y++ {
		for x := 0; x < game.Width; x++ {
			p := game.Point{X: x, Y: y}
			switch {
			case p == s.game.Player():
				b.WriteString(s.buddy())
			case s.game.StarAt(p):
				b.WriteString("⭐")
			default:
				b.WriteString(dot)
			}
		}
		if y < game.Height-1 {
			b.WriteString("\n")
		}
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Render(b.String())
}

// Package basket is the screen for the drag-and-count basket game.
package basket

import (
	"fmt"
	"log"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	game "github.com/abhisek/playroom/internal/basket"
	"github.com/abhisek/playroom/internal/content"
	"github.com/abhisek/playroom/internal/feedback"
	"github.com/abhisek/playroom/internal/round"
	"github.com/abhisek/playroom/internal/screen"
	"github.com/abhisek/playroom/internal/ui/anim"
	"github.com/abhisek/playroom/internal/ui/components"
	"github.com/abhisek/playroom/internal/ui/layout"
	"github.com/abhisek/playroom/internal/ui/theme"
)

const perRow = 8

var (
	keyCheck = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "check"))
	keyReset = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "start over"))
)

// Options configure the basket screen.
type Options struct {
	Catalog      *content.Catalog
	Cues         feedback.CuePlayer
	Source       round.Source
	AdvanceDelay time.Duration
}

type nextRoundMsg struct {
	gen int
}

// BasketScreen lets the child move items into the basket with the cursor.
type BasketScreen struct {
	opts   Options
	game   *game.Game
	cursor int
	line   string
	anim   anim.Sequence
	animID int
	gen    int
}

var _ screen.Screen = (*BasketScreen)(nil)
var _ screen.KeyHintProvider = (*BasketScreen)(nil)
var _ screen.StatusProvider = (*BasketScreen)(nil)

// New starts an endless basket game.
func New(opts Options) *BasketScreen {
	if opts.Source == nil {
		opts.Source = round.NewSource(0)
	}
	if opts.Cues == nil {
		opts.Cues = feedback.Silent{}
	}
	var items []round.Item
	if opts.Catalog != nil {
		items = opts.Catalog.BasketItems
	}
	s := &BasketScreen{opts: opts, game: game.New(items, opts.Source)}
	s.line = s.instruction()
	return s
}

func (s *BasketScreen) instruction() string {
	return fmt.Sprintf("Put %d %s in the basket!", s.game.Target(), s.game.Item().Name)
}

func (s *BasketScreen) Init() tea.Cmd {
	return nil
}

func (s *BasketScreen) Title() string {
	return "Basket"
}

func (s *BasketScreen) Status() string {
	return fmt.Sprintf("★ %d", s.game.Score())
}

func (s *BasketScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "move"},
		{Key: "enter", Description: "in/out"},
		components.Hint(keyCheck),
		components.Hint(keyReset),
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BasketScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return s, s.handleKey(msg)

	case anim.TickMsg:
		var cmd tea.Cmd
		s.anim, cmd = s.anim.Update(msg)
		return s, cmd

	case nextRoundMsg:
		if msg.gen != s.gen {
			return s, nil
		}
		if err := s.game.Next(); err != nil {
			log.Printf("basket: next round: %v", err)
			return s, nil
		}
		s.cursor = 0
		s.line = s.instruction()
	}
	return s, nil
}

func (s *BasketScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if s.game.Advancing() {
		return nil
	}
	size := s.game.PoolSize()

	switch {
	case key.Matches(msg, components.KeyLeft):
		s.cursor = max(s.cursor-1, 0)
	case key.Matches(msg, components.KeyRight):
		s.cursor = min(s.cursor+1, size-1)
	case key.Matches(msg, components.KeyUp):
		if s.cursor-perRow >= 0 {
			s.cursor -= perRow
		}
	case key.Matches(msg, components.KeyDown):
		if s.cursor+perRow < size {
			s.cursor += perRow
		}
	case key.Matches(msg, components.KeyEnter):
		s.game.Toggle(s.cursor)
	case key.Matches(msg, keyReset):
		s.gen++
		s.game.Reset()
		s.cursor = 0
		s.line = s.instruction()
	case key.Matches(msg, keyCheck):
		return s.check()
	}
	return nil
}

func (s *BasketScreen) check() tea.Cmd {
	res, err := s.game.Check()
	if err != nil {
		log.Printf("basket: check: %v", err)
		return nil
	}
	s.animID++

	if !res.Correct {
		s.opts.Cues.PlayWrong()
		if res.Count < res.Target {
			s.line = fmt.Sprintf("You have %d. We need %d. Add more!", res.Count, res.Target)
		} else {
			s.line = fmt.Sprintf("You have %d. We need %d. Take some out!", res.Count, res.Target)
		}
		s.anim = anim.Shake(s.animID)
		return s.anim.Start()
	}

	s.opts.Cues.PlayCorrect()
	log.Printf("basket: round %d done, score %d", s.game.RoundsCompleted(), s.game.Score())
	s.line = s.cheer()
	s.anim = anim.Flash(s.animID)
	gen := s.gen
	return tea.Batch(
		s.anim.Start(),
		tea.Tick(s.opts.AdvanceDelay, func(time.Time) tea.Msg { return nextRoundMsg{gen: gen} }),
	)
}

func (s *BasketScreen) cheer() string {
	if s.opts.Catalog == nil {
		return "Great job!"
	}
	return s.opts.Catalog.Cheer(s.opts.Source, true)
}

func (s *BasketScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
	frame := s.anim.Frame()

	sections := []string{
		center.Foreground(theme.Text).Bold(true).Render(s.instruction()),
		components.ArcadeCard(s.renderPool(), cw),
		s.renderBasket(cw, frame),
		center.Foreground(theme.ArcadeCyan).Render(s.line),
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), theme.Primary, width, height)
}

// renderPool draws the items still outside the basket. Taken slots stay as
// gaps so the cursor does not jump around.
func (s *BasketScreen) renderPool() string {
	item := s.game.Item().Symbol
	cursor := lipgloss.NewStyle().Background(theme.ArcadeYellow)

	var rows []string
	var row []string
	for i := 0; i < s.game.PoolSize(); i++ {
		cell := item
		if s.game.InBasket(i) {
			cell = "··"
		}
		if i == s.cursor && !s.game.Advancing() {
			cell = cursor.Render(cell)
		}
		row = append(row, cell)
		if len(row) == perRow {
			rows = append(rows, strings.Join(row, "  "))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, "  "))
	}
	return strings.Join(rows, "\n")
}

func (s *BasketScreen) renderBasket(cw int, frame anim.Frame) string {
	n := s.game.Count()
	contents := "(empty)"
	if n > 0 {
		contents = strings.Repeat(s.game.Item().Symbol, n)
	}

	border := theme.Accent
	if frame.Lit {
		border = theme.Success
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw-2).
		Align(lipgloss.Center).
		MarginLeft(max(frame.Offset, 0)).
		Render(fmt.Sprintf("🧺  %s  (%d)", contents, n))
}

// Package levelpick is the screen where a child picks the operation and
// level before a quiz starts.
package levelpick

import (
	"errors"
	"log"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/playroom/internal/config"
	"github.com/abhisek/playroom/internal/round"
	"github.com/abhisek/playroom/internal/router"
	"github.com/abhisek/playroom/internal/screen"
	"github.com/abhisek/playroom/internal/ui/components"
	"github.com/abhisek/playroom/internal/ui/layout"
	"github.com/abhisek/playroom/internal/ui/theme"
)

var keyParams = key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "type params"))

var (
	operations = []round.Operation{round.OpAdd, round.OpSub, round.OpMul, round.OpDiv}
	levels     = []round.Difficulty{round.Easy, round.Medium, round.Hard}
)

const (
	rowOperation = iota
	rowLevel
)

// LevelPickScreen chooses the game parameters and starts the game.
type LevelPickScreen struct {
	domain round.Domain
	start  func(config.Params) screen.Screen

	op    int
	level int
	row   int

	editing bool
	input   components.TextInput
	notes   []string
}

var _ screen.Screen = (*LevelPickScreen)(nil)
var _ screen.KeyHintProvider = (*LevelPickScreen)(nil)
var _ screen.EscapeHandler = (*LevelPickScreen)(nil)

// New creates the picker with initial preselected. start builds the game
// screen once the child presses enter.
func New(domain round.Domain, initial config.Params, start func(config.Params) screen.Screen) *LevelPickScreen {
	s := &LevelPickScreen{domain: domain, start: start, row: rowLevel}
	if s.hasOperation() {
		s.row = rowOperation
	}
	s.apply(initial)
	return s
}

func (s *LevelPickScreen) hasOperation() bool {
	return s.domain == round.DomainArithmetic
}

func (s *LevelPickScreen) apply(p config.Params) {
	if i := slices.Index(operations, p.Operation); i >= 0 {
		s.op = i
	}
	if i := slices.Index(levels, p.Difficulty); i >= 0 {
		s.level = i
	}
}

// Params returns the current choice.
func (s *LevelPickScreen) Params() config.Params {
	p := config.Params{Difficulty: levels[s.level]}
	if s.hasOperation() {
		p.Operation = operations[s.op]
	}
	return p
}

func (s *LevelPickScreen) Init() tea.Cmd {
	return nil
}

func (s *LevelPickScreen) Title() string {
	switch s.domain {
	case round.DomainArithmetic:
		return "Math"
	case round.DomainCounting:
		return "Counting"
	case round.DomainLetters:
		return "Letters"
	default:
		return string(s.domain)
	}
}

func (s *LevelPickScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "choose"},
		{Key: "Enter", Description: "Play!"},
		components.Hint(keyParams),
		{Key: "Esc", Description: "Back"},
	}
}

// HandlesEscape keeps esc inside the params field while it is open.
func (s *LevelPickScreen) HandlesEscape() bool {
	return s.editing
}

func (s *LevelPickScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.editing {
		return s, s.updateInput(msg)
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, keyParams):
		s.editing = true
		s.input = components.NewTextInput("op=sub&level=hard", 64)
		return s, s.input.Model.Focus()
	case key.Matches(kmsg, components.KeyUp):
		if s.hasOperation() {
			s.row = rowOperation
		}
	case key.Matches(kmsg, components.KeyDown):
		s.row = rowLevel
	case key.Matches(kmsg, components.KeyLeft):
		s.move(-1)
	case key.Matches(kmsg, components.KeyRight):
		s.move(1)
	case key.Matches(kmsg, components.KeyEnter):
		next := s.start(s.Params())
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *LevelPickScreen) move(delta int) {
	if s.row == rowOperation {
		s.op = min(max(s.op+delta, 0), len(operations)-1)
		return
	}
	s.level = min(max(s.level+delta, 0), len(levels)-1)
}

func (s *LevelPickScreen) updateInput(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case components.TextSubmittedMsg:
		s.submitParams(msg.Value)
		return nil
	case tea.KeyPressMsg:
		if msg.String() == "esc" {
			s.editing = false
			return nil
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// submitParams applies a typed query. Unknown values fall back to the
// defaults and are listed under the field.
func (s *LevelPickScreen) submitParams(query string) {
	p, err := config.ParseParams(config.Request{Query: query}, false)
	if err != nil {
		var cerr *round.ConfigError
		if errors.As(err, &cerr) {
			s.notes = []string{cerr.Error()}
		}
		s.input.Submit(false)
		return
	}

	s.notes = s.notes[:0]
	for _, f := range p.Fallbacks {
		log.Printf("levelpick: %s", f)
		s.notes = append(s.notes, f.String())
	}
	s.apply(p)
	s.input.Submit(true)
	s.editing = false
}

func (s *LevelPickScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var sections []string
	sections = append(sections, center.Foreground(theme.ArcadeYellow).Bold(true).Render("Pick your game!"))

	if s.hasOperation() {
		chips := make([]string, len(operations))
		for i, op := range operations {
			chips[i] = components.Chip(op.Symbol(), i == s.op, theme.ArcadeYellow, 5)
		}
		sections = append(sections,
			s.renderRow(rowOperation, chips, cw),
			center.Foreground(theme.Text).Render(operations[s.op].DisplayName()),
		)
	}

	chips := make([]string, len(levels))
	for i, d := range levels {
		chips[i] = s.levelChip(d, i == s.level)
	}
	sections = append(sections, s.renderRow(rowLevel, chips, cw))

	if s.editing {
		sections = append(sections, components.ArcadeCard(s.input.View(), cw))
	}
	if len(s.notes) > 0 {
		sections = append(sections, center.Foreground(theme.Accent).Render(strings.Join(s.notes, "\n")))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), theme.LevelColor(string(levels[s.level])), width, height)
}

func (s *LevelPickScreen) levelChip(d round.Difficulty, selected bool) string {
	return components.Chip(config.LevelBadge(s.domain, d), selected, theme.LevelColor(string(d)), 12)
}

// renderRow lays chips side by side with a marker on the focused row.
func (s *LevelPickScreen) renderRow(row int, chips []string, cw int) string {
	marker := "  "
	if s.row == row {
		marker = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("▸ ")
	}
	line := lipgloss.JoinHorizontal(lipgloss.Center, append([]string{marker}, chips...)...)
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(line)
}

package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/playroom/internal/ui/theme"
)

// Mark colors a tile after it was picked.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkWrong
)

// OptionChosenMsg reports the tile picked in an OptionGrid.
type OptionChosenMsg struct {
	Index int
}

// OptionGrid lays answer tiles out in rows and lets the player move between
// them or pick one by number.
type OptionGrid struct {
	Labels   []string
	Selected int
	Locked   bool

	marks []Mark

	// Offset and Lit come from the running animation and apply to marked
	// tiles only.
	Offset int
	Lit    bool
}

// NewOptionGrid creates a grid with the first tile selected.
func NewOptionGrid(labels []string) OptionGrid {
	return OptionGrid{Labels: labels, marks: make([]Mark, len(labels))}
}

// Columns is the number of tiles per row: one row up to four tiles, two
// rows beyond that.
func (g OptionGrid) Columns() int {
	n := len(g.Labels)
	if n <= 4 {
		return max(n, 1)
	}
	return (n + 1) / 2
}

// Mark sets the mark of tile i.
func (g OptionGrid) Mark(i int, m Mark) OptionGrid {
	if i < 0 || i >= len(g.marks) {
		return g
	}
	marks := make([]Mark, len(g.marks))
	copy(marks, g.marks)
	marks[i] = m
	g.marks = marks
	return g
}

// MarkOf returns the mark of tile i.
func (g OptionGrid) MarkOf(i int) Mark {
	if i < 0 || i >= len(g.marks) {
		return MarkNone
	}
	return g.marks[i]
}

// ClearMarks removes all marks and animation state.
func (g OptionGrid) ClearMarks() OptionGrid {
	g.marks = make([]Mark, len(g.Labels))
	g.Offset, g.Lit = 0, false
	return g
}

// Update moves the selection and emits OptionChosenMsg on enter or a
// digit key. A locked grid ignores input.
func (g OptionGrid) Update(msg tea.Msg) (OptionGrid, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || g.Locked || len(g.Labels) == 0 {
		return g, nil
	}

	cols := g.Columns()
	switch {
	case key.Matches(kmsg, KeyLeft):
		if g.Selected > 0 {
			g.Selected--
		}
	case key.Matches(kmsg, KeyRight):
		if g.Selected < len(g.Labels)-1 {
			g.Selected++
		}
	case key.Matches(kmsg, KeyUp):
		if g.Selected-cols >= 0 {
			g.Selected -= cols
		}
	case key.Matches(kmsg, KeyDown):
		if g.Selected+cols < len(g.Labels) {
			g.Selected += cols
		}
	case key.Matches(kmsg, KeyEnter):
		return g, choose(g.Selected)
	default:
		if i, ok := DigitIndex(kmsg); ok && i < len(g.Labels) {
			g.Selected = i
			return g, choose(i)
		}
	}
	return g, nil
}

func choose(i int) tea.Cmd {
	return func() tea.Msg { return OptionChosenMsg{Index: i} }
}

// View renders the tiles centered in width.
func (g OptionGrid) View(width int) string {
	cols := g.Columns()
	tileWidth := min(max((width-cols*3)/cols, 5), 12)

	var rows []string
	for start := 0; start < len(g.Labels); start += cols {
		end := min(start+cols, len(g.Labels))
		tiles := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			tiles = append(tiles, g.tile(i, tileWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(rows, "\n"))
}

func (g OptionGrid) tile(i, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		MarginLeft(1).
		MarginRight(1)

	switch g.MarkOf(i) {
	case MarkCorrect:
		bg := theme.Success
		if g.Lit {
			bg = theme.ArcadeYellow
		}
		style = style.Foreground(theme.BgDark).Background(bg).BorderForeground(bg)
	case MarkWrong:
		style = style.Foreground(theme.Text).Background(theme.Error).BorderForeground(theme.Error).
			MarginLeft(1 + g.Offset).
			MarginRight(1 - g.Offset)
	default:
		if i == g.Selected && !g.Locked {
			style = style.Foreground(theme.BgDark).Background(theme.ArcadeYellow).BorderForeground(theme.ArcadeYellow)
		} else {
			style = style.Foreground(theme.Text).BorderForeground(theme.Border)
		}
	}
	return style.Render(g.Labels[i])
}

package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(g OptionGrid, msg tea.KeyPressMsg) (OptionGrid, tea.Msg) {
	g, cmd := g.Update(msg)
	if cmd == nil {
		return g, nil
	}
	return g, cmd()
}

func TestOptionGrid_Navigation(t *testing.T) {
	g := NewOptionGrid([]string{"A", "B", "C", "D", "E", "F"})
	require.Equal(t, 3, g.Columns())

	g, _ = press(g, tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, 1, g.Selected)
	g, _ = press(g, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 4, g.Selected)
	g, _ = press(g, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 4, g.Selected, "no row below")
	g, _ = press(g, tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, g.Selected)
	g, _ = press(g, tea.KeyPressMsg{Code: tea.KeyLeft})
	g, _ = press(g, tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, 0, g.Selected)
}

func TestOptionGrid_Choose(t *testing.T) {
	g := NewOptionGrid([]string{"5", "7", "9"})

	g, msg := press(g, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, OptionChosenMsg{Index: 0}, msg)

	g, msg = press(g, tea.KeyPressMsg{Code: '3', Text: "3"})
	assert.Equal(t, OptionChosenMsg{Index: 2}, msg)
	assert.Equal(t, 2, g.Selected)

	_, msg = press(g, tea.KeyPressMsg{Code: '4', Text: "4"})
	assert.Nil(t, msg, "no fourth tile")
}

func TestOptionGrid_LockedIgnoresKeys(t *testing.T) {
	g := NewOptionGrid([]string{"5", "7", "9"})
	g.Locked = true
	g, msg := press(g, tea.KeyPressMsg{Code: '1', Text: "1"})
	assert.Nil(t, msg)
	assert.Equal(t, 0, g.Selected)
}

func TestOptionGrid_MarksAreCopied(t *testing.T) {
	g := NewOptionGrid([]string{"5", "7", "9"})
	marked := g.Mark(1, MarkWrong)

	assert.Equal(t, MarkNone, g.MarkOf(1))
	assert.Equal(t, MarkWrong, marked.MarkOf(1))
	assert.Equal(t, MarkNone, marked.ClearMarks().MarkOf(1))
	assert.Equal(t, MarkNone, marked.MarkOf(9))
}

func TestOptionGrid_ViewShowsLabels(t *testing.T) {
	g := NewOptionGrid([]string{"5", "7", "9"})
	view := g.View(60)
	for _, l := range g.Labels {
		assert.Contains(t, view, l)
	}
}

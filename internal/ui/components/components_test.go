package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/playroom/internal/ui/theme"
)

func TestContentWidth_Bounds(t *testing.T) {
	assert.Equal(t, 24, ContentWidth(10))
	assert.Equal(t, 44, ContentWidth(50))
	assert.Equal(t, 64, ContentWidth(200))
}

func TestChip_SelectedShowsLabel(t *testing.T) {
	on := Chip("Hard", true, theme.LevelHard, 12)
	off := Chip("Hard", false, theme.LevelHard, 12)

	assert.Contains(t, on, "Hard")
	assert.Contains(t, off, "Hard")
	assert.Equal(t, lipgloss.Width(on), lipgloss.Width(off))
}

func TestProgressBar(t *testing.T) {
	assert.InDelta(t, 0.5, NewProgressBar(5, 10, 40).Ratio(), 1e-9)
	assert.InDelta(t, 1.0, NewProgressBar(12, 10, 40).Ratio(), 1e-9)
	assert.Zero(t, NewProgressBar(3, 0, 40).Ratio())

	view := NewProgressBar(3, 10, 40).View()
	assert.Contains(t, view, "3/10")
	assert.Equal(t, 40, lipgloss.Width(view))
}

func TestTextInput_SubmitOnEnter(t *testing.T) {
	ti := NewTextInput("op=add", 40)
	for _, r := range "level=hard" {
		ti, _ = ti.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	assert.Equal(t, "level=hard", ti.Value())

	_, cmd := ti.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, TextSubmittedMsg{Value: "level=hard"}, cmd())
}

func TestTextInput_EditClearsVerdict(t *testing.T) {
	ti := NewTextInput("", 0)
	ti.Submit(false)
	assert.Contains(t, ti.View(), "✗")

	ti, _ = ti.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.NotContains(t, ti.View(), "✗")
}

func TestButton_PressOnlyWhenActive(t *testing.T) {
	pressed := 0
	b := NewButton("Go", false, func() tea.Cmd { pressed++; return nil })

	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Zero(t, pressed)

	b.Active = true
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, 1, pressed)
	assert.Contains(t, b.View(), "▸ Go")
}

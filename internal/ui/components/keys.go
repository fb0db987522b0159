package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/playroom/internal/ui/layout"
)

// Key bindings shared by menus and game screens.
var (
	KeyUp     = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "move"))
	KeyDown   = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↑↓", "move"))
	KeyLeft   = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "choose"))
	KeyRight  = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←→", "choose"))
	KeyEnter  = key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "pick"))
	KeyBack   = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	KeyDigits = key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "quick pick"),
	)
)

// Hint turns a binding's help text into a footer hint.
func Hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}

// DigitIndex maps the keys 1-9 to indexes 0-8.
func DigitIndex(msg tea.KeyPressMsg) (int, bool) {
	if !key.Matches(msg, KeyDigits) {
		return 0, false
	}
	return int(msg.String()[0] - '1'), true
}

package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/playroom/internal/config"
	"github.com/abhisek/playroom/internal/router"
	"github.com/abhisek/playroom/internal/screen"
	"github.com/abhisek/playroom/internal/screens/launch"
	"github.com/abhisek/playroom/internal/ui/components"
	"github.com/abhisek/playroom/internal/ui/layout"
	"github.com/abhisek/playroom/internal/ui/theme"
)

var menuLabels = []string{"MATH", "COUNTING", "LETTERS", "BASKET", "ADVENTURE", "EXIT GAME"}

// HomeScreen is the game menu.
type HomeScreen struct {
	deps  launch.Deps
	menu  components.Menu
	buddy string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps launch.Deps) *HomeScreen {
	defaults := config.Params{Operation: config.DefaultOperation, Difficulty: config.DefaultDifficulty}

	items := make([]components.MenuItem, 0, len(menuLabels))
	for i, g := range launch.Games {
		items = append(items, components.MenuItem{Label: menuLabels[i], Action: func() tea.Cmd {
			next := deps.Screen(g, defaults, false)
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}})
	}
	items = append(items, components.MenuItem{Label: menuLabels[len(menuLabels)-1], Action: func() tea.Cmd {
		return tea.Quit
	}})

	buddy := "🙂"
	if deps.Catalog != nil {
		buddy = deps.Catalog.Buddy(0)
	}

	return &HomeScreen{
		deps:  deps,
		menu:  components.NewMenu(items),
		buddy: buddy,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) variant() MascotVariant {
	switch {
	case h.menu.Selected == len(menuLabels)-1:
		return MascotSleepy
	case h.menu.Selected > 0:
		return MascotExcited
	default:
		return MascotIdle
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.buddy, mascotLines[h.menu.Selected], h.variant(), cw))
	}

	sections = append(sections, renderStatsBar(
		h.deps.Config.Rounds, h.deps.Config.Sound != config.SoundOff, cw, compact))

	if layout.IsCompactHeight(termHeight) {
		sections = append(sections, renderArcadeMenuCompact(menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(menuLabels, h.menu.Selected, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), theme.Primary, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

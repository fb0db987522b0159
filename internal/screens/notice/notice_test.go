package notice

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/playroom/internal/router"
)

func TestNoticeScreen_ShowsMessage(t *testing.T) {
	n := New("Math", "rounds must be at least 1")
	if n.Title() != "Math" {
		t.Errorf("Title = %q", n.Title())
	}
	if !strings.Contains(n.View(80, 20), "rounds must be at least 1") {
		t.Error("view should contain the message")
	}
}

func TestNoticeScreen_AnyKeyPops(t *testing.T) {
	n := New("Math", "oops")
	_, cmd := n.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

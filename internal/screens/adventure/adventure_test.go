package adventure

import (
	"slices"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	game "github.com/abhisek/playroom/internal/adventure"
	"github.com/abhisek/playroom/internal/content"
	"github.com/abhisek/playroom/internal/round"
	"github.com/abhisek/playroom/internal/router"
	"github.com/abhisek/playroom/internal/screens/summary"
	"github.com/abhisek/playroom/internal/ui/anim"
	"github.com/abhisek/playroom/internal/ui/components"
)

type recordingCues struct {
	correct, wrong int
}

func (c *recordingCues) PlayCorrect() { c.correct++ }
func (c *recordingCues) PlayWrong()   { c.wrong++ }

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testAdventure(t *testing.T) (*AdventureScreen, *recordingCues) {
	t.Helper()
	cat, err := content.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	cues := &recordingCues{}
	return New(Options{Catalog: cat, Cues: cues, Source: round.NewSource(5)}), cues
}

// clearLevel walks to every star with the arrow keys.
func clearLevel(s *AdventureScreen) {
	for s.game.Phase() == game.PhaseExploring {
		target, p := s.game.Stars()[0], s.game.Player()
		switch {
		case p.X < target.X:
			s.Update(specialKey(tea.KeyRight))
		case p.X > target.X:
			s.Update(specialKey(tea.KeyLeft))
		case p.Y < target.Y:
			s.Update(specialKey(tea.KeyDown))
		default:
			s.Update(specialKey(tea.KeyUp))
		}
	}
}

func pick(s *AdventureScreen, correct bool) tea.Cmd {
	ch := s.game.Challenge()
	i := slices.Index(ch.Options, ch.Answer)
	if !correct {
		i = (i + 1) % len(ch.Options)
	}
	_, cmd := s.Update(components.OptionChosenMsg{Index: i})
	return cmd
}

func TestAdventure_WalkCollectsStars(t *testing.T) {
	s, cues := testAdventure(t)
	clearLevel(s)

	if cues.correct != game.StarsPerLevel {
		t.Errorf("correct cue played %d times, want %d", cues.correct, game.StarsPerLevel)
	}
	if s.game.Phase() != game.PhaseChallenge {
		t.Fatalf("phase = %v, want challenge", s.game.Phase())
	}
	if !strings.HasPrefix(s.line, "Bonus time!") {
		t.Errorf("line = %q", s.line)
	}
	if len(s.grid.Labels) != len(s.game.Challenge().Options) {
		t.Error("grid should show the challenge options")
	}
	if !strings.Contains(s.View(100, 40), s.game.Challenge().Question) {
		t.Error("view should show the challenge question")
	}
}

func TestAdventure_WrongThenRightAnswer(t *testing.T) {
	s, cues := testAdventure(t)
	clearLevel(s)

	if cmd := pick(s, false); cmd == nil {
		t.Fatal("expected a shake")
	}
	if cues.wrong != 1 || s.mistakes != 1 {
		t.Errorf("wrong cues %d, mistakes %d", cues.wrong, s.mistakes)
	}
	// Locked until the shake is over.
	if cmd := pick(s, true); cmd != nil {
		t.Error("pick during the shake should be ignored")
	}
	for !s.anim.Done() {
		s.Update(anim.TickMsg{ID: s.animID})
	}

	if cmd := pick(s, true); cmd == nil {
		t.Fatal("expected flash and level-up commands")
	}
	if s.game.Phase() != game.PhaseLevelUp {
		t.Fatalf("phase = %v, want level-up", s.game.Phase())
	}

	s.Update(levelDoneMsg{})
	if s.game.Level() != 2 || s.game.Phase() != game.PhaseExploring {
		t.Errorf("level %d phase %v", s.game.Level(), s.game.Phase())
	}
	if s.Title() != "Adventure · Level 2" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestAdventure_CompleteShowsSummary(t *testing.T) {
	s, _ := testAdventure(t)
	var cmd tea.Cmd
	for level := 1; level <= game.TotalLevels; level++ {
		clearLevel(s)
		pick(s, true)
		_, cmd = s.Update(levelDoneMsg{})
	}

	if cmd == nil {
		t.Fatal("expected the summary after the last level")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	sum, ok := replace.Screen.(*summary.SummaryScreen)
	if !ok {
		t.Fatalf("expected summary screen, got %T", replace.Screen)
	}

	_, cmd = sum.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	again, ok := cmd().(router.ReplaceScreenMsg).Screen.(*AdventureScreen)
	if !ok {
		t.Fatal("play again should start a new adventure")
	}
	if again == s || again.game.Level() != 1 {
		t.Error("play again should start from level 1")
	}
}

func TestAdventure_StatusCountsStars(t *testing.T) {
	s, _ := testAdventure(t)
	if s.Status() != "★ 0" {
		t.Errorf("Status = %q", s.Status())
	}
	clearLevel(s)
	if s.Status() != "★ 5" {
		t.Errorf("Status = %q", s.Status())
	}
}

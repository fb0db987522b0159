package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/playroom/internal/content"
	"github.com/abhisek/playroom/internal/round"
	"github.com/abhisek/playroom/internal/router"
	"github.com/abhisek/playroom/internal/screen"
	"github.com/abhisek/playroom/internal/screens/summary"
	"github.com/abhisek/playroom/internal/ui/anim"
	"github.com/abhisek/playroom/internal/ui/components"
)

type recordingCues struct {
	correct, wrong int
}

func (c *recordingCues) PlayCorrect() { c.correct++ }
func (c *recordingCues) PlayWrong()   { c.wrong++ }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuiz(t *testing.T, cfg round.RoundConfig) (*QuizScreen, *recordingCues) {
	t.Helper()
	cat, err := content.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	cues := &recordingCues{}
	s, err := New(Options{Round: cfg, Catalog: cat, Cues: cues, Source: round.NewSource(42)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, cues
}

func correctIndex(s *QuizScreen) int {
	return round.IndexOf(s.options, s.driver.Session().Question().Answer)
}

func wrongIndex(s *QuizScreen) int {
	return (correctIndex(s) + 1) % len(s.options)
}

func TestNew_RejectsBadConfig(t *testing.T) {
	_, err := New(Options{Round: round.RoundConfig{Domain: "painting"}})
	if err == nil {
		t.Fatal("expected an error for an unknown domain")
	}
}

func TestNew_RendersFirstRound(t *testing.T) {
	s, _ := testQuiz(t, round.RoundConfig{Domain: round.DomainArithmetic, Operation: round.OpMul})

	if s.Title() != "Math: Times" {
		t.Errorf("Title = %q", s.Title())
	}
	if len(s.options) != 3 {
		t.Errorf("expected 3 options, got %d", len(s.options))
	}
	if s.done != 0 || s.total != round.DefaultTotalRounds {
		t.Errorf("progress = %d/%d", s.done, s.total)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, s.question.Prompt()) {
		t.Error("view should show the question")
	}
	if !strings.Contains(view, "Easy") {
		t.Error("view should show the level badge")
	}
}

func TestCorrectAnswer_AdvancesAfterDelay(t *testing.T) {
	s, cues := testQuiz(t, round.RoundConfig{Domain: round.DomainArithmetic})

	_, cmd := s.Update(components.OptionChosenMsg{Index: correctIndex(s)})
	if cmd == nil {
		t.Fatal("expected flash and advance commands")
	}
	if s.score != round.DefaultReward || s.Status() != "★ 10" {
		t.Errorf("score = %d, status %q", s.score, s.Status())
	}
	if cues.correct != 1 {
		t.Errorf("correct cue played %d times", cues.correct)
	}
	if !s.grid.Locked || !s.waiting {
		t.Error("grid should be locked until the next round")
	}

	// A second pick during the delay is ignored.
	s.Update(components.OptionChosenMsg{Index: 0})
	if s.score != round.DefaultReward {
		t.Errorf("score changed during the delay: %d", s.score)
	}

	s.Update(advanceMsg{gen: s.gen})
	if s.grid.Locked || s.waiting {
		t.Error("next round should be open")
	}
	if s.done != 1 {
		t.Errorf("done = %d, want 1", s.done)
	}
	if s.driver.Session().Phase() != round.PhaseAwaitingAnswer {
		t.Errorf("phase = %v", s.driver.Session().Phase())
	}
}

func TestWrongAnswer_ShakesThenUnlocks(t *testing.T) {
	s, cues := testQuiz(t, round.RoundConfig{Domain: round.DomainArithmetic, Operation: round.OpDiv})
	question := s.question
	wrong := wrongIndex(s)

	s.Update(components.OptionChosenMsg{Index: wrong})
	if cues.wrong != 1 {
		t.Errorf("wrong cue played %d times", cues.wrong)
	}
	if s.grid.MarkOf(wrong) != components.MarkWrong {
		t.Error("picked tile should be marked wrong")
	}
	if s.mistakes != 1 || s.score != 0 {
		t.Errorf("mistakes = %d, score = %d", s.mistakes, s.score)
	}

	for !s.anim.Done() {
		s.Update(anim.TickMsg{ID: s.animID})
	}
	if s.grid.Locked {
		t.Error("grid should unlock after the shake")
	}
	if s.grid.MarkOf(wrong) != components.MarkNone {
		t.Error("wrong mark should clear after the shake")
	}
	if s.question != question {
		t.Error("question should stay the same after a wrong answer")
	}
}

func TestWrongAnswer_QueuedPickIgnoredWhileLocked(t *testing.T) {
	s, cues := testQuiz(t, round.RoundConfig{Domain: round.DomainArithmetic, Operation: round.OpDiv})
	wrong := wrongIndex(s)

	s.Update(components.OptionChosenMsg{Index: wrong})
	if !s.grid.Locked {
		t.Fatal("grid should lock during the shake")
	}
	if _, cmd := s.Update(components.OptionChosenMsg{Index: wrong}); cmd != nil {
		t.Error("a pick while locked should do nothing")
	}
	if cues.wrong != 1 {
		t.Errorf("wrong cue played %d times, want 1", cues.wrong)
	}
	if got := s.driver.Session().State().Mistakes; got != 1 {
		t.Errorf("mistakes = %d, want 1", got)
	}

	for !s.anim.Done() {
		s.Update(anim.TickMsg{ID: s.animID})
	}
	s.Update(components.OptionChosenMsg{Index: wrong})
	if cues.wrong != 2 {
		t.Errorf("pick after the shake should count, wrong cues = %d", cues.wrong)
	}
}

func TestDigitKeyPicks(t *testing.T) {
	s, _ := testQuiz(t, round.RoundConfig{Domain: round.DomainCounting})

	_, cmd := s.Update(keyPress('2'))
	if cmd == nil {
		t.Fatal("expected a command from the digit key")
	}
	msg, ok := cmd().(components.OptionChosenMsg)
	if !ok || msg.Index != 1 {
		t.Errorf("got %#v, want OptionChosenMsg{Index: 1}", cmd())
	}
}

func TestCompletion_ShowsSummaryAndRestarts(t *testing.T) {
	s, _ := testQuiz(t, round.RoundConfig{Domain: round.DomainLetters, TotalRounds: 1})

	s.Update(components.OptionChosenMsg{Index: correctIndex(s)})
	if s.final == nil {
		t.Fatal("final state should be set after the last round")
	}

	_, cmd := s.Update(advanceMsg{gen: s.gen})
	if cmd == nil {
		t.Fatal("expected the summary")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	sum, ok := replace.Screen.(*summary.SummaryScreen)
	if !ok {
		t.Fatalf("expected summary screen, got %T", replace.Screen)
	}
	if !strings.Contains(sum.View(100, 30), "Score: 10") {
		t.Error("summary should show the final score")
	}

	// Play again puts a fresh game of the same kind back.
	_, cmd = sum.Update(keyPress('r'))
	again := cmd().(router.ReplaceScreenMsg).Screen
	if again != screen.Screen(s) {
		t.Fatalf("expected the quiz back, got %T", again)
	}
	if s.score != 0 || s.done != 0 || s.final != nil {
		t.Errorf("restart should reset: score %d done %d", s.score, s.done)
	}
	if s.driver.Session().Config().Domain != round.DomainLetters {
		t.Error("restart should keep the game settings")
	}
}

func TestStaleAdvanceIgnoredAfterRestart(t *testing.T) {
	s, _ := testQuiz(t, round.RoundConfig{Domain: round.DomainArithmetic})
	s.Update(components.OptionChosenMsg{Index: correctIndex(s)})
	stale := advanceMsg{gen: s.gen}

	s.restart()
	s.Update(stale)
	if s.driver.Session().Phase() != round.PhaseAwaitingAnswer || s.done != 0 {
		t.Error("a tick from the old game should not touch the new one")
	}
}

func TestQuitConfirm(t *testing.T) {
	s, _ := testQuiz(t, round.RoundConfig{Domain: round.DomainArithmetic})
	if s.HandlesEscape() {
		t.Error("an untouched game should let esc go back")
	}

	s.Update(components.OptionChosenMsg{Index: wrongIndex(s)})
	if !s.HandlesEscape() {
		t.Fatal("a started game should ask before leaving")
	}

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("esc should open the confirm dialog")
	}
	if !strings.Contains(s.View(100, 30), "Leave this game?") {
		t.Error("dialog should be visible")
	}
	if len(s.KeyHints()) != 2 {
		t.Errorf("dialog hints = %d, want 2", len(s.KeyHints()))
	}

	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Error("n should close the dialog")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("y should leave the game")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestCountingPicture(t *testing.T) {
	s, _ := testQuiz(t, round.RoundConfig{Domain: round.DomainCounting})
	pic := s.renderPicture()
	if got := strings.Count(pic, s.question.Item.Symbol); got != s.question.Count {
		t.Errorf("picture shows %d items, want %d", got, s.question.Count)
	}
}

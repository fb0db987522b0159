// Package quiz is the multiple-choice game screen shared by the math,
// counting and letter games.
package quiz

import (
	"fmt"
	"log"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/playroom/internal/content"
	"github.com/abhisek/playroom/internal/feedback"
	"github.com/abhisek/playroom/internal/play"
	"github.com/abhisek/playroom/internal/round"
	"github.com/abhisek/playroom/internal/router"
	"github.com/abhisek/playroom/internal/screen"
	"github.com/abhisek/playroom/internal/screens/notice"
	"github.com/abhisek/playroom/internal/screens/summary"
	"github.com/abhisek/playroom/internal/ui/anim"
	"github.com/abhisek/playroom/internal/ui/components"
	"github.com/abhisek/playroom/internal/ui/layout"
)

// Options configure a quiz.
type Options struct {
	Round        round.RoundConfig
	Catalog      *content.Catalog
	Cues         feedback.CuePlayer
	Source       round.Source
	AdvanceDelay time.Duration
}

// advanceMsg fires once the advance delay after a correct answer is over.
type advanceMsg struct {
	gen int
}

// QuizScreen plays one multiple-choice game. It is the Presenter for its
// own driver: the driver pushes state in and View draws it.
type QuizScreen struct {
	opts   Options
	driver *play.Driver

	question round.Question
	options  []round.Value
	score    int
	done     int
	total    int
	final    *round.SessionState
	mistakes int

	grid      components.OptionGrid
	anim      anim.Sequence
	animID    int
	buddyLine string
	waiting   bool
	gen       int

	confirmQuit bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.EscapeHandler = (*QuizScreen)(nil)
var _ play.Presenter = (*QuizScreen)(nil)

// New starts a game. It fails when the round config cannot be played.
func New(opts Options) (*QuizScreen, error) {
	if opts.Source == nil {
		opts.Source = round.NewSource(0)
	}
	s := &QuizScreen{opts: opts}

	var items []round.Item
	if opts.Catalog != nil {
		items = opts.Catalog.CountingItems
	}
	d, err := play.NewDriver(opts.Round, s, opts.Cues,
		round.WithSource(opts.Source),
		round.WithItems(items),
	)
	if err != nil {
		return nil, err
	}
	s.driver = d
	d.Start()
	return s, nil
}

// RenderQuestion implements play.Presenter.
func (s *QuizScreen) RenderQuestion(q round.Question) {
	s.question = q
	s.buddyLine = s.prompt(q.Domain)
}

// RenderOptions implements play.Presenter.
func (s *QuizScreen) RenderOptions(options []round.Value) {
	s.options = options
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = o.String()
	}
	s.grid = components.NewOptionGrid(labels)
	s.waiting = false
}

// RenderScore implements play.Presenter.
func (s *QuizScreen) RenderScore(score int) { s.score = score }

// RenderProgress implements play.Presenter.
func (s *QuizScreen) RenderProgress(done, total int) {
	s.done, s.total = done, total
}

// PromptRestartOrExit implements play.Presenter. The summary is shown once
// the last answer's advance delay is over.
func (s *QuizScreen) PromptRestartOrExit(final round.SessionState) {
	s.final = &final
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	cfg := s.driver.Session().Config()
	switch cfg.Domain {
	case round.DomainArithmetic:
		return "Math: " + cfg.Operation.DisplayName()
	case round.DomainCounting:
		return "Counting"
	case round.DomainLetters:
		return "Letters"
	default:
		return string(cfg.Domain)
	}
}

func (s *QuizScreen) Status() string {
	return fmt.Sprintf("★ %d", s.score)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave game"},
			{Key: "N", Description: "Keep playing"},
		}
	}
	return []layout.KeyHint{
		components.Hint(components.KeyLeft),
		components.Hint(components.KeyDigits),
		components.Hint(components.KeyEnter),
		{Key: "Esc", Description: "Back"},
	}
}

// HandlesEscape asks before leaving a game that has started.
func (s *QuizScreen) HandlesEscape() bool {
	if s.confirmQuit {
		return true
	}
	return s.final == nil && (s.done > 0 || s.mistakes > 0)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if s.confirmQuit {
			switch msg.String() {
			case "y", "Y":
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			case "n", "N", "esc":
				s.confirmQuit = false
			}
			return s, nil
		}
		if msg.String() == "esc" {
			s.confirmQuit = true
			return s, nil
		}
		var cmd tea.Cmd
		s.grid, cmd = s.grid.Update(msg)
		return s, cmd

	case components.OptionChosenMsg:
		return s, s.choose(msg.Index)

	case anim.TickMsg:
		var cmd tea.Cmd
		s.anim, cmd = s.anim.Update(msg)
		s.applyFrame()
		return s, cmd

	case advanceMsg:
		if msg.gen != s.gen {
			return s, nil
		}
		return s, s.advance()
	}
	return s, nil
}

func (s *QuizScreen) choose(i int) tea.Cmd {
	if s.waiting || s.grid.Locked || i < 0 || i >= len(s.options) {
		return nil
	}
	ev, err := s.driver.Select(s.options[i])
	if err != nil {
		log.Printf("quiz: select %s: %v", s.options[i], err)
		return nil
	}

	s.animID++
	s.grid.Locked = true
	s.buddyLine = s.cheer(ev.Correct())

	if !ev.Correct() {
		s.mistakes = ev.State.Mistakes
		s.grid = s.grid.Mark(i, components.MarkWrong)
		s.anim = anim.Shake(s.animID)
		s.applyFrame()
		return s.anim.Start()
	}

	s.waiting = true
	s.grid = s.grid.Mark(i, components.MarkCorrect)
	s.anim = anim.Flash(s.animID)
	s.applyFrame()
	gen := s.gen
	return tea.Batch(
		s.anim.Start(),
		tea.Tick(s.opts.AdvanceDelay, func(time.Time) tea.Msg { return advanceMsg{gen: gen} }),
	)
}

// applyFrame copies the animation frame onto the grid. A finished shake
// hands the grid back to the player.
func (s *QuizScreen) applyFrame() {
	f := s.anim.Frame()
	s.grid.Offset, s.grid.Lit = f.Offset, f.Lit
	if s.anim.Done() && !s.waiting {
		s.grid = s.grid.ClearMarks()
		s.grid.Locked = false
	}
}

func (s *QuizScreen) advance() tea.Cmd {
	if s.final != nil {
		res := summary.Result{
			Game:     s.Title(),
			Buddy:    s.buddy(),
			Score:    s.final.Score,
			Stars:    round.Stars(s.final.Score),
			Rounds:   s.final.RoundsCompleted,
			Mistakes: s.final.Mistakes,
		}
		next := summary.New(res, s.restart)
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	if err := s.driver.Advance(); err != nil {
		log.Printf("quiz: advance: %v", err)
	}
	return nil
}

// restart starts a fresh session with the same settings and puts this
// screen back on the stack.
func (s *QuizScreen) restart() screen.Screen {
	s.gen++
	s.animID++
	s.anim = anim.Sequence{}
	s.final = nil
	s.mistakes = 0
	s.confirmQuit = false
	if err := s.driver.Restart(); err != nil {
		log.Printf("quiz: restart: %v", err)
		return notice.New(s.Title(), err.Error())
	}
	return s
}

var levelIndex = map[round.Difficulty]int{round.Easy: 0, round.Medium: 1, round.Hard: 2}

func (s *QuizScreen) buddy() string {
	if s.opts.Catalog == nil {
		return "🙂"
	}
	return s.opts.Catalog.Buddy(levelIndex[s.driver.Session().Config().Difficulty])
}

func (s *QuizScreen) prompt(d round.Domain) string {
	if s.opts.Catalog == nil {
		return ""
	}
	return s.opts.Catalog.Prompt(d)
}

func (s *QuizScreen) cheer(correct bool) string {
	if s.opts.Catalog == nil {
		return ""
	}
	return s.opts.Catalog.Cheer(s.opts.Source, correct)
}

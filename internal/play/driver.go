// Package play connects a round.Session to whatever draws it.
package play

import (
	"fmt"
	"slices"

	"github.com/abhisek/playroom/internal/feedback"
	"github.com/abhisek/playroom/internal/round"
)

// Presenter is the drawing surface for a multiple-choice game.
type Presenter interface {
	RenderQuestion(q round.Question)
	RenderOptions(options []round.Value)
	RenderScore(score int)
	RenderProgress(done, total int)

	// PromptRestartOrExit hands control back once the game is complete.
	PromptRestartOrExit(final round.SessionState)
}

// Driver runs one game: it submits picks, plays cues and tells the
// Presenter what changed.
type Driver struct {
	cfg     round.RoundConfig
	opts    []round.Option
	view    Presenter
	session *round.Session
}

// NewDriver starts a session for cfg. Every answer plays a cue on cues and
// is logged.
func NewDriver(cfg round.RoundConfig, view Presenter, cues feedback.CuePlayer, opts ...round.Option) (*Driver, error) {
	if cues == nil {
		cues = feedback.Silent{}
	}
	opts = append(slices.Clone(opts), round.WithObserver(feedback.Observer(cues)))

	d := &Driver{cfg: cfg, opts: opts, view: view}
	if err := d.newSession(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Driver) newSession() error {
	s, err := round.NewSession(d.cfg, d.opts...)
	if err != nil {
		return fmt.Errorf("start %s session: %w", d.cfg.Domain, err)
	}
	d.session = s
	d.session.Observe(feedback.LogObserver(s.ID()))
	return nil
}

// Session returns the running session.
func (d *Driver) Session() *round.Session { return d.session }

// Start renders the first round.
func (d *Driver) Start() {
	d.renderRound()
	d.renderStatus()
}

// Select submits v. The returned event tells the caller whether to run
// the advance delay; on the last round the Presenter is prompted instead.
func (d *Driver) Select(v round.Value) (round.Event, error) {
	ev, err := d.session.Submit(v)
	if err != nil {
		return round.Event{}, err
	}
	d.renderStatus()
	if ev.Complete {
		d.view.PromptRestartOrExit(ev.State)
	}
	return ev, nil
}

// Advance shows the round prepared by the last correct answer.
func (d *Driver) Advance() error {
	if err := d.session.Advance(); err != nil {
		return err
	}
	d.renderRound()
	return nil
}

// Restart throws the session away and starts over with the same settings.
func (d *Driver) Restart() error {
	if err := d.newSession(); err != nil {
		return err
	}
	d.Start()
	return nil
}

func (d *Driver) renderRound() {
	d.view.RenderQuestion(d.session.Question())
	d.view.RenderOptions(d.session.Options())
}

func (d *Driver) renderStatus() {
	st := d.session.State()
	d.view.RenderScore(st.Score)
	d.view.RenderProgress(st.RoundsCompleted, st.TotalRounds)
}

// Package feedback plays the "correct" and "wrong" cues. A cue that fails
// to play is logged and otherwise ignored.
package feedback

import (
	"io"
	"log"
	"sync"

	"github.com/abhisek/playroom/internal/config"
	"github.com/abhisek/playroom/internal/round"
)

// CuePlayer plays short feedback sounds.
type CuePlayer interface {
	PlayCorrect()
	PlayWrong()
}

// Bell rings the terminal bell: once for correct, twice for wrong.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell returns a Bell writing to w, normally os.Stderr.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) PlayCorrect() { b.ring("correct", "\a") }
func (b *Bell) PlayWrong()   { b.ring("wrong", "\a\a") }

func (b *Bell) ring(cue, seq string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := io.WriteString(b.w, seq); err != nil {
		log.Printf("feedback: %s cue failed: %v", cue, err)
	}
}

// Silent plays nothing.
type Silent struct{}

func (Silent) PlayCorrect() {}
func (Silent) PlayWrong()   {}

// New returns the cue player selected by sound.
func New(sound config.Sound, w io.Writer) CuePlayer {
	if sound == config.SoundOff || w == nil {
		return Silent{}
	}
	return NewBell(w)
}

// Observer returns a session observer that plays the cue for each answer.
func Observer(p CuePlayer) func(round.Event) {
	return func(ev round.Event) {
		if ev.Correct() {
			p.PlayCorrect()
			return
		}
		p.PlayWrong()
	}
}

// LogObserver returns a session observer that writes one log line per answer.
func LogObserver(sessionID string) func(round.Event) {
	return func(ev round.Event) {
		log.Printf("session %s: %q answered %s (%s), score %d, round %d/%d",
			sessionID, ev.Answered.Prompt(), ev.Selected, ev.Outcome,
			ev.State.Score, ev.State.RoundsCompleted, ev.State.TotalRounds)
		if ev.Complete {
			log.Printf("session %s: complete with %d stars, %d mistakes",
				sessionID, round.Stars(ev.State.Score), ev.State.Mistakes)
		}
	}
}

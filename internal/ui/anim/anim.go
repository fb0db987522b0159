// Package anim drives short frame sequences, such as the shake on a wrong
// answer, from tea.Tick.
package anim

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// Frame is one step of a sequence.
type Frame struct {
	// Offset shifts the animated element sideways, in cells.
	Offset int
	Lit    bool
}

// TickMsg advances the sequence with the matching ID.
type TickMsg struct {
	ID int
}

// Sequence plays its frames one interval apart. The zero value is done.
type Sequence struct {
	ID       int
	frames   []Frame
	interval time.Duration
	pos      int
}

// New builds a sequence. Owners pick a fresh id for every sequence so
// ticks from an abandoned one are ignored.
func New(id int, interval time.Duration, frames ...Frame) Sequence {
	return Sequence{ID: id, frames: frames, interval: interval}
}

// Shake wobbles left and right for 600ms.
func Shake(id int) Sequence {
	return New(id, 100*time.Millisecond,
		Frame{Offset: -1}, Frame{Offset: 1}, Frame{Offset: -1},
		Frame{Offset: 1}, Frame{Offset: -1}, Frame{},
	)
}

// Flash blinks three times.
func Flash(id int) Sequence {
	return New(id, 150*time.Millisecond,
		Frame{Lit: true}, Frame{}, Frame{Lit: true},
		Frame{}, Frame{Lit: true}, Frame{},
	)
}

// Start schedules the first tick. It returns nil for an empty sequence.
func (s Sequence) Start() tea.Cmd {
	if s.Done() {
		return nil
	}
	return s.tick()
}

func (s Sequence) tick() tea.Cmd {
	id := s.ID
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id}
	})
}

// Update moves to the next frame on a matching tick.
func (s Sequence) Update(msg TickMsg) (Sequence, tea.Cmd) {
	if msg.ID != s.ID || s.Done() {
		return s, nil
	}
	s.pos++
	if s.Done() {
		return s, nil
	}
	return s, s.tick()
}

// Frame returns the frame on show, or the zero Frame once done.
func (s Sequence) Frame() Frame {
	if s.Done() {
		return Frame{}
	}
	return s.frames[s.pos]
}

// Done reports whether every frame has played.
func (s Sequence) Done() bool { return s.pos >= len(s.frames) }

// Duration is the total play time.
func (s Sequence) Duration() time.Duration {
	return time.Duration(len(s.frames)) * s.interval
}

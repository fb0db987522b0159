package round

import (
	"maps"
	"slices"

	"github.com/google/uuid"
)

// Phase is where a session sits in the round cycle.
type Phase int

const (
	PhaseAwaitingAnswer Phase = iota // Question shown, waiting for a pick
	PhaseAdvancing                   // Answered correctly, next round prepared
	PhaseComplete                    // All rounds done
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAnswer:
		return "awaiting-answer"
	case PhaseAdvancing:
		return "advancing"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Outcome discriminates an Event.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeIncorrect
)

func (o Outcome) String() string {
	if o == OutcomeCorrect {
		return "correct"
	}
	return "incorrect"
}

// SessionState is the score and progress of one play-through.
type SessionState struct {
	Score           int
	RoundsCompleted int
	TotalRounds     int
	Mistakes        int

	// UsedValues holds the letter targets already asked (LetterMatch only).
	UsedValues map[Value]bool
}

func (s SessionState) clone() SessionState {
	s.UsedValues = maps.Clone(s.UsedValues)
	return s
}

// Event is emitted for every submitted answer.
type Event struct {
	Outcome  Outcome
	Selected Value
	Answered Question
	Points   int
	State    SessionState
	Complete bool
}

// Correct reports whether the event is a correct answer.
func (e Event) Correct() bool { return e.Outcome == OutcomeCorrect }

// pending is a prepared round.
type pending struct {
	question Question
	options  []Value
}

// Session runs the rounds of one game. It is owned by a single screen
// and is not safe for concurrent use.
type Session struct {
	id        string
	cfg       RoundConfig
	src       Source
	gen       *Generator
	state     SessionState
	phase     Phase
	current   pending
	next      *pending
	observers []func(Event)
}

type sessionOptions struct {
	id        string
	src       Source
	items     []Item
	observers []func(Event)
}

// Option customizes NewSession.
type Option func(*sessionOptions)

// WithSource sets the random source. The default is seeded from the clock.
func WithSource(src Source) Option {
	return func(o *sessionOptions) { o.src = src }
}

// WithItems sets the things to count in a Counting session.
func WithItems(items []Item) Option {
	return func(o *sessionOptions) { o.items = items }
}

// WithObserver registers fn to receive every Event after state is updated.
func WithObserver(fn func(Event)) Option {
	return func(o *sessionOptions) { o.observers = append(o.observers, fn) }
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(o *sessionOptions) { o.id = id }
}

// NewSession validates cfg and prepares the first round.
func NewSession(cfg RoundConfig, opts ...Option) (*Session, error) {
	o := sessionOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = NewSource(0)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}

	cfg = cfg.WithDefaults()
	gen, err := NewGenerator(cfg, o.src, o.items)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:  o.id,
		cfg: cfg,
		src: o.src,
		gen: gen,
		state: SessionState{
			TotalRounds: cfg.TotalRounds,
			UsedValues:  make(map[Value]bool),
		},
		phase:     PhaseAwaitingAnswer,
		observers: o.observers,
	}

	first, err := s.prepare()
	if err != nil {
		return nil, err
	}
	s.current = first
	return s, nil
}

func (s *Session) prepare() (pending, error) {
	q, err := s.gen.Next(s.state.UsedValues)
	if err != nil {
		return pending{}, err
	}
	opts, err := BuildOptions(s.src, q.Answer, s.cfg.OptionCount, s.gen.Strategy(q))
	if err != nil {
		return pending{}, err
	}
	return pending{question: q, options: opts}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Config returns the effective configuration, defaults applied.
func (s *Session) Config() RoundConfig { return s.cfg }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Question returns the question on screen.
func (s *Session) Question() Question { return s.current.question }

// Options returns a copy of the answer choices on screen.
func (s *Session) Options() []Value { return slices.Clone(s.current.options) }

// State returns a snapshot of score and progress.
func (s *Session) State() SessionState { return s.state.clone() }

// Stars returns the star rating for the current score.
func (s *Session) Stars() int { return Stars(s.state.Score) }

// Submit checks selected against the current answer.
//
// A correct answer scores the reward and counts the round. If rounds
// remain the next round is prepared and the session waits in
// PhaseAdvancing until Advance; otherwise it becomes PhaseComplete. A wrong
// answer only records a mistake, and the same question stays up.
func (s *Session) Submit(selected Value) (Event, error) {
	switch s.phase {
	case PhaseComplete:
		return Event{}, ErrSessionComplete
	case PhaseAdvancing:
		return Event{}, ErrNotAwaitingAnswer
	}

	answered := s.current.question
	if selected != answered.Answer {
		s.state.Mistakes++
		return s.emit(Event{
			Outcome:  OutcomeIncorrect,
			Selected: selected,
			Answered: answered,
		}), nil
	}

	complete := s.state.RoundsCompleted+1 >= s.state.TotalRounds
	if !complete {
		// Prepare before mutating so a failure leaves the round intact.
		next, err := s.prepare()
		if err != nil {
			return Event{}, err
		}
		s.next = &next
		s.phase = PhaseAdvancing
	} else {
		s.phase = PhaseComplete
	}

	s.state.Score += s.cfg.Reward
	s.state.RoundsCompleted++

	return s.emit(Event{
		Outcome:  OutcomeCorrect,
		Selected: selected,
		Answered: answered,
		Points:   s.cfg.Reward,
		Complete: complete,
	}), nil
}

// Advance moves from PhaseAdvancing to the prepared round.
func (s *Session) Advance() error {
	if s.phase != PhaseAdvancing || s.next == nil {
		return ErrNotAdvancing
	}
	s.current = *s.next
	s.next = nil
	s.phase = PhaseAwaitingAnswer
	return nil
}

// Observe registers fn to receive every later Event.
func (s *Session) Observe(fn func(Event)) {
	s.observers = append(s.observers, fn)
}

func (s *Session) emit(ev Event) Event {
	ev.State = s.state.clone()
	for _, fn := range s.observers {
		fn(ev)
	}
	return ev
}

// Stars converts a score into a 0–3 star rating.
func Stars(score int) int {
	switch {
	case score >= 80:
		return 3
	case score >= 50:
		return 2
	case score >= 20:
		return 1
	default:
		return 0
	}
}

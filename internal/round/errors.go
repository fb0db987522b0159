package round

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAwaitingAnswer is returned by Submit while the session is
	// between rounds.
	ErrNotAwaitingAnswer = errors.New("round: not awaiting an answer")

	// ErrNotAdvancing is returned by Advance when no next round is pending.
	ErrNotAdvancing = errors.New("round: no round pending")

	// ErrSessionComplete is returned by Submit once every round is done.
	ErrSessionComplete = errors.New("round: session complete")

	// ErrDecoysExhausted means the option builder gave up looking for
	// distinct decoys.
	ErrDecoysExhausted = errors.New("round: could not find enough distinct decoys")
)

// ConfigError reports a RoundConfig that cannot start a session.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

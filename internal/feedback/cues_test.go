package feedback

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/playroom/internal/config"
	"github.com/abhisek/playroom/internal/round"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("no terminal") }

// captureLog redirects the standard logger for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestBell_Rings(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)
	b.PlayCorrect()
	assert.Equal(t, "\a", buf.String())
	b.PlayWrong()
	assert.Equal(t, "\a\a\a", buf.String())
}

func TestBell_FailureIsLogged(t *testing.T) {
	logs := captureLog(t)
	b := NewBell(failingWriter{})

	assert.NotPanics(t, b.PlayWrong)
	assert.Contains(t, logs.String(), "feedback: wrong cue failed: no terminal")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	assert.IsType(t, Silent{}, New(config.SoundOff, &buf))
	assert.IsType(t, Silent{}, New(config.SoundBell, nil))
	assert.IsType(t, &Bell{}, New(config.SoundBell, &buf))
}

type recorder struct{ calls []string }

func (r *recorder) PlayCorrect() { r.calls = append(r.calls, "correct") }
func (r *recorder) PlayWrong()   { r.calls = append(r.calls, "wrong") }

func TestObserver_PlaysCueForEachAnswer(t *testing.T) {
	rec := &recorder{}
	s, err := round.NewSession(
		round.RoundConfig{Domain: round.DomainCounting, TotalRounds: 2},
		round.WithSource(round.NewSource(9)),
		round.WithObserver(Observer(rec)),
	)
	require.NoError(t, err)

	_, err = s.Submit(round.Number(-1))
	require.NoError(t, err)
	_, err = s.Submit(s.Question().Answer)
	require.NoError(t, err)

	assert.Equal(t, []string{"wrong", "correct"}, rec.calls)
}

func TestLogObserver(t *testing.T) {
	logs := captureLog(t)
	s, err := round.NewSession(
		round.RoundConfig{Domain: round.DomainLetters, TotalRounds: 1},
		round.WithSource(round.NewSource(9)),
		round.WithID("abc"),
		round.WithObserver(LogObserver("abc")),
	)
	require.NoError(t, err)

	_, err = s.Submit(s.Question().Answer)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "session abc:")
	assert.Contains(t, lines[0], "(correct), score 10, round 1/1")
	assert.Contains(t, lines[1], "complete with 0 stars, 0 mistakes")
}

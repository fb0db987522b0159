package play

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/playroom/internal/round"
)

// fakeView records every call as a short string.
type fakeView struct {
	calls    []string
	question round.Question
	options  []round.Value
	final    *round.SessionState
}

func (f *fakeView) RenderQuestion(q round.Question) {
	f.question = q
	f.calls = append(f.calls, "question")
}

func (f *fakeView) RenderOptions(options []round.Value) {
	f.options = options
	f.calls = append(f.calls, fmt.Sprintf("options:%d", len(options)))
}

func (f *fakeView) RenderScore(score int) {
	f.calls = append(f.calls, fmt.Sprintf("score:%d", score))
}

func (f *fakeView) RenderProgress(done, total int) {
	f.calls = append(f.calls, fmt.Sprintf("progress:%d/%d", done, total))
}

func (f *fakeView) PromptRestartOrExit(final round.SessionState) {
	f.final = &final
	f.calls = append(f.calls, "prompt")
}

type countingCues struct{ correct, wrong int }

func (c *countingCues) PlayCorrect() { c.correct++ }
func (c *countingCues) PlayWrong()   { c.wrong++ }

func newTestDriver(t *testing.T, cfg round.RoundConfig) (*Driver, *fakeView, *countingCues) {
	t.Helper()
	view := &fakeView{}
	cues := &countingCues{}
	d, err := NewDriver(cfg, view, cues, round.WithSource(round.NewSource(5)))
	require.NoError(t, err)
	return d, view, cues
}

func TestDriver_StartRendersFirstRound(t *testing.T) {
	d, view, _ := newTestDriver(t, round.RoundConfig{Domain: round.DomainCounting})
	d.Start()

	assert.Equal(t, []string{"question", "options:4", "score:0", "progress:0/10"}, view.calls)
	assert.Equal(t, d.Session().Question(), view.question)
	assert.Contains(t, view.options, view.question.Answer)
}

func TestDriver_WrongThenRight(t *testing.T) {
	d, view, cues := newTestDriver(t, round.RoundConfig{Domain: round.DomainArithmetic, Operation: round.OpMul})
	d.Start()
	view.calls = nil

	ev, err := d.Select(round.Number(-7))
	require.NoError(t, err)
	assert.False(t, ev.Correct())
	assert.Equal(t, 1, cues.wrong)
	assert.Equal(t, []string{"score:0", "progress:0/10"}, view.calls)

	view.calls = nil
	first := view.question
	ev, err = d.Select(first.Answer)
	require.NoError(t, err)
	assert.True(t, ev.Correct())
	assert.Equal(t, 1, cues.correct)
	assert.Equal(t, []string{"score:10", "progress:1/10"}, view.calls)

	view.calls = nil
	require.NoError(t, d.Advance())
	assert.Equal(t, []string{"question", "options:3"}, view.calls)
}

func TestDriver_CompletionPromptsOnce(t *testing.T) {
	d, view, cues := newTestDriver(t, round.RoundConfig{Domain: round.DomainLetters, TotalRounds: 3})
	d.Start()

	for i := 0; i < 3; i++ {
		ev, err := d.Select(view.question.Answer)
		require.NoError(t, err)
		if !ev.Complete {
			require.NoError(t, d.Advance())
		}
	}

	require.NotNil(t, view.final)
	assert.Equal(t, 30, view.final.Score)
	assert.Equal(t, 3, cues.correct)

	prompts := 0
	for _, c := range view.calls {
		if c == "prompt" {
			prompts++
		}
	}
	assert.Equal(t, 1, prompts)

	_, err := d.Select(view.question.Answer)
	assert.ErrorIs(t, err, round.ErrSessionComplete)
}

func TestDriver_RestartStartsFresh(t *testing.T) {
	d, view, _ := newTestDriver(t, round.RoundConfig{Domain: round.DomainCounting, TotalRounds: 1})
	d.Start()
	oldID := d.Session().ID()

	_, err := d.Select(view.question.Answer)
	require.NoError(t, err)
	require.Equal(t, round.PhaseComplete, d.Session().Phase())

	view.calls = nil
	require.NoError(t, d.Restart())
	assert.NotEqual(t, oldID, d.Session().ID())
	assert.Equal(t, round.PhaseAwaitingAnswer, d.Session().Phase())
	assert.Equal(t, []string{"question", "options:4", "score:0", "progress:0/1"}, view.calls)
}

func TestNewDriver_BadConfig(t *testing.T) {
	_, err := NewDriver(round.RoundConfig{Domain: "chess"}, &fakeView{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start chess session")
}

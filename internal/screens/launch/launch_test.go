package launch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/playroom/internal/config"
	"github.com/abhisek/playroom/internal/content"
	"github.com/abhisek/playroom/internal/feedback"
	"github.com/abhisek/playroom/internal/round"
	"github.com/abhisek/playroom/internal/screens/adventure"
	"github.com/abhisek/playroom/internal/screens/basket"
	"github.com/abhisek/playroom/internal/screens/levelpick"
	"github.com/abhisek/playroom/internal/screens/notice"
	"github.com/abhisek/playroom/internal/screens/quiz"
)

func testDeps(t *testing.T) Deps {
	t.Helper()
	cat, err := content.Load()
	require.NoError(t, err)
	cfg, err := config.LoadFromMap(map[string]string{"PLAYROOM_ROUNDS": "3"})
	require.NoError(t, err)
	return Deps{Config: cfg, Catalog: cat, Cues: feedback.Silent{}, Source: round.NewSource(1)}
}

func TestParseGame(t *testing.T) {
	g, err := ParseGame(" Letters ")
	require.NoError(t, err)
	assert.Equal(t, GameLetters, g)

	_, err = ParseGame("chess")
	var cerr *round.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "game", cerr.Field)
}

func TestRoundConfig(t *testing.T) {
	d := testDeps(t)
	p := config.Params{Operation: round.OpSub, Difficulty: round.Hard}

	cfg := d.RoundConfig(round.DomainArithmetic, p)
	assert.Equal(t, round.RoundConfig{Domain: round.DomainArithmetic, Operation: round.OpSub, Difficulty: round.Hard, TotalRounds: 3}, cfg)

	cfg = d.RoundConfig(round.DomainCounting, p)
	assert.Empty(t, cfg.Operation, "only math carries an operation")
}

func TestScreen_PerGame(t *testing.T) {
	d := testDeps(t)
	p := config.Params{Operation: round.OpAdd, Difficulty: round.Easy}

	assert.IsType(t, &levelpick.LevelPickScreen{}, d.Screen(GameMath, p, false))
	assert.IsType(t, &quiz.QuizScreen{}, d.Screen(GameCounting, p, true))
	assert.IsType(t, &basket.BasketScreen{}, d.Screen(GameBasket, p, false))
	assert.IsType(t, &adventure.AdventureScreen{}, d.Screen(GameAdventure, p, true))
}

func TestQuiz_BadConfigShowsNotice(t *testing.T) {
	d := testDeps(t)
	s := d.Quiz(round.DomainArithmetic, config.Params{Operation: "pow", Difficulty: round.Easy})
	assert.IsType(t, &notice.NoticeScreen{}, s)
}

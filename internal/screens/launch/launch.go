// Package launch builds game screens from the shared app dependencies.
package launch

import (
	"fmt"
	"strings"

	"github.com/abhisek/playroom/internal/config"
	"github.com/abhisek/playroom/internal/content"
	"github.com/abhisek/playroom/internal/feedback"
	"github.com/abhisek/playroom/internal/round"
	"github.com/abhisek/playroom/internal/screen"
	"github.com/abhisek/playroom/internal/screens/adventure"
	"github.com/abhisek/playroom/internal/screens/basket"
	"github.com/abhisek/playroom/internal/screens/levelpick"
	"github.com/abhisek/playroom/internal/screens/notice"
	"github.com/abhisek/playroom/internal/screens/quiz"
)

// Game names a mini-game.
type Game string

const (
	GameMath      Game = "math"
	GameCounting  Game = "counting"
	GameLetters   Game = "letters"
	GameBasket    Game = "basket"
	GameAdventure Game = "adventure"
)

// Games lists every game in menu order.
var Games = []Game{GameMath, GameCounting, GameLetters, GameBasket, GameAdventure}

// ParseGame resolves a game name, ignoring case.
func ParseGame(s string) (Game, error) {
	g := Game(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Games {
		if g == known {
			return g, nil
		}
	}
	return "", &round.ConfigError{Field: "game", Value: s, Reason: "want math, counting, letters, basket or adventure"}
}

// Domain returns the round domain of a quiz game.
func (g Game) Domain() (round.Domain, bool) {
	switch g {
	case GameMath:
		return round.DomainArithmetic, true
	case GameCounting:
		return round.DomainCounting, true
	case GameLetters:
		return round.DomainLetters, true
	}
	return "", false
}

// Deps are what every game screen needs.
type Deps struct {
	Config  config.Config
	Catalog *content.Catalog
	Cues    feedback.CuePlayer
	Source  round.Source
}

// RoundConfig is the session config for a quiz in domain.
func (d Deps) RoundConfig(domain round.Domain, p config.Params) round.RoundConfig {
	cfg := round.RoundConfig{
		Domain:      domain,
		Difficulty:  p.Difficulty,
		TotalRounds: d.Config.Rounds,
	}
	if domain == round.DomainArithmetic {
		cfg.Operation = p.Operation
	}
	return cfg
}

// Quiz starts a multiple-choice game. A config that cannot be played
// gives a notice screen instead.
func (d Deps) Quiz(domain round.Domain, p config.Params) screen.Screen {
	s, err := quiz.New(quiz.Options{
		Round:        d.RoundConfig(domain, p),
		Catalog:      d.Catalog,
		Cues:         d.Cues,
		Source:       d.Source,
		AdvanceDelay: d.Config.AdvanceDelay,
	})
	if err != nil {
		return notice.New(string(domain), fmt.Sprintf("This game could not start:\n%v", err))
	}
	return s
}

// Picker lets the child choose the level, then starts the quiz.
func (d Deps) Picker(domain round.Domain, initial config.Params) screen.Screen {
	return levelpick.New(domain, initial, func(p config.Params) screen.Screen {
		return d.Quiz(domain, p)
	})
}

func (d Deps) Basket() screen.Screen {
	return basket.New(basket.Options{
		Catalog:      d.Catalog,
		Cues:         d.Cues,
		Source:       d.Source,
		AdvanceDelay: d.Config.AdvanceDelay,
	})
}

func (d Deps) Adventure() screen.Screen {
	return adventure.New(adventure.Options{
		Catalog:      d.Catalog,
		Cues:         d.Cues,
		Source:       d.Source,
		AdvanceDelay: d.Config.AdvanceDelay,
	})
}

// Screen returns the first screen of g. Quiz games open the picker unless
// direct is set, in which case p is used as is.
func (d Deps) Screen(g Game, p config.Params, direct bool) screen.Screen {
	if domain, ok := g.Domain(); ok {
		if direct {
			return d.Quiz(domain, p)
		}
		return d.Picker(domain, p)
	}
	if g == GameBasket {
		return d.Basket()
	}
	return d.Adventure()
}

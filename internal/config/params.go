package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/playroom/internal/round"
)

const (
	DefaultOperation  = round.OpAdd
	DefaultDifficulty = round.Easy
)

// levelAliases maps the letter game's level names onto difficulties.
var levelAliases = map[string]round.Difficulty{
	"uppercase": round.Easy,
	"lowercase": round.Medium,
	"mixed":     round.Hard,
}

// Request is the raw op/level input. Query is a URL-style string such as
// "op=sub&level=hard"; its values win over Op and Level.
type Request struct {
	Query string
	Op    string
	Level string
}

// Fallback records a parameter that was missing or not understood and the
// default used instead.
type Fallback struct {
	Key     string
	Given   string
	Default string
}

func (f Fallback) String() string {
	if f.Given == "" {
		return fmt.Sprintf("%s not set, using %q", f.Key, f.Default)
	}
	return fmt.Sprintf("%s %q not recognized, using %q", f.Key, f.Given, f.Default)
}

// Params are resolved game parameters.
type Params struct {
	Operation  round.Operation
	Difficulty round.Difficulty
	Fallbacks  []Fallback
}

// ParseParams resolves r. Missing or unrecognized values fall back to the
// defaults and are listed in Fallbacks. With strict set, an unrecognized
// value is a *round.ConfigError instead; missing values still default.
func ParseParams(r Request, strict bool) (Params, error) {
	op, level := strings.TrimSpace(r.Op), strings.TrimSpace(r.Level)
	if q := strings.TrimPrefix(strings.TrimSpace(r.Query), "?"); q != "" {
		values, err := url.ParseQuery(q)
		if err != nil {
			return Params{}, &round.ConfigError{Field: "params", Value: r.Query, Reason: err.Error()}
		}
		if values.Has("op") {
			op = strings.TrimSpace(values.Get("op"))
		}
		if values.Has("level") {
			level = strings.TrimSpace(values.Get("level"))
		}
	}

	p := Params{Operation: DefaultOperation, Difficulty: DefaultDifficulty}

	if parsed, ok := parseOperation(op); ok {
		p.Operation = parsed
	} else {
		if strict && op != "" {
			return Params{}, &round.ConfigError{Field: "op", Value: op, Reason: "want add, sub, mul or div"}
		}
		p.Fallbacks = append(p.Fallbacks, Fallback{Key: "op", Given: op, Default: string(DefaultOperation)})
	}

	if parsed, ok := parseLevel(level); ok {
		p.Difficulty = parsed
	} else {
		if strict && level != "" {
			return Params{}, &round.ConfigError{Field: "level", Value: level, Reason: "want easy, medium or hard"}
		}
		p.Fallbacks = append(p.Fallbacks, Fallback{Key: "level", Given: level, Default: string(DefaultDifficulty)})
	}

	return p, nil
}

func parseOperation(s string) (round.Operation, bool) {
	switch op := round.Operation(strings.ToLower(s)); op {
	case round.OpAdd, round.OpSub, round.OpMul, round.OpDiv:
		return op, true
	}
	return "", false
}

func parseLevel(s string) (round.Difficulty, bool) {
	s = strings.ToLower(s)
	switch d := round.Difficulty(s); d {
	case round.Easy, round.Medium, round.Hard:
		return d, true
	}
	d, ok := levelAliases[s]
	return d, ok
}

// LevelBadge is the label shown on the level badge. The letter game names
// its levels after the alphabet it uses.
func LevelBadge(domain round.Domain, d round.Difficulty) string {
	name := string(d)
	if domain == round.DomainLetters {
		for alias, level := range levelAliases {
			if level == d {
				name = alias
			}
		}
	}
	return cases.Title(language.English).String(name)
}

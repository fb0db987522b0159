// Package config reads Playroom settings from PLAYROOM_* environment
// variables and resolves the op/level game parameters.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/playroom/internal/round"
)

// Sound selects the cue player.
type Sound string

const (
	SoundBell Sound = "bell"
	SoundOff  Sound = "off"
)

// Config is the process-wide configuration. Command-line flags override
// whatever the environment provides.
type Config struct {
	Sound        Sound         `env:"PLAYROOM_SOUND"         envDefault:"bell"`
	LogFile      string        `env:"PLAYROOM_LOG"`
	Rounds       int           `env:"PLAYROOM_ROUNDS"        envDefault:"10"`
	AdvanceDelay time.Duration `env:"PLAYROOM_ADVANCE_DELAY" envDefault:"1s"`

	// Seed fixes the random source. Zero seeds from the clock.
	Seed uint64 `env:"PLAYROOM_SEED"`
}

// LoadFromEnv parses the process environment.
func LoadFromEnv() (Config, error) {
	return load(env.Options{})
}

// LoadFromMap parses vars as if they were the environment.
func LoadFromMap(vars map[string]string) (Config, error) {
	return load(env.Options{Environment: vars})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no game can run with.
func (c Config) Validate() error {
	switch c.Sound {
	case SoundBell, SoundOff:
	default:
		return &round.ConfigError{Field: "PLAYROOM_SOUND", Value: string(c.Sound), Reason: "want bell or off"}
	}
	if c.Rounds < 1 {
		return &round.ConfigError{Field: "PLAYROOM_ROUNDS", Value: strconv.Itoa(c.Rounds), Reason: "must be at least 1"}
	}
	if c.AdvanceDelay < 0 {
		return &round.ConfigError{Field: "PLAYROOM_ADVANCE_DELAY", Value: c.AdvanceDelay.String(), Reason: "must not be negative"}
	}
	return nil
}

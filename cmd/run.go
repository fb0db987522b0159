package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/playroom/internal/app"
	"github.com/abhisek/playroom/internal/config"
	"github.com/abhisek/playroom/internal/content"
	"github.com/abhisek/playroom/internal/feedback"
	"github.com/abhisek/playroom/internal/round"
	"github.com/abhisek/playroom/internal/screen"
	"github.com/abhisek/playroom/internal/screens/launch"
)

// cueOutput takes the bell. The renderer owns stdout.
var cueOutput io.Writer = os.Stderr

// runApp loads the configuration, builds dependencies, and launches the
// TUI. start picks the screen to open on top of home; nil shows the
// welcome screen.
func runApp(cmd *cobra.Command, start func(launch.Deps) screen.Screen) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	catalog, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	deps := launch.Deps{
		Config:  cfg,
		Catalog: catalog,
		Cues:    feedback.New(cfg.Sound, cueOutput),
		Source:  round.NewSource(cfg.Seed),
	}
	log.Printf("playroom %s starting: sound=%s rounds=%d seed=%d", version, cfg.Sound, cfg.Rounds, cfg.Seed)

	return app.Run(app.Options{Deps: deps, Start: start(deps)})
}

// loadConfig reads PLAYROOM_* from the environment and applies any flags
// the user set on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log") {
		cfg.LogFile, _ = flags.GetString("log")
	}
	if flags.Changed("sound") {
		s, _ := flags.GetString("sound")
		cfg.Sound = config.Sound(s)
	}
	if flags.Changed("rounds") {
		cfg.Rounds, _ = flags.GetInt("rounds")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// setupLogging sends the standard logger to path. Without a path logging is
// discarded so nothing scribbles over the TUI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "playroom")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { f.Close() }, nil
}

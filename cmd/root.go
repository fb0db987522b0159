package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/playroom/internal/screen"
	"github.com/abhisek/playroom/internal/screens/launch"
)

var rootCmd = &cobra.Command{
	Use:   "playroom",
	Short: "Mini-games for little learners",
	Long:  "Playroom is a terminal playroom of counting, letter and arithmetic games for young children.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, func(launch.Deps) screen.Screen { return nil })
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addConfigFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(versionCmd)
}

// addConfigFlags registers the flags that override PLAYROOM_* settings.
func addConfigFlags(c *cobra.Command) {
	flags := c.PersistentFlags()
	flags.String("log", "", "Write a debug log to this file (overrides PLAYROOM_LOG)")
	flags.String("sound", "", "Sound cues: bell or off (overrides PLAYROOM_SOUND)")
	flags.Int("rounds", 0, "Rounds per quiz game (overrides PLAYROOM_ROUNDS)")
	flags.Uint64("seed", 0, "Seed for repeatable games (overrides PLAYROOM_SEED)")
}

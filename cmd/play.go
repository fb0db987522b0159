package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/abhisek/playroom/internal/config"
	"github.com/abhisek/playroom/internal/screen"
	"github.com/abhisek/playroom/internal/screens/launch"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Jump straight into a game",
	Long: `Start one game without going through the menu.

Quiz games (math, counting, letters) take their op and level from --op and
--level, or from --params as a URL-style query such as "op=sub&level=hard".`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: lo.Map(launch.Games, func(g launch.Game, _ int) string { return string(g) }),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := launch.ParseGame(args[0])
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		op, _ := flags.GetString("op")
		level, _ := flags.GetString("level")
		query, _ := flags.GetString("params")
		strict, _ := flags.GetBool("strict")

		p, err := resolveParams(config.Request{Query: query, Op: op, Level: level}, strict, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		return runApp(cmd, func(d launch.Deps) screen.Screen {
			logFallbacks(p.Fallbacks)
			return d.Screen(g, p, true)
		})
	},
}

// resolveParams parses r and warns on w about every value that was given
// but not understood. Missing values default quietly.
func resolveParams(r config.Request, strict bool, w io.Writer) (config.Params, error) {
	p, err := config.ParseParams(r, strict)
	if err != nil {
		return config.Params{}, err
	}
	for _, f := range p.Fallbacks {
		if f.Given != "" {
			fmt.Fprintf(w, "Warning: %s\n", f)
		}
	}
	return p, nil
}

// logFallbacks records every defaulted parameter. It must run after
// setupLogging so nothing lands on the terminal.
func logFallbacks(fallbacks []config.Fallback) {
	for _, f := range fallbacks {
		log.Printf("params: %s", f)
	}
}

func init() {
	playCmd.Flags().String("op", "", "Arithmetic operation: add, sub, mul or div")
	playCmd.Flags().String("level", "", "Difficulty: easy, medium or hard")
	playCmd.Flags().String("params", "", `Parameters as a query string, e.g. "op=mul&level=medium"`)
	playCmd.Flags().Bool("strict", false, "Fail on unrecognized parameters instead of using defaults")
}

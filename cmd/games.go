package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/playroom/internal/config"
	"github.com/abhisek/playroom/internal/round"
	"github.com/abhisek/playroom/internal/screens/launch"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the games and their levels",
	Run: func(cmd *cobra.Command, args []string) {
		printGames(cmd.OutOrStdout())
	},
}

var gameBlurbs = map[launch.Game]string{
	launch.GameMath:      "Add, subtract, multiply and divide",
	launch.GameCounting:  "Count the pictures",
	launch.GameLetters:   "Find the letter",
	launch.GameBasket:    "Fill the basket with the right number",
	launch.GameAdventure: "Collect stars and answer challenges",
}

func printGames(w io.Writer) {
	fmt.Fprintf(w, "%-10s  %-38s  %s\n", "Game", "About", "Levels")
	fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, g := range launch.Games {
		levels := "-"
		if domain, ok := g.Domain(); ok {
			names := make([]string, 0, 3)
			for _, d := range []round.Difficulty{round.Easy, round.Medium, round.Hard} {
				names = append(names, config.LevelBadge(domain, d))
			}
			levels = strings.Join(names, ", ")
		}
		fmt.Fprintf(w, "%-10s  %-38s  %s\n", g, gameBlurbs[g], levels)
	}

	fmt.Fprintf(w, "\n%d games\n", len(launch.Games))
}

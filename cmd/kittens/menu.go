package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kittens/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the title menu",
	Long: `Start the game with the title menu.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  kittens menu
  kittens menu --fps 30
  kittens menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	s, err := setupSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.close()

	opts := s.opts
	for {
		menuResult, err := tui.RunMenu(opts.Store, opts.Board, opts.Runtime)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		opts.Runtime = menuResult.Config

		switch menuResult.Choice {
		case tui.ChoiceScores:
			goBack, sbErr := tui.RunScoreboard(opts.Store, opts.Runtime.ScreenW, opts.Runtime.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
				return
			}
			if !goBack {
				return
			}

		case tui.ChoicePlay:
			result, runErr := tui.RunGame(opts)
			if runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
				return
			}
			s.logger.Debug("game finished", "score", result.Score)

			// Only the first game replays --seed
			opts.Runtime.Seed = 0

			if !result.BackToMenu {
				return
			}

		default:
			return
		}
	}
}

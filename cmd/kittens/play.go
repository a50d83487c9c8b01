package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kittens/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game straight away, skipping the title menu.

Controls:
  Left/Right, h/l, a/d  - Change lane
  P                     - Pause / resume
  R                     - Restart (after game over)
  B/Esc                 - Back (when paused or after game over)
  Ctrl+S                - Save a screenshot
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Fewer, slower burgers
  normal - The classic game
  hard   - More, faster burgers

Examples:
  kittens play
  kittens play --difficulty hard
  kittens play --seed 42
  kittens play --config ./my-kittens.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	s, err := setupSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, runErr := tui.RunGame(s.opts)
	s.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Printf("Score: %d\n", result.Score)
}

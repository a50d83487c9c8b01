// kittens is a lane-dodging arcade game for the terminal: steer the kitten
// left and right, dodge the falling burgers and grab the tomatoes.
//
// Usage:
//
//	kittens                 - Start the title menu
//	kittens play            - Play a game directly
//	kittens menu            - Start the title menu
//	kittens scores          - Show high scores
//	kittens serve           - Start SSH server for remote play
//	kittens config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for a reproducible first game
//	--db <path>           - Set database path (default: ~/.kittens/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--mute                - Disable sound
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kittens",
	Short: "Kittens - dodge the burgers in your terminal",
	Long: `Kittens is a lane-dodging arcade game for the terminal.

Burgers fall down five lanes. Move the kitten left and right to stay out
of their way and eat the tomatoes for bonus points. Your score is the
number of milliseconds you survive.

Available commands:
  play     - Play a game directly
  menu     - Title menu (default)
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  kittens
  kittens play --difficulty hard
  kittens scores
  kittens serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.kittens/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kittens/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores for a difficulty board.

Examples:
  kittens scores
  kittens scores --difficulty hard
  kittens scores --player alice --limit 5
  kittens scores --difficulty hard --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show scores for this player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score on the board")
}

func runScores(_ *cobra.Command, _ []string) {
	board := storage.BoardID(flagDifficulty)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		n, err := clearBoard(store, board)
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared %d scores from %s\n", n, board)
		return
	}

	var scores []storage.ScoreEntry
	if flagPlayer != "" {
		scores, err = store.PlayerScores(board, flagPlayer, flagLimit)
	} else {
		scores, err = store.TopScores(board, flagLimit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", board)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'kittens play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}

	stats, err := store.GetGameStats(board)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Games: %d   Players: %d   Average: %.0f\n",
			stats.HighScore, stats.GamesCount, stats.Players, stats.AvgScore)
	}
}

// clearBoard deletes a board's scores and reports how many there were.
func clearBoard(store *storage.Store, board string) (int, error) {
	stats, err := store.GetGameStats(board)
	if err != nil {
		return 0, err
	}
	if err := store.ClearScores(board); err != nil {
		return 0, err
	}
	return stats.GamesCount, nil
}

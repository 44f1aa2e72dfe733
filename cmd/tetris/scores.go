package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagReset bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  tetris scores
  tetris scores --limit 20
  tetris scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all recorded scores and the best score")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) {
	a, err := newApp(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if a.store == nil {
		fmt.Fprintln(os.Stderr, "Error: scores database is unavailable")
		a.Close()
		os.Exit(1)
	}

	if flagReset {
		if err := a.store.ClearScores(tui.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			a.Close()
			os.Exit(1)
		}
		a.logger.Info("scores cleared")
		fmt.Println("Scores cleared.")
		return
	}

	if err := printScores(a.store, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		a.Close()
		os.Exit(1)
	}
}

func printScores(store *storage.Store, limit int) error {
	scores, err := store.TopScores(tui.GameID, limit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Tetris")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Lines", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.Lines, dateStr)
	}

	fmt.Println()
	stats, err := store.GetGameStats(tui.GameID)
	if err != nil {
		return err
	}
	fmt.Printf("Best: %d  |  Games: %d  |  Average: %.0f  |  Lines: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines)
	return nil
}

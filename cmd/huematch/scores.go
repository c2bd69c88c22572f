package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ferrovax/huematch/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show past session results",
	Long: `Display the top session results, best score first.

Examples:
  huematch scores
  huematch scores --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.TopSessions(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Session Scores")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'huematch play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-10s  %s\n", "Rank", "Score", "Rounds", "Best match", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-10s  %s\n", "----", "-----", "------", "----------", "----")

	for i, entry := range entries {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %9.1f%%  %s\n", i+1, entry.Score, entry.Rounds, entry.BestMatch*100, dateStr)
	}

	fmt.Println()
	if best, err := store.BestScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

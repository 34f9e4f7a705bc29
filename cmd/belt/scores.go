package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the top 10 recorded scores.

Examples:
  belt scores
  belt scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.Top(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Asteroid Belt")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'belt play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Pilot", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range entries {
		pilot := entry.Username
		if pilot == "" {
			pilot = "-"
		}
		dateStr := "-"
		if !entry.CreatedAt.IsZero() {
			dateStr = entry.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, pilot, entry.Score, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 scores.

Examples:
  flappy scores
  flappy scores --mock
  flappy scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}

	board, closeBoard := openBoard(cfg, logger)
	defer closeBoard()
	if board == nil {
		fmt.Println("No scoreboard available.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entries, err := board.Leaderboard(ctx)
	if err != nil {
		closeBoard()
		exitf("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - Flappy Adventure")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "----", "------", "-----", "----")

	for i, e := range entries {
		fmt.Printf("  %-4d  %-16s  %-6d  %s\n", i+1, e.PlayerName, e.Score, e.Date.Local().Format("2006-01-02 15:04"))
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/scoreboard"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play statistics and achievements",
	Args:  cobra.NoArgs,
	Run:   runStats,
}

func runStats(_ *cobra.Command, _ []string) {
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

	stats, err := board.Stats(ctx)
	if err != nil {
		closeBoard()
		exitf("retrieving stats: %v", err)
	}
	achievements, err := board.Achievements(ctx)
	if err != nil {
		closeBoard()
		exitf("retrieving achievements: %v", err)
	}

	fmt.Println("Your Stats")
	fmt.Println()
	fmt.Printf("  Games played    %d\n", stats.TotalGames)
	fmt.Printf("  Time spent      %s\n", scoreboard.FormatDuration(stats.TotalTime))
	fmt.Printf("  Average score   %.1f\n", stats.AverageScore)
	fmt.Printf("  Best streak     %d\n", stats.BestStreak)
	if stats.FavoritePlayTime != "" {
		fmt.Printf("  Favorite time   %s\n", stats.FavoritePlayTime)
	}

	fmt.Println()
	fmt.Println("Achievements")
	fmt.Println()
	for _, a := range achievements {
		mark := "[ ]"
		if a.Unlocked {
			mark = "[x]"
		}
		fmt.Printf("  %s %-16s %s\n", mark, a.Name, a.Description)
	}
}

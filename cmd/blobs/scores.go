package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blob-arcade/internal/platform/tui"
	"github.com/vovakirdan/blob-arcade/internal/registry"
	"github.com/vovakirdan/blob-arcade/internal/storage"
)

var (
	flagBrowse bool
	flagRuns   int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and per-level stats",
	Long: `Display the top 10 scores and the per-level attempt summary.

The game defaults to "blobs" (the campaign); use "blobs_endless" for the
endless mode.

Examples:
  blobs scores
  blobs scores blobs_endless
  blobs scores --runs 20
  blobs scores --browse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 0, "Also list this many recent level attempts")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "blobs"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagBrowse {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blobs play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Games: %d   Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}

	levels, err := store.LevelSummary(gameID)
	if err != nil {
		return fmt.Errorf("retrieving level stats: %w", err)
	}
	if len(levels) > 0 {
		fmt.Println()
		fmt.Printf("  %-5s  %-20s  %-8s  %-6s  %s\n", "Level", "Title", "Attempts", "Clears", "Best")
		fmt.Printf("  %-5s  %-20s  %-8s  %-6s  %s\n", "-----", "-----", "--------", "------", "----")
		for _, l := range levels {
			fmt.Printf("  %-5d  %-20s  %-8d  %-6d  %d\n", l.Level, l.Title, l.Attempts, l.Clears, l.Best)
		}
	}

	if flagRuns > 0 {
		runs, err := store.RecentRuns(gameID, flagRuns)
		if err != nil {
			return fmt.Errorf("retrieving runs: %w", err)
		}
		fmt.Println()
		fmt.Println("Recent attempts:")
		for _, r := range runs {
			line := fmt.Sprintf("  %s  L%d %-20s %-7s score %-6d radius %.1f",
				r.CreatedAt.Format("2006-01-02 15:04"), r.Level, r.Title, r.Outcome, r.Score, r.Radius)
			if r.Reason != "" {
				line += "  (" + r.Reason + ")"
			}
			fmt.Println(line)
		}
	}
	return nil
}

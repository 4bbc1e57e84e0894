// blobs is a terminal arcade game: steer a growing blob down a scrolling
// field, absorb smaller blobs, avoid larger ones and reach the finish line
// at the right size.
//
// Usage:
//
//	blobs play               - Play the campaign (or --endless)
//	blobs menu               - Start menu with level select and high scores
//	blobs levels             - List or export the level table
//	blobs scores             - Show high scores and per-level stats
//	blobs serve              - Start SSH server for remote play
//	blobs simulate           - Run the game headless
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/blobs.db)
//	--log-file <path>  - Set event log path (default: ~/.arcade/blobs.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blob-arcade/internal/games/blobs"
	"github.com/vovakirdan/blob-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string

	// Game config flags shared by play, menu, levels and simulate
	flagConfig     string
	flagLevels     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blobs",
	Short: "Blobs - grow, absorb and squeeze through in your terminal",
	Long: `Blobs is a terminal arcade game. Your blob drifts down a scrolling
field: touch smaller blobs to absorb them, avoid bigger ones, squeeze
through tunnel gaps and reach the finish line within the level's size band.

Available commands:
  play      - Play the campaign or endless mode directly
  menu      - Interactive menu with level select and high scores
  levels    - List or export the level table
  scores    - View high scores and per-level stats
  serve     - Start SSH server for remote play
  simulate  - Run the game headless

Examples:
  blobs play
  blobs play --level 3 --difficulty hard
  blobs menu
  blobs serve --ssh :2222
  blobs simulate --ticks 5000 --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/blobs.log", "Path to the event log (empty disables logging)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}

// addGameFlags registers the config flags on a command that loads the game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagLevels, "levels", "", "Path to a YAML level table replacing the campaign")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands the config flags to the game package and returns the
// resolved level table. Load errors are reported and the defaults used.
func applyGameFlags(logger *log.Logger) []blobs.Level {
	blobs.SetConfigPath(flagConfig)
	blobs.SetLevelsPath(flagLevels)
	blobs.SetDifficultyPreset(flagDifficulty)

	_, levels, err := blobs.LoadConfigured()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		logger.Warn("config fallback", "err", err)
	}
	if len(levels) == 0 {
		levels = blobs.DefaultLevels()
	}
	return levels
}

func levelTitles(levels []blobs.Level) []string {
	titles := make([]string, len(levels))
	for i, l := range levels {
		titles[i] = l.Title
	}
	return titles
}

// openLog opens the event log file. The TUI owns the terminal, so game events
// go to a file. Failures fall back to a discarding logger.
func openLog() (*log.Logger, func()) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}
	}

	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "blobs",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}

// openStore opens the scores database; the game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blob-arcade/internal/core"
	"github.com/vovakirdan/blob-arcade/internal/games/blobs"
	"github.com/vovakirdan/blob-arcade/internal/platform/tui"
	"github.com/vovakirdan/blob-arcade/internal/registry"
)

var (
	flagStartLevel int
	flagEndless    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign or endless mode",
	Long: `Start playing Blobs directly, without the menu.

Controls:
  Left/Right, A/D  - Steer
  Up/W             - Speed up
  Down/S           - Slow down
  Space            - Start / restart after the game ends
  P                - Pause
  Esc              - Leave after the game ends or while paused
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  blobs play
  blobs play --endless
  blobs play --level 4 --difficulty hard
  blobs play --config ./my-blobs.yaml
  blobs play --levels ./my-levels.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "Campaign level to start from (1-indexed)")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play the campaign in an endless loop")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog := openLog()
	defer closeLog()

	levels := applyGameFlags(logger)
	if flagStartLevel < 0 || flagStartLevel > len(levels) {
		return fmt.Errorf("level %d out of range (1-%d)", flagStartLevel, len(levels))
	}

	gameID := "blobs"
	if flagEndless {
		gameID = "blobs_endless"
	}
	if !flagEndless {
		blobs.SetStartLevel(flagStartLevel)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, logger, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

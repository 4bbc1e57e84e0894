package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blob-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start Blobs in interactive menu mode.

Pick the campaign, endless mode, a starting level or the high score
tables. After a game ends, Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Select
  Tab          - High scores
  Q            - Quit

Examples:
  blobs menu
  blobs menu --fps 30
  blobs menu --db ./blobs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := openLog()
	defer closeLog()

	levels := applyGameFlags(logger)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(store, logger, runtimeConfig(), levelTitles(levels)); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}

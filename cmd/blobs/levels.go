package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blob-arcade/internal/config"
	"github.com/vovakirdan/blob-arcade/internal/games/blobs"
)

var flagExport bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	Long: `Shows the level table the game would play with the given config.

With --export the table is printed as YAML in the format --levels reads,
which is a convenient starting point for a custom campaign.

Examples:
  blobs levels
  blobs levels --config ./my-blobs.yaml
  blobs levels --export > my-levels.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	addGameFlags(levelsCmd)
	levelsCmd.Flags().BoolVar(&flagExport, "export", false, "Print the level table as YAML")
}

func runLevels(_ *cobra.Command, _ []string) error {
	blobs.SetConfigPath(flagConfig)
	blobs.SetLevelsPath(flagLevels)
	blobs.SetDifficultyPreset(flagDifficulty)

	bc, levels, err := blobs.LoadConfigured()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	if len(levels) == 0 {
		levels = blobs.DefaultLevels()
	}

	if flagExport {
		data, err := config.MarshalLevels(blobs.LevelsToConfig(levels))
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	// Calculate column widths
	maxTitleLen := 5 // "Title" header
	for _, l := range levels {
		maxTitleLen = max(maxTitleLen, len(l.Title))
	}

	fmt.Printf("  %-3s  %-*s  %-8s  %-12s  %s\n", "#", maxTitleLen, "Title", "Length", "Finish size", "Script")
	fmt.Printf("  %-3s  %-*s  %-8s  %-12s  %s\n", "-", maxTitleLen, "-----", "------", "-----------", "------")
	for i, l := range levels {
		length := l.Length
		if length <= 0 {
			length = bc.World.LevelLength
		}
		if length <= 0 {
			length = blobs.DefaultLevelLength
		}
		fmt.Printf("  %-3d  %-*s  %-8g  %-12s  %s\n", i+1, maxTitleLen, l.Title, length, l.EndSize.String(), l.Script.Kind)
	}

	fmt.Println()
	fmt.Println("Run 'blobs play --level <#>' to start from a level.")
	return nil
}

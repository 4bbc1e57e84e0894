package config

import (
	_ "embed"
)

//go:embed defaults/blobs.yaml
var defaultBlobsYAML []byte

// DefaultBlobsConfig returns the default Blobs configuration.
func DefaultBlobsConfig() BlobsConfig {
	return BlobsConfig{
		World: BlobsWorld{
			Width:       600,
			Height:      800,
			LevelLength: 10000,
		},
		Player: BlobsPlayer{
			Radius:       10,
			LateralSpeed: 4,
			MinRadius:    1,
		},
		Scroll: BlobsScroll{
			InitialSpeed:    30,
			NeutralSpeed:    2,
			AccelerateSpeed: 10,
			DecelerateSpeed: 1,
			Ease:            1,
			CycleBonus:      0.5,
		},
		Enemies: PopulationConfig{
			Count:   60,
			MinSize: 5,
			MaxSize: 30,
		},
		Tunnels: BlobsTunnels{
			Count:    1,
			GapWidth: 90,
			Height:   20,
			Offset:   50,
		},
		Splitters: BlobsSplitters{
			Count:  4,
			Radius: 10,
			Spin:   0.05,
		},
		Messages: BlobsMessages{
			DurationTicks: 180, // 3 seconds at 60 FPS
			FadeTicks:     45,
		},
		Input: BlobsInput{
			HoldTicks: 15,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SizeMultiplier:  0.5,
				CountBonus:      20,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blobs", "blobs_endless":
		return defaultBlobsYAML
	default:
		return nil
	}
}

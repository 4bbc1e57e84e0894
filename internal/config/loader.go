package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlobs loads Blobs configuration.
// Search order: customPath -> ~/.arcade/configs/blobs.yaml -> ./configs/blobs.yaml -> embedded default
// Files only need to name the fields they override.
func LoadBlobs(customPath string) (BlobsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBlobsConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseBlobs(data)
		if err != nil {
			return DefaultBlobsConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blobs.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBlobs(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "blobs.yaml")); err == nil {
		if cfg, err := parseBlobs(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBlobs(defaultBlobsYAML)
	if err != nil {
		return DefaultBlobsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseBlobs decodes data on top of the hardcoded defaults.
func parseBlobs(data []byte) (BlobsConfig, error) {
	cfg := DefaultBlobsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	normalizeBlobs(&cfg)
	return cfg, nil
}

// normalizeBlobs replaces values the simulation cannot run with by defaults.
func normalizeBlobs(cfg *BlobsConfig) {
	def := DefaultBlobsConfig()
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		cfg.World.Width = def.World.Width
		cfg.World.Height = def.World.Height
	}
	if cfg.World.LevelLength <= 0 {
		cfg.World.LevelLength = def.World.LevelLength
	}
	if cfg.Player.Radius <= 0 {
		cfg.Player.Radius = def.Player.Radius
	}
	if cfg.Player.MinRadius <= 0 {
		cfg.Player.MinRadius = def.Player.MinRadius
	}
	if cfg.Scroll.Ease <= 0 {
		cfg.Scroll.Ease = def.Scroll.Ease
	}
	if cfg.Messages.DurationTicks <= 0 {
		cfg.Messages.DurationTicks = def.Messages.DurationTicks
	}
	cfg.Messages.FadeTicks = max(cfg.Messages.FadeTicks, 0)
	cfg.Input.HoldTicks = max(cfg.Input.HoldTicks, 1)
	cfg.Enemies.Count = max(cfg.Enemies.Count, 0)
	cfg.Tunnels.Count = max(cfg.Tunnels.Count, 0)
	cfg.Splitters.Count = max(cfg.Splitters.Count, 0)
}

// levelFile is the on-disk layout of a standalone level table.
type levelFile struct {
	Levels []LevelConfig `yaml:"levels"`
}

// LoadLevels reads an ordered level table from a YAML file with a top-level
// "levels" list.
func LoadLevels(path string) ([]LevelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read levels %s: %w", path, err)
	}
	var f levelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parse levels %s: %w", path, err)
	}
	if len(f.Levels) == 0 {
		return nil, fmt.Errorf("config: %s defines no levels", path)
	}
	return f.Levels, nil
}

// MarshalLevels encodes a level table in the format LoadLevels reads.
func MarshalLevels(levels []LevelConfig) ([]byte, error) {
	data, err := yaml.Marshal(levelFile{Levels: levels})
	if err != nil {
		return nil, fmt.Errorf("config: encode levels: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBlobsPreset modifies the config based on a difficulty preset.
func ApplyBlobsPreset(cfg *BlobsConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Count = 45
		cfg.Splitters.Count = 3
		cfg.Tunnels.GapWidth = 110
	case DifficultyHard:
		cfg.Enemies.Count = 75
		cfg.Enemies.MaxSize = 35
		cfg.Tunnels.GapWidth = 75
	}
}

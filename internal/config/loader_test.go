package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := parseBlobs(defaultBlobsYAML)
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	def := DefaultBlobsConfig()

	if cfg.World != def.World {
		t.Errorf("world = %+v, expected %+v", cfg.World, def.World)
	}
	if cfg.Player != def.Player {
		t.Errorf("player = %+v, expected %+v", cfg.Player, def.Player)
	}
	if cfg.Scroll != def.Scroll {
		t.Errorf("scroll = %+v, expected %+v", cfg.Scroll, def.Scroll)
	}
	if cfg.Enemies != def.Enemies || cfg.Tunnels != def.Tunnels || cfg.Splitters != def.Splitters {
		t.Error("embedded populations differ from hardcoded defaults")
	}
	if cfg.Difficulty != def.Difficulty {
		t.Errorf("difficulty = %+v, expected %+v", cfg.Difficulty, def.Difficulty)
	}
	if len(cfg.Levels) != 0 {
		t.Errorf("embedded defaults should use the built-in campaign, got %d levels", len(cfg.Levels))
	}
}

func TestLoadBlobsCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blobs.yaml")
	data := []byte(`
enemies:
  count: 12
scroll:
  neutral_speed: 3.5
world:
  width: -1
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlobs(path)
	if err != nil {
		t.Fatalf("LoadBlobs: %v", err)
	}
	if cfg.Enemies.Count != 12 {
		t.Errorf("enemies.count = %d, expected 12", cfg.Enemies.Count)
	}
	if cfg.Enemies.MaxSize != 30 {
		t.Errorf("unset fields should keep defaults, max_size = %v", cfg.Enemies.MaxSize)
	}
	if cfg.Scroll.NeutralSpeed != 3.5 {
		t.Errorf("scroll.neutral_speed = %v, expected 3.5", cfg.Scroll.NeutralSpeed)
	}
	if cfg.World.Width != 600 {
		t.Errorf("invalid world width should fall back to default, got %v", cfg.World.Width)
	}
}

func TestLoadBlobsMinRadiusFallback(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero", "player:\n  min_radius: 0\n"},
		{"negative", "player:\n  min_radius: -3\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "blobs.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadBlobs(path)
			if err != nil {
				t.Fatalf("LoadBlobs: %v", err)
			}
			if cfg.Player.MinRadius != DefaultBlobsConfig().Player.MinRadius {
				t.Errorf("min_radius = %v, expected the default", cfg.Player.MinRadius)
			}
		})
	}
}

func TestLoadBlobsMissingCustomPath(t *testing.T) {
	_, err := LoadBlobs(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadBlobsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBlobs(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadLevelsRoundTrip(t *testing.T) {
	count := 0
	minR := 15.0
	levels := []LevelConfig{
		{Title: "Empty", Enemies: &PopulationOverride{Count: &count}},
		{
			Title:   "Clock",
			EndSize: &SizeBandConfig{Min: &minR},
			Script:  &ScriptConfig{Kind: "countdown", Seconds: 30},
		},
	}
	data, err := MarshalLevels(levels)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "levels.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadLevels(path)
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d levels, expected 2", len(got))
	}
	if got[0].Enemies == nil || got[0].Enemies.Count == nil || *got[0].Enemies.Count != 0 {
		t.Error("explicit zero count should survive the round trip")
	}
	if got[1].Script == nil || got[1].Script.Kind != "countdown" || got[1].Script.Seconds != 30 {
		t.Errorf("script = %+v", got[1].Script)
	}
	if got[1].EndSize == nil || got[1].EndSize.Max != nil || *got[1].EndSize.Min != 15 {
		t.Errorf("end_size = %+v", got[1].EndSize)
	}
}

func TestLoadLevelsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	if err := os.WriteFile(path, []byte("levels: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLevels(path); err == nil {
		t.Fatal("expected error for an empty level table")
	}
}

func TestApplyBlobsPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
		enemies      int
	}{
		{DifficultyEasy, true, 0.0, 45},
		{DifficultyNormal, true, 0.3, 60},
		{DifficultyHard, true, 0.7, 75},
		{DifficultyFixed, false, 0.0, 60},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBlobsConfig()
			ApplyBlobsPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("initial level = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
			if cfg.Enemies.Count != tc.enemies {
				t.Errorf("enemies = %d, expected %d", cfg.Enemies.Count, tc.enemies)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should yield empty")
	}
}

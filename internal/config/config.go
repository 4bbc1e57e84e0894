// Package config provides YAML-based game configuration loading and
// difficulty management for the blob arcade.
package config

// BlobsConfig contains all configuration for the Blobs game.
type BlobsConfig struct {
	World      BlobsWorld       `yaml:"world"`
	Player     BlobsPlayer      `yaml:"player"`
	Scroll     BlobsScroll      `yaml:"scroll"`
	Enemies    PopulationConfig `yaml:"enemies"`
	Tunnels    BlobsTunnels     `yaml:"tunnels"`
	Splitters  BlobsSplitters   `yaml:"splitters"`
	Messages   BlobsMessages    `yaml:"messages"`
	Input      BlobsInput       `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Levels     []LevelConfig    `yaml:"levels,omitempty"` // Empty means the built-in campaign
}

// BlobsWorld defines the simulated playfield in world units.
type BlobsWorld struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	LevelLength float64 `yaml:"level_length"` // Distance to the finish line when a level sets none
}

// BlobsPlayer defines player parameters.
type BlobsPlayer struct {
	Radius       float64 `yaml:"radius"`
	LateralSpeed float64 `yaml:"lateral_speed"`
	MinRadius    float64 `yaml:"min_radius"` // Below this the player is dead
}

// BlobsScroll defines the vertical scroll pacing.
type BlobsScroll struct {
	InitialSpeed    float64 `yaml:"initial_speed"` // Burst at level start
	NeutralSpeed    float64 `yaml:"neutral_speed"`
	AccelerateSpeed float64 `yaml:"accelerate_speed"`
	DecelerateSpeed float64 `yaml:"decelerate_speed"`
	Ease            float64 `yaml:"ease"`        // Max speed change per tick
	CycleBonus      float64 `yaml:"cycle_bonus"` // Added to neutral pace per endless cycle
}

// PopulationConfig defines how many obstacles of a kind spawn and their size bounds.
type PopulationConfig struct {
	Count   int     `yaml:"count"`
	MinSize float64 `yaml:"min_size"`
	MaxSize float64 `yaml:"max_size"`
}

// BlobsTunnels defines tunnel parameters.
type BlobsTunnels struct {
	Count    int     `yaml:"count"`
	GapWidth float64 `yaml:"gap_width"`
	Height   float64 `yaml:"height"` // Wall thickness
	Offset   float64 `yaml:"offset"` // Minimum distance of the gap from the edges
}

// BlobsSplitters defines splitter power-up parameters.
type BlobsSplitters struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
	Spin   float64 `yaml:"spin"` // Rotation per tick, radians
}

// BlobsMessages defines HUD notice timing.
type BlobsMessages struct {
	DurationTicks int `yaml:"duration_ticks"`
	FadeTicks     int `yaml:"fade_ticks"`
}

// BlobsInput defines how discrete key presses map to held controls.
type BlobsInput struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a steering key stays held after the last press
}

// LevelConfig is the YAML form of a level descriptor.
// Zero values fall back to the game defaults.
type LevelConfig struct {
	Title       string              `yaml:"title"`
	Description string              `yaml:"description,omitempty"`
	Length      float64             `yaml:"length,omitempty"`
	Enemies     *PopulationOverride `yaml:"enemies,omitempty"`
	Tunnels     *PopulationOverride `yaml:"tunnels,omitempty"`
	Splitters   *PopulationOverride `yaml:"splitters,omitempty"`
	EndSize     *SizeBandConfig     `yaml:"end_size,omitempty"`
	TunnelBonus int                 `yaml:"tunnel_bonus,omitempty"`
	Script      *ScriptConfig       `yaml:"script,omitempty"`
}

// PopulationOverride replaces parts of a PopulationConfig for one level.
type PopulationOverride struct {
	Count   *int     `yaml:"count,omitempty"`
	MinSize *float64 `yaml:"min_size,omitempty"`
	MaxSize *float64 `yaml:"max_size,omitempty"`
}

// SizeBandConfig is the target radius window at the finish line.
type SizeBandConfig struct {
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
}

// ScriptConfig selects a scripted level behavior.
type ScriptConfig struct {
	Kind         string  `yaml:"kind"`                    // countdown, resize_wave, fixed_setup
	Seconds      float64 `yaml:"seconds,omitempty"`       // countdown length
	Interval     float64 `yaml:"interval,omitempty"`      // seconds between resize waves
	MinSize      float64 `yaml:"min_size,omitempty"`      // resize wave bounds
	MaxSize      float64 `yaml:"max_size,omitempty"`      // resize wave bounds
	PlayerRadius float64 `yaml:"player_radius,omitempty"` // fixed setup
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to neutral pace at max difficulty
	SizeMultiplier  float64 `yaml:"size_multiplier"`  // Multiplier added to enemy max size at max difficulty
	CountBonus      int     `yaml:"count_bonus"`      // Extra enemies at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

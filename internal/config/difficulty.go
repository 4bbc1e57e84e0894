package config

// DifficultyManager scales a level's neutral pace and enemy population with
// campaign progress. Progress is measured by score or by ticks played,
// depending on the progression type.
type DifficultyManager struct {
	cfg  DifficultyConfig
	base float64 // initial level, clamped to [0, 1]
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, base: unit(cfg.InitialLevel)}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && (d.cfg.Progression.Type == "score" || d.cfg.Progression.Type == "time")
}

// Level returns the difficulty level in [0, 1]. It starts at the initial
// level and reaches 1 when score or ticks hit max_at.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.base
	}

	measure := float64(score)
	if d.cfg.Progression.Type == "time" {
		measure = float64(ticks)
	}
	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))

	return d.base + unit(measure/maxAt)*(1-d.base)
}

// Pace returns the neutral scroll speed: basePace at level 0, up to
// basePace*(1+speed_multiplier) at level 1.
func (d *DifficultyManager) Pace(basePace float64, score int, ticks int) float64 {
	return basePace * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// EnemyMaxSize returns the upper spawn radius for enemies.
func (d *DifficultyManager) EnemyMaxSize(baseSize float64, score int, ticks int) float64 {
	return baseSize * (1 + d.Level(score, ticks)*d.cfg.Scaling.SizeMultiplier)
}

// EnemyCount returns the enemy population for the current difficulty level.
// A level that spawns no enemies stays empty.
func (d *DifficultyManager) EnemyCount(baseCount int, score int, ticks int) int {
	if baseCount <= 0 {
		return 0
	}
	return baseCount + int(d.Level(score, ticks)*float64(d.cfg.Scaling.CountBonus))
}

func unit(v float64) float64 {
	return min(max(v, 0), 1)
}

// Package blobs implements a vertically scrolling blob arcade game.
// The player steers a circle through a stream of other circles, absorbing
// the smaller ones and avoiding the larger ones, while threading tunnel gaps
// and reaching each level's finish line within a target size band.
package blobs

import (
	"github.com/vovakirdan/blob-arcade/internal/config"
	"github.com/vovakirdan/blob-arcade/internal/core"
	"github.com/vovakirdan/blob-arcade/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Package-level settings applied on the next Reset, set by the CLI.
var (
	configPath         string
	levelsPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelsPath sets a YAML level table that replaces the campaign.
func SetLevelsPath(path string) {
	levelsPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the starting level (1-indexed). 0 means start from the beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// Game adapts a Session to the registry.Game interface.
// Terminals report key presses but not releases, so steering stays held for
// a few ticks after the last press.
type Game struct {
	mode    Mode
	cfg     config.BlobsConfig
	levels  []Level
	fixed   bool // cfg and levels were supplied by the caller
	session *Session
	paused  bool
	loadErr error
	start   int // 1-indexed start level for the next Reset, 0 for none

	lateralHold int
	biasHold    int
}

// New creates a new campaign mode Blobs game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless mode Blobs game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewWithConfig creates a game that skips config file loading.
func NewWithConfig(mode Mode, cfg config.BlobsConfig, levels []Level) *Game {
	return &Game{mode: mode, cfg: cfg, levels: levels, fixed: true}
}

func init() {
	registry.Register("blobs", func() registry.Game {
		return New()
	})
	registry.Register("blobs_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "blobs_endless"
	}
	return "blobs"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Blobs (Endless)"
	}
	return "Blobs"
}

// Reset loads configuration and starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loadErr = nil
	if !g.fixed {
		g.loadConfig()
	}

	start := 0
	switch {
	case g.start > 0:
		start = g.start - 1
		g.start = 0
	case g.mode == ModeCampaign && selectedStartLevel > 0:
		start = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	}

	g.session = NewSession(g.cfg, g.levels, Options{
		Seed:       cfg.Seed,
		TickRate:   cfg.TickRate,
		Endless:    g.mode == ModeEndless,
		StartLevel: start,
	})
	g.session.Restart()
	g.paused = false
	g.lateralHold = 0
	g.biasHold = 0
}

// loadConfig resolves config and levels from files. Failures fall back to
// defaults and are reported through LoadErr.
func (g *Game) loadConfig() {
	g.cfg, g.levels, g.loadErr = LoadConfigured()
}

// LoadConfigured resolves the config and level table selected with
// SetConfigPath, SetLevelsPath and SetDifficultyPreset. The returned values
// are usable even when err is set; nil levels mean the built-in campaign.
func LoadConfigured() (config.BlobsConfig, []Level, error) {
	bc, loadErr := config.LoadBlobs(configPath)
	if difficultyPreset != "" {
		config.ApplyBlobsPreset(&bc, difficultyPreset)
	}

	var levels []Level
	if len(bc.Levels) > 0 {
		levels = LevelsFromConfig(bc.Levels)
	}
	if levelsPath != "" {
		lcs, err := config.LoadLevels(levelsPath)
		if err != nil {
			loadErr = err
		} else {
			levels = LevelsFromConfig(lcs)
		}
	}
	return bc, levels, loadErr
}

// SetStart picks the 1-indexed level the next Reset starts from. Unlike
// SetStartLevel it only affects this game, so concurrent sessions can each
// choose their own.
func (g *Game) SetStart(level int) {
	g.start = max(level, 0)
}

// LoadErr returns the config error from the last Reset, if any.
func (g *Game) LoadErr() error {
	return g.loadErr
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session

	// Handle restart
	if in.Has(core.ActionStart) && s.State() != StateRunning {
		s.Restart()
		g.paused = false
		g.lateralHold = 0
		g.biasHold = 0
		return core.StepResult{State: g.State(), Events: s.DrainEvents()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && s.State() == StateRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)
	s.Tick()

	return core.StepResult{State: g.State(), Events: s.DrainEvents()}
}

// applyInput turns key presses into held steering and pace requests.
func (g *Game) applyInput(in core.InputFrame) {
	s := g.session
	hold := max(g.cfg.Input.HoldTicks, 1)
	speed := g.cfg.Player.LateralSpeed

	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		s.SetLateralSpeed(-speed)
		g.lateralHold = hold
	case right && !left:
		s.SetLateralSpeed(speed)
		g.lateralHold = hold
	case g.lateralHold > 0:
		g.lateralHold--
		if g.lateralHold == 0 {
			s.SetLateralSpeed(0)
		}
	}

	up, down := in.Has(core.ActionAccelerate), in.Has(core.ActionDecelerate)
	switch {
	case up && !down:
		s.SetVerticalBias(BiasAccelerate)
		g.biasHold = hold
	case down && !up:
		s.SetVerticalBias(BiasDecelerate)
		g.biasHold = hold
	case g.biasHold > 0:
		g.biasHold--
		if g.biasHold == 0 {
			s.SetVerticalBias(BiasNeutral)
		}
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	Draw(dst, g.session.Snapshot(), g.cfg.World.Width, g.cfg.World.Height)
	if g.paused {
		drawOverlay(dst, "Paused", "Press P to continue")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	s := g.session
	return core.GameState{
		Score:    s.Score(),
		GameOver: s.State() == StateLost || s.State() == StateWon,
		Won:      s.State() == StateWon,
		Paused:   g.paused,
		Level:    s.LevelIndex() + 1,
		Progress: s.Progress(),
	}
}

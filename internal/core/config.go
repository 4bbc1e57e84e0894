package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	GameOver bool    // Whether the game has ended (lost or won)
	Won      bool    // Whether the game ended in victory
	Paused   bool    // Whether the game is paused
	Level    int     // Current level, 1-indexed; 0 when the game has no levels
	Progress float64 // Fraction of the current level completed, 0..1
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventLevelStarted EventKind = iota
	EventLevelCleared
	EventLevelFailed
	EventCampaignWon
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLevelStarted:
		return "level_started"
	case EventLevelCleared:
		return "level_cleared"
	case EventLevelFailed:
		return "level_failed"
	case EventCampaignWon:
		return "campaign_won"
	default:
		return "unknown"
	}
}

// Event is emitted by games for the platform to log or persist.
type Event struct {
	Kind   EventKind
	Level  int // 1-indexed
	Title  string
	Score  int
	Radius float64
	Ticks  uint64 // Ticks spent in the level
	Reason string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

package blobs

import "fmt"

// ScriptKind selects a scripted per-level behavior.
type ScriptKind int

const (
	ScriptNone       ScriptKind = iota
	ScriptCountdown             // Lose when the timer runs out
	ScriptResizeWave            // Periodically re-roll every enemy's radius
	ScriptFixedSetup            // Override the player's starting radius
)

// String returns the YAML name of the script kind.
func (k ScriptKind) String() string {
	switch k {
	case ScriptCountdown:
		return "countdown"
	case ScriptResizeWave:
		return "resize_wave"
	case ScriptFixedSetup:
		return "fixed_setup"
	default:
		return "none"
	}
}

// ParseScriptKind maps a YAML name to a script kind.
func ParseScriptKind(s string) ScriptKind {
	switch s {
	case "countdown":
		return ScriptCountdown
	case "resize_wave":
		return ScriptResizeWave
	case "fixed_setup":
		return ScriptFixedSetup
	default:
		return ScriptNone
	}
}

// Script parameterizes a level's scripted behavior. Only the fields used by
// Kind matter.
type Script struct {
	Kind         ScriptKind
	Seconds      float64 // countdown length
	Interval     float64 // seconds between resize waves
	MinSize      float64 // resize wave bounds, 0 uses the level's enemy bounds
	MaxSize      float64
	PlayerRadius float64 // fixed setup
}

const (
	defaultCountdownSeconds = 60.0
	defaultWaveInterval     = 5.0
	countdownWarning        = 10.0 // seconds left when the player is warned
)

// scriptState is the per-attempt runtime state of a level script.
type scriptState struct {
	deadline uint64 // level tick at which the countdown expires
	warned   bool
	nextWave uint64
	waves    int
}

// ticksFor converts seconds to ticks at the session's rate.
func (s *Session) ticksFor(seconds float64) uint64 {
	if seconds <= 0 {
		return 0
	}
	return uint64(seconds * float64(s.opts.TickRate))
}

// setupScript runs once per Start, after the world is populated.
func (s *Session) setupScript() {
	sc := s.Level().Script
	switch sc.Kind {
	case ScriptCountdown:
		secs := sc.Seconds
		if secs <= 0 {
			secs = defaultCountdownSeconds
		}
		s.script.deadline = s.ticksFor(secs)
	case ScriptResizeWave:
		s.script.nextWave = s.ticksFor(s.waveInterval())
	case ScriptFixedSetup:
		if sc.PlayerRadius > 0 {
			s.player.Radius = sc.PlayerRadius
		}
	}
}

// tickScript runs once per running tick, after the world has moved.
func (s *Session) tickScript() {
	sc := s.Level().Script
	switch sc.Kind {
	case ScriptCountdown:
		if s.levelTicks >= s.script.deadline {
			s.Lose("Out of time")
			return
		}
		left := s.script.deadline - s.levelTicks
		if !s.script.warned && left <= s.ticksFor(countdownWarning) {
			s.script.warned = true
			s.messages.Push(s.tick, "Hurry up!", fmt.Sprintf("%.0f seconds left", countdownWarning))
		}
	case ScriptResizeWave:
		if s.levelTicks < s.script.nextWave {
			return
		}
		s.resizeWave(sc)
		s.script.waves++
		s.script.nextWave += max(s.ticksFor(s.waveInterval()), 1)
		s.messages.Push(s.tick, "The tide shifts", "Every blob just changed size")
	}
}

// resizeWave re-rolls the radius of every live enemy.
func (s *Session) resizeWave(sc Script) {
	for _, e := range s.world.Enemies {
		if !e.Alive() {
			continue
		}
		lo, hi := e.MinSize, e.MaxSize
		if sc.MinSize > 0 {
			lo = sc.MinSize
		}
		if sc.MaxSize > 0 {
			hi = sc.MaxSize
		}
		e.Radius = max(lo, s.rng.Float64()*hi)
	}
}

func (s *Session) waveInterval() float64 {
	if iv := s.Level().Script.Interval; iv > 0 {
		return iv
	}
	return defaultWaveInterval
}

// TimeLeft returns the seconds remaining on a countdown level.
// The second result is false when the level has no countdown.
func (s *Session) TimeLeft() (float64, bool) {
	if s.state == StateUninitialized || s.Level().Script.Kind != ScriptCountdown {
		return 0, false
	}
	if s.levelTicks >= s.script.deadline {
		return 0, true
	}
	return float64(s.script.deadline-s.levelTicks) / float64(s.opts.TickRate), true
}

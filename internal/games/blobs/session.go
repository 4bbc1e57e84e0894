package blobs

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/blob-arcade/internal/config"
	"github.com/vovakirdan/blob-arcade/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Bias is the player's requested scroll pace.
type Bias int

const (
	BiasNeutral Bias = iota
	BiasAccelerate
	BiasDecelerate
)

// Options configures a session beyond the game config.
type Options struct {
	Seed       int64
	TickRate   int  // Ticks per second for scripted timers, default 60
	Endless    bool // Wrap to the first level instead of winning
	StartLevel int  // 0-indexed level used by the first Restart
}

// adviceUnset forces the first size-band check of a level to report.
const adviceUnset = 2

// Session is one player's run through the level sequence.
// It is not safe for concurrent use; a single driver calls Tick.
type Session struct {
	cfg        config.BlobsConfig
	levels     []Level
	opts       Options
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	state      State
	levelIndex int
	cycle      int    // Completed passes through the level list (endless)
	tick       uint64 // Ticks since the session was created
	levelTicks uint64 // Ticks since the current level started
	banked     int    // Score from cleared levels

	player   *Player
	world    *World
	pace     float64 // Neutral scroll speed for the current level
	bias     Bias
	messages *MessageQueue
	script   scriptState
	advice   int

	lossReason string
	events     []core.Event
}

// NewSession creates a session. An empty level list uses DefaultLevels.
// Call Start or Restart to begin playing.
func NewSession(cfg config.BlobsConfig, levels []Level, opts Options) *Session {
	if len(levels) == 0 {
		levels = DefaultLevels()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	opts.StartLevel = core.Clamp(opts.StartLevel, 0, len(levels)-1)
	rng := rand.New(rand.NewSource(opts.Seed))
	return &Session{
		cfg:        cfg,
		levels:     levels,
		opts:       opts,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		world:      NewWorld(cfg, rng),
		player:     NewPlayer(cfg.World.Width/2, cfg.World.Height*7/8, cfg.Player.Radius, cfg.Player.MinRadius),
		messages:   NewMessageQueue(cfg.Messages.DurationTicks, cfg.Messages.FadeTicks),
		advice:     adviceUnset,
	}
}

// Start begins the level at levelIndex, clamped into range.
func (s *Session) Start(levelIndex int) {
	idx := core.Clamp(levelIndex, 0, len(s.levels)-1)
	lvl := s.levels[idx]
	cfg := s.cfg

	s.levelIndex = idx
	s.state = StateRunning
	s.levelTicks = 0
	s.lossReason = ""
	s.bias = BiasNeutral
	s.advice = adviceUnset
	s.script = scriptState{}

	score, ticks := s.banked, int(s.tick)
	s.pace = s.difficulty.Pace(cfg.Scroll.NeutralSpeed, score, ticks) + float64(s.cycle)*cfg.Scroll.CycleBonus

	s.player = NewPlayer(cfg.World.Width/2, cfg.World.Height*7/8, cfg.Player.Radius, cfg.Player.MinRadius)

	enemies := lvl.Enemies.resolve(cfg.Enemies)
	enemies.MaxSize = s.difficulty.EnemyMaxSize(enemies.MaxSize, score, ticks)
	enemies.Count = s.difficulty.EnemyCount(enemies.Count, score, ticks)
	tunnels := lvl.Tunnels.resolve(config.PopulationConfig{Count: cfg.Tunnels.Count})
	splitters := lvl.Splitters.resolve(config.PopulationConfig{Count: cfg.Splitters.Count})
	s.world.Populate(enemies, tunnels.Count, splitters.Count, lvl.TunnelBonus)
	s.world.Speed = cfg.Scroll.InitialSpeed
	s.world.MinSpeed = s.pace

	s.messages.Reset()
	s.setupScript()
	s.messages.Push(s.tick, fmt.Sprintf("Level %d: %s", idx+1, lvl.Title), lvl.Description)
	s.emit(core.EventLevelStarted, "")
}

// Tick advances the simulation by one frame.
func (s *Session) Tick() {
	switch s.state {
	case StateUninitialized, StateWon:
		return
	case StateLost:
		s.tick++
		s.world.MinSpeed = s.pace
		s.world.EaseSpeed()
		s.world.Step(s.player, false, true)
		s.messages.Update(s.tick)
		return
	}

	s.tick++
	s.levelTicks++

	if s.player.Dead() {
		s.Lose("You were absorbed")
		s.messages.Update(s.tick)
		return
	}
	if s.player.Radius > math.Max(s.world.Width, s.world.Height) {
		s.Lose("You outgrew the world")
		s.messages.Update(s.tick)
		return
	}

	s.world.MinSpeed = s.targetSpeed()
	s.world.EaseSpeed()
	s.player.Steer(s.world.Width)

	finished := s.player.Progress > s.length()
	s.world.Step(s.player, true, !finished)
	s.player.Progress += s.world.Speed

	s.tickScript()
	if s.state == StateRunning {
		s.adviseSize()
		s.checkCompletion()
	}
	s.messages.Update(s.tick)
}

// SetLateralSpeed sets the player's sideways velocity per tick.
func (s *Session) SetLateralSpeed(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	s.player.Speed = v
}

// SetVerticalBias requests a faster, slower or neutral scroll pace.
func (s *Session) SetVerticalBias(b Bias) {
	if s.state != StateRunning {
		return
	}
	s.bias = b
}

// Restart starts again after the session ended. A lost level is retried;
// a won campaign starts over from the first level. It does nothing while
// running and reports whether it restarted.
func (s *Session) Restart() bool {
	switch s.state {
	case StateRunning:
		return false
	case StateLost:
		s.Start(s.levelIndex)
	case StateWon:
		s.banked = 0
		s.cycle = 0
		s.Start(0)
	default:
		s.banked = 0
		s.cycle = 0
		s.Start(s.opts.StartLevel)
	}
	return true
}

// NextLevel banks the level score and moves on. Past the last level the
// campaign is won, or wraps around in endless mode.
func (s *Session) NextLevel() {
	s.banked += s.player.Score
	next := s.levelIndex + 1
	if next < len(s.levels) {
		s.Start(next)
		return
	}
	if s.opts.Endless {
		s.cycle++
		s.Start(0)
		return
	}
	s.state = StateWon
	s.messages.Reset()
	s.messages.Push(s.tick, "You win!", fmt.Sprintf("Final score: %d", s.Score()))
	s.emit(core.EventCampaignWon, "")
}

// Lose ends the current attempt.
func (s *Session) Lose(reason string) {
	if s.state != StateRunning {
		return
	}
	s.state = StateLost
	s.player.dead = true
	s.bias = BiasNeutral
	s.world.MinSpeed = s.pace
	s.lossReason = reason
	s.messages.ClearSizing(s.tick)
	s.messages.Push(s.tick, "Game over", reason)
	s.emit(core.EventLevelFailed, reason)
}

// checkCompletion evaluates the finish line. Starting the next level resets
// progress, so repeated calls advance at most once.
func (s *Session) checkCompletion() {
	if s.state != StateRunning || s.player.Dead() {
		return
	}
	if s.player.Progress <= s.length() {
		return
	}
	band := s.Level().EndSize
	if band.Compare(s.player.Radius) == 0 {
		s.emit(core.EventLevelCleared, "")
		s.NextLevel()
		return
	}
	s.Lose(fmt.Sprintf("Finished outside the target size %s", band))
}

// adviseSize posts a sizing advisory when the player's standing against the
// level's size band changes, and withdraws it once the player is inside.
func (s *Session) adviseSize() {
	band := s.Level().EndSize
	if band == nil {
		return
	}
	c := band.Compare(s.player.Radius)
	if c == s.advice {
		return
	}
	s.advice = c
	switch c {
	case 0:
		s.messages.ClearSizing(s.tick)
	case -1:
		s.messages.PushSizing(s.tick, "Too small", fmt.Sprintf("Grow to %s before the finish", band))
	case 1:
		s.messages.PushSizing(s.tick, "Too big", fmt.Sprintf("Shrink to %s before the finish", band))
	}
}

func (s *Session) targetSpeed() float64 {
	switch s.bias {
	case BiasAccelerate:
		return math.Max(s.cfg.Scroll.AccelerateSpeed, s.pace)
	case BiasDecelerate:
		return math.Min(s.cfg.Scroll.DecelerateSpeed, s.pace)
	default:
		return s.pace
	}
}

func (s *Session) length() float64 {
	return s.Level().length(s.cfg.World.LevelLength)
}

func (s *Session) emit(kind core.EventKind, reason string) {
	lvl := s.Level()
	s.events = append(s.events, core.Event{
		Kind:   kind,
		Level:  s.levelIndex + 1,
		Title:  lvl.Title,
		Score:  s.Score(),
		Radius: s.player.Radius,
		Ticks:  s.levelTicks,
		Reason: reason,
	})
}

// DrainEvents returns and clears the events emitted since the last call.
func (s *Session) DrainEvents() []core.Event {
	ev := s.events
	s.events = nil
	return ev
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// LevelIndex returns the 0-indexed current level.
func (s *Session) LevelIndex() int { return s.levelIndex }

// Level returns the current level descriptor.
func (s *Session) Level() Level { return s.levels[s.levelIndex] }

// Levels returns the level table.
func (s *Session) Levels() []Level { return s.levels }

// Cycle returns how many times endless mode wrapped around.
func (s *Session) Cycle() int { return s.cycle }

// Player returns the current player.
func (s *Session) Player() *Player { return s.player }

// World returns the obstacle world.
func (s *Session) World() *World { return s.world }

// Messages returns the HUD message queue.
func (s *Session) Messages() *MessageQueue { return s.messages }

// Ticks returns the number of ticks simulated since creation.
func (s *Session) Ticks() uint64 { return s.tick }

// LossReason explains the last loss.
func (s *Session) LossReason() string { return s.lossReason }

// Score returns the total score: banked levels plus the level in progress.
func (s *Session) Score() int {
	if s.state == StateWon {
		return s.banked
	}
	return s.banked + s.player.Score
}

// Progress returns the fraction of the current level completed, 0..1.
func (s *Session) Progress() float64 {
	if s.state == StateUninitialized {
		return 0
	}
	return core.ClampF(s.player.Progress/s.length(), 0, 1)
}

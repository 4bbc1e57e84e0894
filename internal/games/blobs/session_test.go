package blobs

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/blob-arcade/internal/config"
	"github.com/vovakirdan/blob-arcade/internal/core"
)

func testConfig() config.BlobsConfig {
	cfg := config.DefaultBlobsConfig()
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 0
	return cfg
}

// emptyLevel spawns no obstacles so tests can place them by hand.
func emptyLevel(title string) Level {
	return Level{
		Title:     title,
		Enemies:   Population{Count: intPtr(0)},
		Tunnels:   Population{Count: intPtr(0)},
		Splitters: Population{Count: intPtr(0)},
	}
}

func newTestSession(levels ...Level) *Session {
	s := NewSession(testConfig(), levels, Options{Seed: 42, TickRate: 60})
	s.Start(0)
	return s
}

func eventKinds(events []core.Event) []core.EventKind {
	kinds := make([]core.EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	return kinds
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(testConfig(), nil, Options{})

	if s.State() != StateUninitialized {
		t.Errorf("state = %v, expected uninitialized", s.State())
	}
	if len(s.Levels()) != len(DefaultLevels()) {
		t.Errorf("empty level list should use the built-in campaign")
	}
	s.Tick()
	if s.Ticks() != 0 {
		t.Error("Tick before Start should do nothing")
	}
}

func TestStartPopulatesLevel(t *testing.T) {
	s := NewSession(testConfig(), DefaultLevels(), Options{Seed: 1})
	s.Start(2) // "Slim down": 8 splitters

	cfg := testConfig()
	w := s.World()
	if len(w.Enemies) != cfg.Enemies.Count {
		t.Errorf("enemies = %d, expected %d", len(w.Enemies), cfg.Enemies.Count)
	}
	if len(w.Tunnels) != cfg.Tunnels.Count {
		t.Errorf("tunnels = %d, expected %d", len(w.Tunnels), cfg.Tunnels.Count)
	}
	if len(w.Splitters) != 8 {
		t.Errorf("splitters = %d, expected 8", len(w.Splitters))
	}
	p := s.Player()
	if p.X != 300 || p.Y != 700 || p.Radius != 10 {
		t.Errorf("player = %+v, expected (300, 700) r=10", p.Circle)
	}
	if w.Speed != cfg.Scroll.InitialSpeed {
		t.Errorf("speed = %v, expected the initial burst %v", w.Speed, cfg.Scroll.InitialSpeed)
	}
	if m := s.Messages().Head(); m == nil || m.Title != "Level 3: Slim down" {
		t.Errorf("intro message = %+v", m)
	}
	if kinds := eventKinds(s.DrainEvents()); !reflect.DeepEqual(kinds, []core.EventKind{core.EventLevelStarted}) {
		t.Errorf("events = %v", kinds)
	}
}

func TestStartClampsLevelIndex(t *testing.T) {
	s := newTestSession(emptyLevel("a"), emptyLevel("b"))
	s.Start(99)
	if s.LevelIndex() != 1 {
		t.Errorf("index = %d, expected 1", s.LevelIndex())
	}
	s.Start(-3)
	if s.LevelIndex() != 0 {
		t.Errorf("index = %d, expected 0", s.LevelIndex())
	}
}

func TestPopulationFallbacks(t *testing.T) {
	cfg := testConfig()
	cfg.World.LevelLength = 0

	neg := emptyLevel("negative")
	neg.Enemies = Population{Count: intPtr(-5)}
	s := NewSession(cfg, []Level{neg, {Title: "defaults"}}, Options{Seed: 3})

	s.Start(0)
	if len(s.World().Enemies) != 0 {
		t.Errorf("negative count should spawn nothing, got %d", len(s.World().Enemies))
	}
	if s.length() != DefaultLevelLength {
		t.Errorf("length = %v, expected %v", s.length(), DefaultLevelLength)
	}

	s.Start(1)
	if len(s.World().Enemies) != cfg.Enemies.Count {
		t.Errorf("nil count should use the configured %d, got %d", cfg.Enemies.Count, len(s.World().Enemies))
	}
}

func TestSpeedEasesTowardBias(t *testing.T) {
	s := newTestSession(emptyLevel("pace"))
	w := s.World()

	for i := 0; i < 40; i++ {
		s.Tick()
	}
	if w.Speed != 2 {
		t.Fatalf("speed = %v, expected neutral pace 2", w.Speed)
	}

	s.SetVerticalBias(BiasAccelerate)
	s.Tick()
	if w.Speed != 3 {
		t.Errorf("speed = %v, expected one step toward 10", w.Speed)
	}
	for i := 0; i < 20; i++ {
		s.Tick()
	}
	if w.Speed != 10 {
		t.Errorf("speed = %v, expected 10", w.Speed)
	}

	s.SetVerticalBias(BiasDecelerate)
	for i := 0; i < 20; i++ {
		s.Tick()
	}
	if w.Speed != 1 {
		t.Errorf("speed = %v, expected 1", w.Speed)
	}
}

func TestPlayerClampedToWorld(t *testing.T) {
	s := newTestSession(emptyLevel("clamp"))

	s.SetLateralSpeed(1000)
	s.Tick()
	if p := s.Player(); p.X != 590 {
		t.Errorf("x = %v, expected 590", p.X)
	}

	s.SetLateralSpeed(-4)
	s.Tick()
	if p := s.Player(); p.X != 586 {
		t.Errorf("x = %v, expected 586", p.X)
	}
}

func TestTunnelWallScenario(t *testing.T) {
	lvl := emptyLevel("tunnel")
	lvl.Tunnels = Population{Count: intPtr(1)}
	s := newTestSession(lvl)
	s.DrainEvents()

	p := s.Player()
	p.Radius = 5
	tn := s.World().Tunnels[0]
	tn.Start, tn.End = 400, 490
	tn.Y = p.Y + 5
	s.World().Speed = 0 // eases to 1 on the next tick

	s.Tick()
	if p.Radius != 0 {
		t.Fatalf("radius = %v, expected exactly 0 after hitting the wall", p.Radius)
	}
	if s.State() != StateRunning {
		t.Fatalf("state = %v, expected running until the next tick", s.State())
	}

	s.Tick()
	if s.State() != StateLost {
		t.Fatalf("state = %v, expected lost", s.State())
	}
	if kinds := eventKinds(s.DrainEvents()); !reflect.DeepEqual(kinds, []core.EventKind{core.EventLevelFailed}) {
		t.Errorf("events = %v", kinds)
	}
}

func TestSplitterScenario(t *testing.T) {
	lvl := emptyLevel("split")
	lvl.Splitters = Population{Count: intPtr(1)}
	s := newTestSession(lvl)

	p := s.Player()
	sp := s.World().Splitters[0]
	sp.X, sp.Y = p.X, p.Y-1
	s.World().Speed = 0

	s.Tick()
	if p.Radius != 5 {
		t.Fatalf("radius = %v, expected 5", p.Radius)
	}
	if sp.X == p.X && sp.Y == p.Y {
		t.Error("splitter should have moved")
	}

	s.Tick()
	if p.Radius != 5 {
		t.Errorf("radius = %v, expected a single halving per contact", p.Radius)
	}
}

func TestAutoPassWithoutSizeBand(t *testing.T) {
	lvl := emptyLevel("short")
	lvl.Length = 100
	s := newTestSession(lvl)
	s.DrainEvents()

	// Progress 29 + 28 + 27 + 26 crosses 100 on the fourth tick.
	for i := 0; i < 3; i++ {
		s.Tick()
		if s.State() != StateRunning {
			t.Fatalf("tick %d: finished early", i+1)
		}
	}
	s.Tick()

	if s.State() != StateWon {
		t.Fatalf("state = %v, expected won", s.State())
	}
	expected := []core.EventKind{core.EventLevelCleared, core.EventCampaignWon}
	if kinds := eventKinds(s.DrainEvents()); !reflect.DeepEqual(kinds, expected) {
		t.Errorf("events = %v, expected %v", kinds, expected)
	}

	before := s.Ticks()
	s.Tick()
	if s.Ticks() != before {
		t.Error("won state should be terminal")
	}
}

func TestFinishOutsideBandLoses(t *testing.T) {
	lvl := emptyLevel("bulk")
	lvl.Length = 50
	lvl.EndSize = &SizeBand{Min: floatPtr(25)}
	s := newTestSession(lvl)

	for i := 0; i < 5 && s.State() == StateRunning; i++ {
		s.Tick()
	}
	if s.State() != StateLost {
		t.Fatalf("state = %v, expected lost", s.State())
	}
	if s.LossReason() == "" {
		t.Error("loss should carry a reason")
	}
}

func TestCompletionIsIdempotent(t *testing.T) {
	second := emptyLevel("second")
	second.EndSize = &SizeBand{Min: floatPtr(5), Max: floatPtr(15)}
	first := emptyLevel("first")
	first.EndSize = &SizeBand{Min: floatPtr(5), Max: floatPtr(15)}
	s := newTestSession(first, second)
	s.DrainEvents()

	s.Player().Progress = s.length() + 1
	s.checkCompletion()
	s.checkCompletion()

	if s.LevelIndex() != 1 {
		t.Fatalf("index = %d, expected 1", s.LevelIndex())
	}
	expected := []core.EventKind{core.EventLevelCleared, core.EventLevelStarted}
	if kinds := eventKinds(s.DrainEvents()); !reflect.DeepEqual(kinds, expected) {
		t.Errorf("events = %v, expected %v", kinds, expected)
	}
	if s.Player().Progress != 0 {
		t.Errorf("progress = %v, expected a fresh level", s.Player().Progress)
	}
}

func TestScoreBanking(t *testing.T) {
	s := newTestSession(emptyLevel("one"), emptyLevel("two"))
	s.Player().Score = 120
	s.NextLevel()

	if s.Score() != 120 {
		t.Errorf("score = %d, expected banked 120", s.Score())
	}
	s.Player().Score = 30
	if s.Score() != 150 {
		t.Errorf("score = %d, expected 150", s.Score())
	}
	s.NextLevel()
	if s.State() != StateWon || s.Score() != 150 {
		t.Errorf("state = %v score = %d, expected won with 150", s.State(), s.Score())
	}
}

func TestDeathChecks(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
	}{
		{"too small", 0.5},
		{"overgrown", 801},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(emptyLevel("death"))
			s.Player().Radius = tc.radius
			s.Tick()
			if s.State() != StateLost {
				t.Errorf("state = %v, expected lost", s.State())
			}
			if !s.Player().Dead() {
				t.Error("player should be marked dead")
			}
		})
	}
}

func TestZeroRadiusDiesWithoutMinRadius(t *testing.T) {
	cfg := testConfig()
	cfg.Player.MinRadius = 0
	lvl := emptyLevel("no minimum")
	lvl.Length = 100
	s := NewSession(cfg, []Level{lvl}, Options{Seed: 42, TickRate: 60})
	s.Start(0)

	s.Player().Radius = 0
	if !s.Player().Dead() {
		t.Fatal("a zero radius player should be dead")
	}
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if s.State() != StateLost {
		t.Errorf("state = %v, expected lost", s.State())
	}
	if s.Player().Progress >= 100 {
		t.Errorf("progress = %v, a dead player should not advance", s.Player().Progress)
	}
}

func TestLoseResetsPace(t *testing.T) {
	s := newTestSession(emptyLevel("lose"))
	s.SetVerticalBias(BiasAccelerate)
	s.Tick()
	s.Lose("test")

	if s.World().MinSpeed != 2 {
		t.Errorf("min speed = %v, expected neutral 2", s.World().MinSpeed)
	}
	s.SetVerticalBias(BiasAccelerate)
	for i := 0; i < 50; i++ {
		s.Tick()
	}
	if s.World().Speed != 2 {
		t.Errorf("speed = %v, expected to settle at neutral while lost", s.World().Speed)
	}
	if s.Player().Progress > 29*30 {
		t.Error("progress should freeze while lost")
	}

	s.Lose("again")
	if kinds := eventKinds(s.DrainEvents()); len(kinds) != 2 {
		t.Errorf("events = %v, a second Lose should be ignored", kinds)
	}
}

func TestRestart(t *testing.T) {
	s := newTestSession(emptyLevel("one"), emptyLevel("two"))
	if s.Restart() {
		t.Fatal("Restart should be rejected while running")
	}

	s.Player().Score = 40
	s.NextLevel()
	s.Lose("test")
	if !s.Restart() {
		t.Fatal("Restart should be accepted after a loss")
	}
	if s.LevelIndex() != 1 || s.State() != StateRunning {
		t.Errorf("index = %d state = %v, expected to retry level 2", s.LevelIndex(), s.State())
	}
	if s.Score() != 40 {
		t.Errorf("score = %d, expected banked score kept", s.Score())
	}

	s.NextLevel()
	if s.State() != StateWon {
		t.Fatalf("state = %v, expected won", s.State())
	}
	s.Restart()
	if s.LevelIndex() != 0 || s.Score() != 0 {
		t.Errorf("index = %d score = %d, expected a fresh campaign", s.LevelIndex(), s.Score())
	}
}

func TestEndlessWraps(t *testing.T) {
	cfg := testConfig()
	s := NewSession(cfg, []Level{emptyLevel("a"), emptyLevel("b")}, Options{Seed: 1, Endless: true})
	s.Restart()
	s.NextLevel()
	s.NextLevel()

	if s.State() != StateRunning {
		t.Fatalf("state = %v, endless should never be won", s.State())
	}
	if s.LevelIndex() != 0 || s.Cycle() != 1 {
		t.Errorf("index = %d cycle = %d, expected 0 and 1", s.LevelIndex(), s.Cycle())
	}
	if s.World().MinSpeed != cfg.Scroll.NeutralSpeed+cfg.Scroll.CycleBonus {
		t.Errorf("pace = %v, expected cycle bonus applied", s.World().MinSpeed)
	}
}

func TestSizeAdvisory(t *testing.T) {
	lvl := emptyLevel("bulk")
	lvl.EndSize = &SizeBand{Min: floatPtr(25)}
	s := newTestSession(lvl)
	q := s.Messages()

	s.Tick()
	if q.SizingCount() != 1 {
		t.Fatalf("sizing messages = %d, expected 1", q.SizingCount())
	}
	s.Tick()
	s.Tick()
	if q.SizingCount() != 1 || q.Len() != 2 {
		t.Errorf("advisory should not repeat while unchanged: sizing=%d len=%d", q.SizingCount(), q.Len())
	}

	s.Player().Radius = 30
	s.Tick()
	if q.SizingCount() != 0 {
		t.Errorf("advisory should clear inside the band, got %d", q.SizingCount())
	}
}

func TestCountdownScript(t *testing.T) {
	lvl := emptyLevel("clock")
	lvl.Script = Script{Kind: ScriptCountdown, Seconds: 2}
	s := NewSession(testConfig(), []Level{lvl}, Options{Seed: 1, TickRate: 10})
	s.Start(0)

	if left, ok := s.TimeLeft(); !ok || left != 2 {
		t.Fatalf("TimeLeft = %v, %v", left, ok)
	}
	for i := 0; i < 19; i++ {
		s.Tick()
	}
	if s.State() != StateRunning {
		t.Fatalf("state = %v after 19 ticks", s.State())
	}
	s.Tick()
	if s.State() != StateLost || s.LossReason() != "Out of time" {
		t.Errorf("state = %v reason = %q", s.State(), s.LossReason())
	}
}

func TestResizeWaveScript(t *testing.T) {
	lvl := emptyLevel("tides")
	lvl.Enemies = Population{Count: intPtr(10)}
	lvl.Script = Script{Kind: ScriptResizeWave, Interval: 1, MinSize: 50, MaxSize: 60}
	s := NewSession(testConfig(), []Level{lvl}, Options{Seed: 1, TickRate: 10})
	s.Start(0)

	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if s.script.waves != 1 {
		t.Fatalf("waves = %d, expected 1", s.script.waves)
	}
	for _, e := range s.World().Enemies {
		if e.Alive() && e.Radius < 50 {
			t.Errorf("enemy radius %v, expected re-rolled into [50, 60]", e.Radius)
		}
	}
}

func TestFixedSetupScript(t *testing.T) {
	lvl := emptyLevel("big")
	lvl.Script = Script{Kind: ScriptFixedSetup, PlayerRadius: 40}
	s := newTestSession(lvl)

	if s.Player().Radius != 40 {
		t.Errorf("radius = %v, expected 40", s.Player().Radius)
	}
}

func TestRecycleSuppressedAfterFinish(t *testing.T) {
	lvl := emptyLevel("end")
	lvl.Enemies = Population{Count: intPtr(1)}
	lvl.EndSize = &SizeBand{Max: floatPtr(1)}
	s := newTestSession(lvl)

	p := s.Player()
	p.Progress = s.length() + 1000
	e := s.World().Enemies[0]
	e.X, e.Y = 10, 900

	// Finishing above the band loses the level, but only after the world
	// has moved without recycling.
	s.Tick()
	if e.Top() <= s.World().Height {
		t.Errorf("enemy top %v: should not be recycled past the finish line", e.Top())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := NewSession(testConfig(), DefaultLevels(), Options{Seed: 1234, TickRate: 60})
		s.Start(0)
		for i := 0; i < 600; i++ {
			switch (i / 40) % 3 {
			case 0:
				s.SetLateralSpeed(-4)
			case 1:
				s.SetLateralSpeed(4)
			default:
				s.SetLateralSpeed(0)
			}
			s.Tick()
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}

package blobs

import "github.com/vovakirdan/blob-arcade/internal/core"

// EntityView is the render data of one live entity.
type EntityView struct {
	Kind      Kind
	X, Y      float64
	Radius    float64
	Primary   core.Color
	Secondary core.Color // Outline
	Rotation  float64    // Splitters only

	// Tunnels only: gap edges and wall thickness. Y is the bottom of the wall.
	Start, End, Height float64
}

// MessageView is the HUD notice currently on display.
type MessageView struct {
	Title   string
	Body    string
	Opacity float64
}

// Snapshot captures everything a renderer needs, and doubles as the
// determinism fingerprint in tests.
type Snapshot struct {
	Tick       uint64
	State      State
	Level      int // 1-indexed
	LevelCount int
	Title      string
	Cycle      int
	Score      int
	Radius     float64
	Progress   float64 // 0..1
	Speed      float64
	Target     string  // Size band, "any" when unrestricted
	TimeLeft   float64 // Seconds, negative when the level has no countdown
	LossReason string

	Player   EntityView
	Entities []EntityView
	Message  *MessageView
}

// Snapshot returns the current render state. Dead entities are omitted.
func (s *Session) Snapshot() Snapshot {
	lvl := s.Level()
	snap := Snapshot{
		Tick:       s.tick,
		State:      s.state,
		Level:      s.levelIndex + 1,
		LevelCount: len(s.levels),
		Title:      lvl.Title,
		Cycle:      s.cycle,
		Score:      s.Score(),
		Radius:     s.player.Radius,
		Progress:   s.Progress(),
		Speed:      s.world.Speed,
		Target:     lvl.EndSize.String(),
		TimeLeft:   -1,
		LossReason: s.lossReason,
		Player:     s.player.View(),
	}
	if left, ok := s.TimeLeft(); ok {
		snap.TimeLeft = left
	}

	objs := s.world.Objects()
	snap.Entities = make([]EntityView, 0, len(objs))
	for _, obj := range objs {
		if v, ok := obj.View(s.player); ok {
			snap.Entities = append(snap.Entities, v)
		}
	}

	if m := s.messages.Head(); m != nil {
		snap.Message = &MessageView{Title: m.Title, Body: m.Body, Opacity: m.Opacity}
	}
	return snap
}

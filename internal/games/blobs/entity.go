package blobs

import (
	"github.com/vovakirdan/blob-arcade/internal/core"
)

// Kind identifies the shape of a world entity for renderers.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindSplitter
	KindTunnel
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindSplitter:
		return "splitter"
	case KindTunnel:
		return "tunnel"
	default:
		return "unknown"
	}
}

// Object is a scrolling world entity the player can run into.
type Object interface {
	// Top returns the topmost y extent; the object is off-screen once this
	// passes the world height.
	Top() float64

	// Advance scrolls the object down by dy.
	Advance(dy float64)

	// Interact applies the object's effect on the player.
	Interact(w *World, p *Player)

	// Recycle re-randomizes the object in place above the viewport.
	Recycle(w *World)

	// View returns render data, or false when the object is inert.
	View(p *Player) (EntityView, bool)
}

// Player is the blob steered by the user. It is recreated on every level attempt.
type Player struct {
	core.Circle
	Speed     float64 // Lateral velocity per tick
	Score     int     // Points earned in the current level
	Progress  float64 // Distance travelled in the current level
	minRadius float64
	dead      bool
}

// NewPlayer creates a player at the given position.
func NewPlayer(x, y, radius, minRadius float64) *Player {
	return &Player{
		Circle:    core.Circle{X: x, Y: y, Radius: radius},
		minRadius: minRadius,
	}
}

// Dead reports whether the player has been consumed or the level was lost.
// A zero radius is always dead, whatever the configured minimum.
func (p *Player) Dead() bool {
	return p.dead || p.Radius <= 0 || p.Radius < p.minRadius
}

// Steer moves the player by its lateral speed, keeping it inside [0, width].
func (p *Player) Steer(width float64) {
	p.X = core.ClampF(p.X+p.Speed, p.Radius, width-p.Radius)
}

// View returns the player's render data.
func (p *Player) View() EntityView {
	return EntityView{
		Kind:      KindPlayer,
		X:         p.X,
		Y:         p.Y,
		Radius:    p.Radius,
		Primary:   core.ColorGray,
		Secondary: core.ColorDarkGreen,
	}
}

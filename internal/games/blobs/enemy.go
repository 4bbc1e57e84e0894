package blobs

import (
	"github.com/vovakirdan/blob-arcade/internal/core"
)

// Enemy is a blob the player either absorbs or is absorbed by.
type Enemy struct {
	core.Circle
	MinSize  float64
	MaxSize  float64
	Dominant bool // Larger than the player as of the last interaction
}

func newEnemy(w *World, minSize, maxSize float64) *Enemy {
	e := &Enemy{MinSize: minSize, MaxSize: maxSize}
	e.Recycle(w)
	return e
}

// Top returns the topmost y extent.
func (e *Enemy) Top() float64 {
	return e.Y - e.Radius
}

// Advance scrolls the enemy down.
func (e *Enemy) Advance(dy float64) {
	e.Y += dy
}

// Interact tints the enemy relative to the player, then resolves contact.
func (e *Enemy) Interact(_ *World, p *Player) {
	e.Dominant = e.Radius > p.Radius
	p.Score += Resolve(&e.Circle, &p.Circle)
}

// Recycle respawns the enemy above the viewport with a fresh radius.
func (e *Enemy) Recycle(w *World) {
	e.Radius = max(e.MinSize, w.rng.Float64()*e.MaxSize)
	e.X = w.rng.Float64() * w.Width
	e.Y = w.rng.Float64()*w.Height - w.Height
	e.Dominant = false
}

// View returns the enemy's render data.
func (e *Enemy) View(p *Player) (EntityView, bool) {
	if !e.Alive() {
		return EntityView{}, false
	}
	color := core.ColorLavender
	if e.Radius > p.Radius {
		color = core.ColorPink
	}
	return EntityView{
		Kind:      KindEnemy,
		X:         e.X,
		Y:         e.Y,
		Radius:    e.Radius,
		Primary:   color,
		Secondary: core.ColorDarkGreen,
	}, true
}

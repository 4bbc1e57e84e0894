package blobs

import (
	"github.com/vovakirdan/blob-arcade/internal/core"
)

// Splitter is a power-up that halves the player on contact.
// Its radius only sets the render and off-screen extent.
type Splitter struct {
	core.Circle
	Rotation float64
	Spin     float64
}

func newSplitter(w *World, radius, spin float64) *Splitter {
	s := &Splitter{Circle: core.Circle{Radius: radius}, Spin: spin}
	s.Recycle(w)
	return s
}

// Top returns the topmost y extent.
func (s *Splitter) Top() float64 {
	return s.Y - s.Radius
}

// Advance scrolls the splitter down and spins it.
func (s *Splitter) Advance(dy float64) {
	s.Y += dy
	s.Rotation += s.Spin
}

// Interact halves the player when the splitter's center lies inside it.
// The splitter then respawns immediately so it triggers once per contact.
func (s *Splitter) Interact(w *World, p *Player) {
	if p.Radius <= 0 || core.Distance(s.Circle, p.Circle) >= p.Radius {
		return
	}
	p.Radius /= 2
	w.SplitsTaken++
	s.Recycle(w)
}

// Recycle moves the splitter to a random position above the viewport.
func (s *Splitter) Recycle(w *World) {
	s.X = w.rng.Float64() * w.Width
	s.Y = w.rng.Float64()*w.Height - w.Height
}

// View returns the splitter's render data.
func (s *Splitter) View(_ *Player) (EntityView, bool) {
	return EntityView{
		Kind:      KindSplitter,
		X:         s.X,
		Y:         s.Y,
		Radius:    s.Radius,
		Primary:   core.ColorBrightGreen,
		Secondary: core.ColorDarkGreen,
		Rotation:  s.Rotation,
	}, true
}

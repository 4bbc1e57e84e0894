package blobs

import (
	"github.com/vovakirdan/blob-arcade/internal/core"
)

// Tunnel is a horizontal wall spanning the world with a single passable gap.
// The wall band covers [Y-Height, Y].
type Tunnel struct {
	Y      float64
	Start  float64 // Left edge of the gap
	End    float64 // Right edge of the gap
	Width  float64 // Gap width
	Height float64 // Wall thickness
	Offset float64 // Minimum distance of the gap from the world edges
	Gate   core.Circle
	Passed bool
}

func newTunnel(w *World, gapWidth, height, offset float64) *Tunnel {
	t := &Tunnel{Width: gapWidth, Height: height, Offset: offset}
	t.Recycle(w)
	return t
}

// Top returns the topmost y extent.
func (t *Tunnel) Top() float64 {
	return t.Y - t.Height
}

// Advance scrolls the tunnel down.
func (t *Tunnel) Advance(dy float64) {
	t.Y += dy
}

// HitsWall reports whether c touches either solid panel beside the gap.
func (t *Tunnel) HitsWall(c core.Circle, worldWidth float64) bool {
	top := t.Top()
	return core.CircleInRect(c, 0, top, t.Start, t.Height) ||
		core.CircleInRect(c, t.End, top, worldWidth-t.End, t.Height)
}

// InBand reports whether c touches the full-width wall band, gap included.
func (t *Tunnel) InBand(c core.Circle, worldWidth float64) bool {
	return core.CircleInRect(c, 0, t.Top(), worldWidth, t.Height)
}

// Interact kills the player outright on wall contact. Otherwise, once the
// tunnel is fully below the player, it counts as passed exactly once.
func (t *Tunnel) Interact(w *World, p *Player) {
	if p.Radius <= 0 {
		return
	}
	if t.HitsWall(p.Circle, w.Width) {
		p.Radius = 0
		return
	}
	if !t.Passed && t.Top() > p.Y+p.Radius {
		t.Passed = true
		w.TunnelsPassed++
		p.Score += w.TunnelBonus
	}
}

// updateGate recenters the helper circle on the gap.
func (t *Tunnel) updateGate() {
	t.Gate = core.Circle{
		X:      (t.Start + t.End) / 2,
		Y:      t.Y - t.Height/2,
		Radius: 2 * t.Height,
	}
}

// Recycle moves the tunnel above the viewport with a new gap position.
func (t *Tunnel) Recycle(w *World) {
	t.Y = w.rng.Float64()*w.Height - w.Height
	t.Start = core.ClampF(w.rng.Float64()*w.Width, t.Offset, w.Width-t.Offset-t.Width)
	t.End = t.Start + t.Width
	t.Passed = false
	t.updateGate()
}

// View returns the tunnel's render data. X/Y/Radius describe the gate.
func (t *Tunnel) View(_ *Player) (EntityView, bool) {
	return EntityView{
		Kind:      KindTunnel,
		X:         t.Gate.X,
		Y:         t.Y,
		Radius:    t.Gate.Radius,
		Primary:   core.ColorSilver,
		Secondary: core.ColorDarkGreen,
		Start:     t.Start,
		End:       t.End,
		Height:    t.Height,
	}, true
}

package blobs

import (
	"math/rand"

	"github.com/vovakirdan/blob-arcade/internal/config"
	"github.com/vovakirdan/blob-arcade/internal/core"
)

// World owns the scrolling obstacles and the scroll speed.
// Obstacle slices are sized once per level and recycled in place afterwards.
type World struct {
	Width  float64
	Height float64

	Enemies   []*Enemy
	Tunnels   []*Tunnel
	Splitters []*Splitter

	Speed    float64 // Current scroll speed per tick
	MinSpeed float64 // Speed the scroll eases toward
	Ease     float64 // Max speed change per tick

	TunnelBonus   int // Points per tunnel passed
	TunnelsPassed int
	SplitsTaken   int

	objects     []Object // Enemies, tunnels, splitters; rebuilt by Populate
	tunnelCfg   config.BlobsTunnels
	splitterCfg config.BlobsSplitters
	rng         *rand.Rand
}

// NewWorld creates an empty world.
func NewWorld(cfg config.BlobsConfig, rng *rand.Rand) *World {
	return &World{
		Width:       cfg.World.Width,
		Height:      cfg.World.Height,
		Ease:        cfg.Scroll.Ease,
		tunnelCfg:   cfg.Tunnels,
		splitterCfg: cfg.Splitters,
		rng:         rng,
	}
}

// Populate replaces all obstacles with fresh ones.
func (w *World) Populate(enemies config.PopulationConfig, tunnels, splitters int, tunnelBonus int) {
	w.Enemies = make([]*Enemy, max(enemies.Count, 0))
	for i := range w.Enemies {
		w.Enemies[i] = newEnemy(w, enemies.MinSize, enemies.MaxSize)
	}
	w.Tunnels = make([]*Tunnel, max(tunnels, 0))
	for i := range w.Tunnels {
		w.Tunnels[i] = newTunnel(w, w.tunnelCfg.GapWidth, w.tunnelCfg.Height, w.tunnelCfg.Offset)
	}
	w.Splitters = make([]*Splitter, max(splitters, 0))
	for i := range w.Splitters {
		w.Splitters[i] = newSplitter(w, w.splitterCfg.Radius, w.splitterCfg.Spin)
	}
	w.objects = make([]Object, 0, len(w.Enemies)+len(w.Tunnels)+len(w.Splitters))
	for _, e := range w.Enemies {
		w.objects = append(w.objects, e)
	}
	for _, t := range w.Tunnels {
		w.objects = append(w.objects, t)
	}
	for _, s := range w.Splitters {
		w.objects = append(w.objects, s)
	}
	w.TunnelBonus = tunnelBonus
	w.TunnelsPassed = 0
	w.SplitsTaken = 0
}

// Objects returns every obstacle in interaction order: enemies, tunnels,
// splitters. The slice is shared and only changes on Populate.
func (w *World) Objects() []Object {
	return w.objects
}

// EaseSpeed moves the scroll speed toward MinSpeed by at most Ease.
func (w *World) EaseSpeed() {
	switch {
	case w.Speed > w.MinSpeed:
		w.Speed = max(w.Speed-w.Ease, w.MinSpeed)
	case w.Speed < w.MinSpeed:
		w.Speed = min(w.Speed+w.Ease, w.MinSpeed)
	}
}

// Step scrolls every object, lets it act on the player when interact is set,
// and recycles objects that left the viewport when recycle is set.
// Tunnel gates are cleared afterwards.
func (w *World) Step(p *Player, interact, recycle bool) {
	for _, obj := range w.Objects() {
		obj.Advance(w.Speed)
		if interact {
			obj.Interact(w, p)
		}
		if recycle && w.offscreen(obj) {
			obj.Recycle(w)
		}
	}
	w.clearGates()
}

func (w *World) offscreen(obj Object) bool {
	return obj.Top() > w.Height
}

// clearGates kills enemies inside a tunnel's wall band or near its gap,
// where the player would have no room to dodge them.
func (w *World) clearGates() {
	for _, t := range w.Tunnels {
		t.updateGate()
		for _, e := range w.Enemies {
			if !e.Alive() {
				continue
			}
			if t.InBand(e.Circle, w.Width) || core.CirclesOverlap(e.Circle, t.Gate) {
				e.Radius = 0
			}
		}
	}
}

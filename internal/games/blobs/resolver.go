package blobs

import (
	"math"

	"github.com/vovakirdan/blob-arcade/internal/core"
)

// Resolve runs the mass-transfer law between an obstacle and the player.
//
// While both circles are alive and overlap, the larger one grows by the
// inverse of its own radius and the smaller one shrinks by the inverse of
// its own radius, clamped at zero. The player counts as the larger side on
// a tie. Resolve returns the number of exchange steps taken; every step is
// worth one point to the player.
func Resolve(obstacle, player *core.Circle) int {
	steps := 0
	for overlapping(obstacle, player) {
		large, small := player, obstacle
		if obstacle.Radius > player.Radius {
			large, small = obstacle, player
		}
		exchange(large, small)
		steps++
	}
	return steps
}

// overlapping checks both radii before any division happens.
func overlapping(a, b *core.Circle) bool {
	return a.Radius > 0 && b.Radius > 0 && core.Overlap(*a, *b) > 0
}

// exchange performs one step of the law. Both radii must be positive.
func exchange(large, small *core.Circle) {
	large.Radius += 1 / large.Radius
	small.Radius = math.Max(small.Radius-1/small.Radius, 0)
}

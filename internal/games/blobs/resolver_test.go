package blobs

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/blob-arcade/internal/core"
)

func TestResolveOverlapStrictlyDecreases(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		r := 1 + rng.Float64()*40
		R := r + 0.5 + rng.Float64()*40
		if rng.Intn(2) == 0 {
			r, R = R, r
		}
		d := rng.Float64() * (r + R)
		obstacle := core.Circle{X: 100, Y: 100, Radius: r}
		player := core.Circle{X: 100 + d, Y: 100, Radius: R}

		prev := core.Overlap(obstacle, player)
		steps := 0
		for overlapping(&obstacle, &player) {
			large, small := &player, &obstacle
			if obstacle.Radius > player.Radius {
				large, small = &obstacle, &player
			}
			exchange(large, small)
			steps++
			if small.Radius == 0 {
				break // consumed; the overlap no longer matters
			}

			cur := core.Overlap(obstacle, player)
			if cur >= prev {
				t.Fatalf("pair %d step %d: overlap %v did not decrease from %v", i, steps, cur, prev)
			}
			prev = cur
			if steps > 100000 {
				t.Fatalf("pair %d: no termination", i)
			}
		}
		if obstacle.Radius > 0 && player.Radius > 0 && prev > 0 {
			t.Fatalf("pair %d: loop ended while still overlapping", i)
		}
	}
}

func TestResolveTieStep(t *testing.T) {
	tests := []struct {
		radius, dist float64
	}{
		{15, 5},
		{8, 1},
		{30, 40},
	}

	for _, tc := range tests {
		obstacle := core.Circle{X: 0, Y: 0, Radius: tc.radius}
		player := core.Circle{X: tc.dist, Y: 0, Radius: tc.radius}

		// Equal radii: the player counts as larger, and 1/R == 1/r keeps the
		// radius sum, so the first step leaves the overlap unchanged.
		prev := core.Overlap(obstacle, player)
		exchange(&player, &obstacle)
		cur := core.Overlap(obstacle, player)
		if cur > prev+1e-9 {
			t.Fatalf("r=%v d=%v: tie step grew overlap %v -> %v", tc.radius, tc.dist, prev, cur)
		}
		if math.Abs(cur-prev) > 1e-9 {
			t.Errorf("r=%v d=%v: tie step overlap %v -> %v, expected unchanged", tc.radius, tc.dist, prev, cur)
		}
		prev = cur

		// The radii now differ and every later step shrinks the overlap.
		steps := 1
		for overlapping(&obstacle, &player) {
			exchange(&player, &obstacle)
			steps++
			if obstacle.Radius == 0 {
				break
			}
			cur := core.Overlap(obstacle, player)
			if cur >= prev {
				t.Fatalf("r=%v d=%v step %d: overlap %v did not decrease from %v", tc.radius, tc.dist, steps, cur, prev)
			}
			prev = cur
		}
	}
}

func TestResolveMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		r := 0.5 + rng.Float64()*50
		R := 0.5 + rng.Float64()*50
		d := rng.Float64() * (r + R) * 1.2
		obstacle := core.Circle{X: 0, Y: 0, Radius: r}
		player := core.Circle{X: 0, Y: d, Radius: R}

		steps := Resolve(&obstacle, &player)

		largerIsObstacle := r > R
		if largerIsObstacle {
			if obstacle.Radius < r || player.Radius > R {
				t.Fatalf("pair %d: obstacle %v->%v, player %v->%v", i, r, obstacle.Radius, R, player.Radius)
			}
		} else {
			if player.Radius < R || obstacle.Radius > r {
				t.Fatalf("pair %d: player %v->%v, obstacle %v->%v", i, R, player.Radius, r, obstacle.Radius)
			}
		}
		if steps == 0 && (obstacle.Radius != r || player.Radius != R) {
			t.Fatalf("pair %d: radii changed without a step", i)
		}
		if math.IsNaN(obstacle.Radius) || math.IsNaN(player.Radius) ||
			math.IsInf(obstacle.Radius, 0) || math.IsInf(player.Radius, 0) {
			t.Fatalf("pair %d: non-finite radius", i)
		}
		if obstacle.Radius < 0 || player.Radius < 0 {
			t.Fatalf("pair %d: negative radius", i)
		}
	}
}

func TestResolveEqualBlobs(t *testing.T) {
	// Equal radii, centers 5 apart: the player wins the tie and consumes the obstacle.
	obstacle := core.Circle{X: 0, Y: 0, Radius: 10}
	player := core.Circle{X: 5, Y: 0, Radius: 10}

	steps := Resolve(&obstacle, &player)

	if steps != 52 {
		t.Errorf("steps = %d, expected 52", steps)
	}
	if obstacle.Radius != 0 {
		t.Errorf("obstacle radius = %v, expected 0", obstacle.Radius)
	}
	if player.Radius < 14 || player.Radius > 14.5 {
		t.Errorf("player radius = %v, expected about 14.3", player.Radius)
	}
	if overlapping(&obstacle, &player) {
		t.Error("circles still resolve as overlapping")
	}
}

func TestResolveStopsAtContact(t *testing.T) {
	obstacle := core.Circle{X: 0, Y: 0, Radius: 8}
	player := core.Circle{X: 0, Y: 19, Radius: 12}

	steps := Resolve(&obstacle, &player)

	if steps != 16 {
		t.Errorf("steps = %d, expected 16", steps)
	}
	if obstacle.Radius <= 0 || player.Radius <= 0 {
		t.Fatalf("both blobs should survive, got %v and %v", obstacle.Radius, player.Radius)
	}
	if ov := core.Overlap(obstacle, player); ov > 0 {
		t.Errorf("overlap = %v, expected <= 0", ov)
	}
}

func TestResolveLargerObstacleAbsorbsPlayer(t *testing.T) {
	obstacle := core.Circle{X: 0, Y: 0, Radius: 20}
	player := core.Circle{X: 10, Y: 0, Radius: 5}

	steps := Resolve(&obstacle, &player)

	if player.Radius != 0 {
		t.Errorf("player radius = %v, expected 0", player.Radius)
	}
	if steps != 14 {
		t.Errorf("steps = %d, expected 14", steps)
	}
	if obstacle.Radius <= 20 {
		t.Errorf("obstacle should have grown, got %v", obstacle.Radius)
	}
}

func TestResolveDeadCircles(t *testing.T) {
	tests := []struct {
		name             string
		obstacle, player core.Circle
	}{
		{"dead player", core.Circle{Radius: 10}, core.Circle{Radius: 0}},
		{"dead obstacle", core.Circle{Radius: 0}, core.Circle{Radius: 10}},
		{"both dead", core.Circle{}, core.Circle{}},
		{"apart", core.Circle{X: 0, Radius: 5}, core.Circle{X: 100, Radius: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o, p := tc.obstacle, tc.player
			if steps := Resolve(&o, &p); steps != 0 {
				t.Errorf("steps = %d, expected 0", steps)
			}
			if o != tc.obstacle || p != tc.player {
				t.Error("circles should be untouched")
			}
		})
	}
}

func TestEnemyInteractScoresAndTints(t *testing.T) {
	e := &Enemy{Circle: core.Circle{X: 0, Y: 0, Radius: 5}}
	p := NewPlayer(10, 0, 20, 1)

	e.Interact(nil, p)

	if e.Dominant {
		t.Error("smaller enemy should not be dominant")
	}
	if e.Alive() {
		t.Errorf("enemy should be absorbed, radius %v", e.Radius)
	}
	if p.Score != 14 {
		t.Errorf("score = %d, expected one point per step (14)", p.Score)
	}

	big := &Enemy{Circle: core.Circle{X: 500, Y: 0, Radius: 40}}
	big.Interact(nil, p)
	if !big.Dominant {
		t.Error("larger enemy should be dominant even without contact")
	}
	if p.Score != 14 {
		t.Error("no contact should not score")
	}
}

// Package headless drives a game without a terminal, for simulations,
// benchmarks and reproducible runs.
package headless

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/blob-arcade/internal/core"
	"github.com/vovakirdan/blob-arcade/internal/registry"
)

// Policy chooses the input for the next tick from the current state.
type Policy func(tick uint64, state core.GameState) core.InputFrame

// Idle is a Policy that never presses anything.
func Idle(uint64, core.GameState) core.InputFrame {
	return core.NewInputFrame()
}

// RandomSteering returns a Policy that switches between steering left,
// steering right and letting go every few ticks. It is deterministic for a
// given seed.
func RandomSteering(seed int64) Policy {
	rng := rand.New(rand.NewSource(seed))
	var current core.Action
	var until uint64
	return func(tick uint64, _ core.GameState) core.InputFrame {
		if tick >= until {
			switch rng.Intn(3) {
			case 0:
				current = core.ActionLeft
			case 1:
				current = core.ActionRight
			default:
				current = core.ActionNone
			}
			until = tick + uint64(10+rng.Intn(50))
		}
		in := core.NewInputFrame()
		if current != core.ActionNone {
			in.Set(current)
		}
		return in
	}
}

// Options configures a run.
type Options struct {
	Ticks          uint64 // Stop after this many ticks, 0 for no limit
	Rate           int    // Ticks per second, 0 runs unthrottled
	StopOnGameOver bool
	Policy         Policy           // nil uses Idle
	OnEvent        func(core.Event) // Called for every emitted event
}

// Result summarizes a finished run.
type Result struct {
	Ticks   uint64
	State   core.GameState
	Events  []core.Event
	Elapsed time.Duration
}

// Run resets the game with cfg and steps it until a stop condition holds or
// ctx is cancelled. A cancelled run returns the partial result and ctx.Err().
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	if opts.Ticks == 0 && !opts.StopOnGameOver && ctx.Done() == nil {
		return Result{}, fmt.Errorf("headless: run has no stop condition")
	}
	policy := opts.Policy
	if policy == nil {
		policy = Idle
	}

	var ticker *time.Ticker
	if opts.Rate > 0 {
		ticker = time.NewTicker(time.Second / time.Duration(opts.Rate))
		defer ticker.Stop()
	}

	game.Reset(cfg)
	res := Result{State: game.State()}
	start := time.Now()

	for opts.Ticks == 0 || res.Ticks < opts.Ticks {
		if ticker != nil {
			select {
			case <-ctx.Done():
				res.Elapsed = time.Since(start)
				return res, ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			res.Elapsed = time.Since(start)
			return res, err
		}

		step := game.Step(policy(res.Ticks, res.State))
		res.Ticks++
		res.State = step.State
		for _, ev := range step.Events {
			res.Events = append(res.Events, ev)
			if opts.OnEvent != nil {
				opts.OnEvent(ev)
			}
		}
		if opts.StopOnGameOver && res.State.GameOver {
			break
		}
	}

	res.Elapsed = time.Since(start)
	return res, nil
}

package app

import (
	"context"
	"errors"
	"time"

	"urban-ca/internal/core"
)

// ErrPaused is returned by Run when the runner is paused with no pending
// single step.
var ErrPaused = errors.New("runner is paused")

// Runner drives a simulation the way an interactive front end would: it
// owns the paused flag, single-step requests and resets, none of which are
// part of the simulation itself.
type Runner struct {
	sim   core.Sim
	timer *core.FixedStep

	paused   bool
	tickOnce bool
	ticks    int

	// OnTick is called after every generation with the number of
	// generations since the last reset.
	OnTick func(gen int)
}

// NewRunner constructs a Runner for the provided simulation.
func NewRunner(sim core.Sim, tps int) *Runner {
	return &Runner{sim: sim, timer: core.NewFixedStep(tps)}
}

// Reset reinitializes the simulation state with the provided seed.
func (r *Runner) Reset(seed int64) {
	r.sim.Reset(seed)
	r.tickOnce = false
	r.ticks = 0
}

// TogglePause flips the paused flag.
func (r *Runner) TogglePause() { r.paused = !r.paused }

// Paused reports whether the runner is paused.
func (r *Runner) Paused() bool { return r.paused }

// StepOnce requests a single generation even while paused.
func (r *Runner) StepOnce() { r.tickOnce = true }

// Update advances the simulation by one generation unless paused. It
// reports whether a step happened.
func (r *Runner) Update() bool {
	if r.paused && !r.tickOnce {
		return false
	}
	r.sim.Step()
	r.tickOnce = false
	r.ticks++
	if r.OnTick != nil {
		r.OnTick(r.ticks)
	}
	return true
}

// Run performs steps generations. With realtime set, generations are paced
// by the runner's tick rate; otherwise they run back to back. Run stops
// early when ctx is cancelled and returns the context error, or with
// ErrPaused when paused.
func (r *Runner) Run(ctx context.Context, steps int, realtime bool) error {
	done := 0
	for done < steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if realtime && !r.timer.ShouldStep() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.timer.Remaining()):
			}
			continue
		}
		if !r.Update() {
			return ErrPaused
		}
		done++
	}
	return nil
}

// SPDX-License-Identifier: MIT

// Package sa - the annealing loop.
//
// State machine:
//
//	Running:    T > MinTemperature
//	  1. candidate := swap neighbor of current
//	  2. Metropolis(current, candidate, T) ⇒ current := candidate
//	  3. cost(current) < cost(best)        ⇒ best := copy(current)
//	  4. T := T · CoolingRate
//	Terminated: T ≤ MinTemperature ⇒ return best, cost(best)
//
// The loop keeps two order buffers and swaps them on acceptance, so the
// current tour is never touched until the decision is made.
package sa

import (
	"fmt"
	"log/slog"
)

// Annealer owns one validated problem instance and its random stream.
// Construct with New; the zero value is not usable.
type Annealer struct {
	points []Point
	opts   Options
	rng    Source
}

// New validates opts and points and returns an Annealer holding a private
// copy of points. No iteration runs here.
//
// Errors: wraps ErrInvalidConfiguration or ErrInvalidInput.
//
// Complexity: O(n).
func New(points []Point, opts Options) (*Annealer, error) {
	if err := validateOptions(opts); err != nil {
		return nil, fmt.Errorf("sa: %w", err)
	}
	if err := validatePoints(points, opts.AllowSinglePoint); err != nil {
		return nil, fmt.Errorf("sa: %w", err)
	}

	pts := make([]Point, len(points))
	copy(pts, points)

	return &Annealer{points: pts, opts: opts, rng: sourceFor(opts)}, nil
}

// Solve validates the inputs and runs one annealing pass.
//
// Errors: those of New. The loop itself never fails.
//
// Complexity: O(Iterations(opts) · n).
func Solve(points []Point, opts Options) (Result, error) {
	a, err := New(points, opts)
	if err != nil {
		return Result{}, err
	}

	return a.Solve(), nil
}

// Points returns a copy of the instance.
func (a *Annealer) Points() []Point {
	out := make([]Point, len(a.points))
	copy(out, a.points)

	return out
}

// Options returns the configuration the Annealer was built with.
func (a *Annealer) Options() Options { return a.opts }

// Solve runs one annealing pass from a fresh random tour and returns the
// best tour found. Repeated calls continue the same random stream, so they
// explore different starting tours.
//
// Complexity: O(Iterations(opts) · n) time, O(n) space.
func (a *Annealer) Solve() Result {
	var (
		n        = len(a.points)
		current  = randomOrder(n, a.rng)
		scratch  = make([]int, n)
		best     = make([]int, n)
		curCost  = TourCost(a.points, current)
		bestCost float64
		nextCost float64
		temp     = a.opts.InitialTemperature
		iter     int
		accepted int
		took     bool
	)
	copy(best, current)
	bestCost = curCost
	initialCost := curCost
	a.logTour("initial random tour", current, curCost)

	for temp > a.opts.MinTemperature {
		neighborInto(scratch, current, a.rng)
		nextCost = TourCost(a.points, scratch)

		took = Metropolis(curCost, nextCost, temp, a.rng)
		if took {
			current, scratch = scratch, current
			curCost = nextCost
			accepted++
		}
		if curCost < bestCost {
			copy(best, current)
			bestCost = curCost
		}
		iter++

		if a.opts.OnStep != nil {
			a.opts.OnStep(Step{
				Iteration:   iter,
				Temperature: temp,
				CurrentCost: curCost,
				BestCost:    bestCost,
				Accepted:    took,
				Order:       current,
			})
		}

		temp *= a.opts.CoolingRate
	}

	a.logTour("best tour", best, bestCost)

	return Result{
		Order:       best,
		Tour:        a.materialize(best),
		Cost:        bestCost,
		InitialCost: initialCost,
		Iterations:  iter,
		Accepted:    accepted,
	}
}

// materialize maps an order onto the instance points.
func (a *Annealer) materialize(order []int) Tour {
	t := make(Tour, len(order))
	for i, v := range order {
		t[i] = a.points[v]
	}

	return t
}

func (a *Annealer) logTour(msg string, order []int, cost float64) {
	if a.opts.Logger == nil {
		return
	}
	a.opts.Logger.Info(msg,
		slog.Any("tour", a.materialize(order).IDs()),
		slog.Float64("cost", cost),
		slog.Int("cities", len(order)),
	)
}

// SPDX-License-Identifier: MIT

package sa

import (
	"errors"
	"log/slog"
)

// Sentinel errors. Returned errors wrap one of these with %w and name the
// offending parameter; branch with errors.Is.
var (
	// ErrInvalidConfiguration reports temperatures or a cooling rate that
	// would make the schedule never terminate or never start.
	ErrInvalidConfiguration = errors.New("sa: invalid configuration")

	// ErrInvalidInput reports a point set that cannot form a tour.
	ErrInvalidInput = errors.New("sa: invalid input")
)

// Default schedule, taken from the classic 13-city driver setup.
const (
	DefaultInitialTemperature = 1000.0
	DefaultMinTemperature     = 1e-3
	DefaultCoolingRate        = 0.98
)

// Point is a city on the plane. ID is carried for display only and never
// takes part in distance computations; it does not have to be unique.
type Point struct {
	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
	ID string  `json:"id" yaml:"id"`
}

// Tour is an ordered sequence of points read as a closed cycle: the last
// point connects back to the first.
type Tour []Point

// IDs returns the identifiers of t in visiting order.
func (t Tour) IDs() []string {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}

	return ids
}

// Closed returns a copy of t with its first point appended at the end,
// the form plotters expect for drawing the cycle.
func (t Tour) Closed() []Point {
	if len(t) == 0 {
		return nil
	}
	out := make([]Point, len(t)+1)
	copy(out, t)
	out[len(t)] = t[0]

	return out
}

// Options configures an annealing run.
//
// Fields:
//   - InitialTemperature: starting temperature, > MinTemperature.
//   - MinTemperature: the loop runs while T > MinTemperature; must be > 0.
//   - CoolingRate: multiplicative decay per iteration, in (0,1).
//   - Seed: seeds a math/rand source when Rand is nil;
//     0 selects a fixed default seed.
//   - Rand: explicit random source; overrides Seed.
//   - AllowSinglePoint: accept a one-point instance as a trivial tour
//     of cost 0 instead of failing with ErrInvalidInput.
//   - Logger: if set, receives the initial and final tour.
//   - OnStep: if set, observes every iteration after the
//     best tour has been updated. It must not retain Step slices.
type Options struct {
	InitialTemperature float64
	MinTemperature     float64
	CoolingRate        float64

	Seed int64
	Rand Source

	AllowSinglePoint bool

	Logger *slog.Logger
	OnStep func(Step)
}

// DefaultOptions returns the default schedule with the deterministic
// default seed and no hooks.
func DefaultOptions() Options {
	return Options{
		InitialTemperature: DefaultInitialTemperature,
		MinTemperature:     DefaultMinTemperature,
		CoolingRate:        DefaultCoolingRate,
	}
}

// Step describes one finished iteration of the annealing loop.
type Step struct {
	// Iteration counts from 1.
	Iteration int

	// Temperature is the temperature the acceptance test ran at.
	Temperature float64

	// CurrentCost is the cost of the current tour after the decision.
	CurrentCost float64

	// BestCost is the cost of the best tour seen so far. Non-increasing.
	BestCost float64

	// Accepted reports whether the neighbor became the current tour.
	Accepted bool

	// Order is the current tour as positions into the input points. It is
	// owned by the Annealer and only valid for the duration of the hook.
	Order []int
}

// Result holds the outcome of a run.
type Result struct {
	// Order is the best tour as positions into the input points.
	Order []int

	// Tour is Order materialized as points.
	Tour Tour

	// Cost is the cycle length of Tour.
	Cost float64

	// InitialCost is the cycle length of the random starting tour.
	InitialCost float64

	// Iterations is the number of loop iterations performed.
	Iterations int

	// Accepted is the number of iterations whose neighbor was taken.
	Accepted int
}

// IDs returns the identifiers of the best tour in visiting order.
func (r Result) IDs() []string { return r.Tour.IDs() }

// ClosedPath returns the best tour cycled back to its first point.
func (r Result) ClosedPath() []Point { return r.Tour.Closed() }

// SPDX-License-Identifier: MIT

// Package sa - validation shared by construction and tests.
//
// All checks run before the first iteration: a run either fails here or
// completes. Every error wraps ErrInvalidConfiguration or ErrInvalidInput
// and names the parameter together with the constraint it broke.
package sa

import (
	"fmt"
	"math"
)

// validateOptions checks the cooling schedule.
//
// Rules:
//   - InitialTemperature, MinTemperature: finite and > 0.
//   - InitialTemperature > MinTemperature, else the loop never starts.
//   - CoolingRate ∈ (0,1), else the loop never terminates (≥1) or the
//     temperature is not a decay (≤0).
//
// NaN fails every comparison and is rejected by the same checks.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if !(opts.InitialTemperature > 0) || math.IsInf(opts.InitialTemperature, 0) {
		return fmt.Errorf("initial temperature %g must be finite and > 0: %w",
			opts.InitialTemperature, ErrInvalidConfiguration)
	}
	if !(opts.MinTemperature > 0) || math.IsInf(opts.MinTemperature, 0) {
		return fmt.Errorf("min temperature %g must be finite and > 0: %w",
			opts.MinTemperature, ErrInvalidConfiguration)
	}
	if opts.MinTemperature >= opts.InitialTemperature {
		return fmt.Errorf("min temperature %g must be < initial temperature %g: %w",
			opts.MinTemperature, opts.InitialTemperature, ErrInvalidConfiguration)
	}
	if !(opts.CoolingRate > 0 && opts.CoolingRate < 1) {
		return fmt.Errorf("cooling rate %g must be in (0,1): %w",
			opts.CoolingRate, ErrInvalidConfiguration)
	}

	return nil
}

// validatePoints checks that points can form a tour.
//
// Rules:
//   - at least one point; a single point only when allowSingle is set.
//   - every coordinate finite.
//
// Coincident points are fine: their distance is 0.
//
// Complexity: O(n).
func validatePoints(points []Point, allowSingle bool) error {
	switch {
	case len(points) == 0:
		return fmt.Errorf("points: empty set: %w", ErrInvalidInput)
	case len(points) == 1 && !allowSingle:
		return fmt.Errorf("points: single point needs AllowSinglePoint: %w", ErrInvalidInput)
	}

	var (
		i int
		p Point
	)
	for i, p = range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("points[%d] (%q): coordinates (%g, %g) must be finite: %w",
				i, p.ID, p.X, p.Y, ErrInvalidInput)
		}
	}

	return nil
}

// ValidateOrder checks that order is a permutation of {0..n-1}: length n,
// every value in range, no duplicates.
//
// Complexity: O(n) time, O(n) space.
func ValidateOrder(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("order: length %d, want %d: %w", len(order), n, ErrInvalidInput)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i, v = range order {
		if v < 0 || v >= n {
			return fmt.Errorf("order[%d]=%d out of range [0,%d): %w", i, v, n, ErrInvalidInput)
		}
		if seen[v] {
			return fmt.Errorf("order[%d]=%d repeated: %w", i, v, ErrInvalidInput)
		}
		seen[v] = true
	}

	return nil
}

// Iterations returns how many loop iterations a run with opts performs.
// It replays the cooling schedule with the same repeated multiplication
// Solve uses, so the count matches Solve exactly; the closed form
//
//	⌈ log(MinTemperature/InitialTemperature) / log(CoolingRate) ⌉
//
// can be off by one when MinTemperature/InitialTemperature is an exact
// power of CoolingRate.
//
// It returns 0 when opts fails validation.
//
// Complexity: O(Iterations(opts)).
func Iterations(opts Options) int {
	if validateOptions(opts) != nil {
		return 0
	}
	n := 0
	for temp := opts.InitialTemperature; temp > opts.MinTemperature; temp *= opts.CoolingRate {
		n++
	}

	return n
}

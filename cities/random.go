// SPDX-License-Identifier: MIT

package cities

import (
	"fmt"

	"github.com/katalvlaran/tspanneal/sa"
)

// Random returns n cities with coordinates drawn uniformly from
// [0,extent)². For each city X is drawn before Y, so a seed fixes the set.
//
// Errors: ErrTooFewCities for n < 1, ErrNeedRandSource without a stream.
//
// Complexity: O(n).
func Random(n int, opts ...Option) ([]sa.Point, error) {
	if n < 1 {
		return nil, fmt.Errorf("Random: n=%d < 1: %w", n, ErrTooFewCities)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("Random: %w", ErrNeedRandSource)
	}

	pts := make([]sa.Point, n)
	for i := range pts {
		x := cfg.extent * cfg.rng.Float64()
		y := cfg.extent * cfg.rng.Float64()
		pts[i] = sa.Point{X: x, Y: y, ID: cfg.idFn(i)}
	}

	return pts, nil
}

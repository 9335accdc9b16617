// SPDX-License-Identifier: MIT

package cities

import "errors"

// ErrTooFewCities indicates a requested city count below 1.
var ErrTooFewCities = errors.New("cities: count too small")

// ErrNeedRandSource indicates Random was called without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("cities: rng is required")

// ErrEmptyFile indicates a city file that parsed but held no cities.
var ErrEmptyFile = errors.New("cities: no cities in input")

// SPDX-License-Identifier: MIT

package cities

import "math/rand"

// DefaultExtent is the side of the square Random samples from, matching the
// classic driver's max distance.
const DefaultExtent = 1000.0

// Option customizes Random.
type Option func(*config)

type config struct {
	idFn   IDFn
	rng    *rand.Rand
	extent float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:   DefaultIDFn,
		extent: DefaultExtent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed seeds a fresh math/rand stream.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("cities: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithExtent samples coordinates from [0,extent). Panics unless extent > 0.
func WithExtent(extent float64) Option {
	if !(extent > 0) {
		panic("cities: WithExtent(extent<=0)")
	}
	return func(c *config) {
		c.extent = extent
	}
}

// WithIDScheme sets the identifier generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("cities: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}

// WithSymbolIDs labels cities A, B, …, Z, AA, ….
func WithSymbolIDs() Option { return WithIDScheme(SymbolIDFn) }

// SPDX-License-Identifier: MIT

// Package sa - RNG plumbing for the annealing loop.
//
// All randomness flows through a single Source chosen at construction:
//   - Options.Rand when provided,
//   - otherwise a math/rand stream seeded from Options.Seed.
//
// There is no time-based source anywhere in this package; callers that want
// a fresh stream per process pick a seed themselves.
//
// Concurrency:
//   - *math/rand.Rand is NOT goroutine-safe. Do not share a Source between
//     Annealers running in parallel.
package sa

import "math/rand"

// Source is the random stream consumed by the search. *math/rand.Rand
// satisfies it.
//
//   - Intn returns a uniform value in [0,n); n > 0.
//   - Float64 returns a uniform value in [0,1).
type Source interface {
	Intn(n int) int
	Float64() float64
}

var _ Source = (*rand.Rand)(nil)

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// sourceFor resolves the Source of a run from opts.
//
// Complexity: O(1).
func sourceFor(opts Options) Source {
	if opts.Rand != nil {
		return opts.Rand
	}

	return rngFromSeed(opts.Seed)
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a using r.
// Every one of the n! orders is equally likely for a uniform r.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, r Source) {
	var (
		n = len(a)
		i int
		j int
	)
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// randomOrder returns a uniformly random permutation of 0..n-1.
//
// Complexity: O(n) time, O(n) space.
func randomOrder(n int, r Source) []int {
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleInPlace(p, r)

	return p
}

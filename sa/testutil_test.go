// SPDX-License-Identifier: MIT

// Package sa_test holds helpers shared across the sa test files.
package sa_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspanneal/sa"
)

const (
	// seedDet is the fixed seed used wherever a run must be reproducible.
	seedDet = int64(42)

	// squareTol bounds how far a solved unit square may exceed its perimeter.
	squareTol = 0.01
)

// unitSquare returns the four corners of the unit square; optimal cost is 4.
func unitSquare() []sa.Point {
	return []sa.Point{
		{X: 0, Y: 0, ID: "A"},
		{X: 1, Y: 0, ID: "B"},
		{X: 1, Y: 1, ID: "C"},
		{X: 0, Y: 1, ID: "D"},
	}
}

// circle returns n points on a circle of radius r, lettered in angular
// order and shuffled with seed so the input order is not optimal.
func circle(n int, r float64, seed int64) []sa.Point {
	pts := make([]sa.Point, n)
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = sa.Point{X: r * math.Cos(th), Y: r * math.Sin(th), ID: string(rune('a' + i%26))}
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })

	return pts
}

// slowSchedule converges comfortably on small instances.
func slowSchedule() sa.Options {
	opts := sa.DefaultOptions()
	opts.InitialTemperature = 100
	opts.MinTemperature = 1e-3
	opts.CoolingRate = 0.995
	opts.Seed = seedDet

	return opts
}

// requirePermutation fails t unless order is a permutation of 0..n-1.
func requirePermutation(t testing.TB, order []int, n int) {
	t.Helper()
	require.NoError(t, sa.ValidateOrder(order, n))
}

// requireSamePoints fails t unless tour holds exactly the points of want,
// compared as multisets.
func requireSamePoints(t testing.TB, want []sa.Point, tour sa.Tour) {
	t.Helper()
	a := append([]sa.Point(nil), want...)
	b := append([]sa.Point(nil), tour...)
	less := func(s []sa.Point) func(i, j int) bool {
		return func(i, j int) bool {
			if s[i].X != s[j].X {
				return s[i].X < s[j].X
			}
			if s[i].Y != s[j].Y {
				return s[i].Y < s[j].Y
			}
			return s[i].ID < s[j].ID
		}
	}
	sort.Slice(a, less(a))
	sort.Slice(b, less(b))
	require.Equal(t, a, b)
}

// scriptedSource replays fixed draws and counts consumption. Running out of
// script fails the test.
type scriptedSource struct {
	t      testing.TB
	ints   []int
	floats []float64

	intCalls   int
	floatCalls int
}

func (s *scriptedSource) Intn(n int) int {
	require.Less(s.t, s.intCalls, len(s.ints), "Intn script exhausted")
	v := s.ints[s.intCalls] % n
	s.intCalls++

	return v
}

func (s *scriptedSource) Float64() float64 {
	require.Less(s.t, s.floatCalls, len(s.floats), "Float64 script exhausted")
	v := s.floats[s.floatCalls]
	s.floatCalls++

	return v
}

// countingSource wraps a real stream and counts draws.
type countingSource struct {
	r          *rand.Rand
	intCalls   int
	floatCalls int
}

func newCountingSource(seed int64) *countingSource {
	return &countingSource{r: rand.New(rand.NewSource(seed))}
}

func (c *countingSource) Intn(n int) int {
	c.intCalls++
	return c.r.Intn(n)
}

func (c *countingSource) Float64() float64 {
	c.floatCalls++
	return c.r.Float64()
}

// SPDX-License-Identifier: MIT

// Package sa approximates the Travelling Salesman Problem on planar points
// with simulated annealing.
//
// The search state is a tour: a permutation of the input points read as a
// closed cycle. Each iteration proposes a neighbor by swapping two positions,
// decides with the Metropolis criterion whether to move there, tracks the best
// tour seen so far, and cools the temperature geometrically:
//
//	T₀ = InitialTemperature
//	T_{k+1} = T_k · CoolingRate
//	stop when T_k ≤ MinTemperature
//
// A valid configuration therefore runs about
//
//	⌈ log(MinTemperature/InitialTemperature) / log(CoolingRate) ⌉
//
// iterations, each costing O(n) for the neighbor's length. Iterations
// replays the schedule and returns the exact count.
//
// ⚙️ Usage:
//
//	pts := []sa.Point{{X: 0, Y: 0, ID: "A"}, {X: 1, Y: 0, ID: "B"}, {X: 1, Y: 1, ID: "C"}}
//	opts := sa.DefaultOptions()
//	opts.Seed = 42
//
//	res, err := sa.Solve(pts, opts)
//	if err != nil {
//	  // errors.Is(err, sa.ErrInvalidConfiguration) / sa.ErrInvalidInput
//	}
//	fmt.Println(res.IDs(), res.Cost)
//
// Determinism:
//
//	Every random draw (initial shuffle, two swap positions per iteration and
//	the acceptance draw for non-improving moves) comes from the Source chosen
//	by Options.Rand or Options.Seed. The same source state and inputs always
//	produce the same Result.
//
// Concurrency:
//
//	An *Annealer is single-threaded and not safe for concurrent use. Run
//	independent searches with independent Annealers and Sources.
package sa

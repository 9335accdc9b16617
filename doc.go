// Package tspanneal approximates the Travelling Salesman Problem on planar
// cities with simulated annealing.
//
// 🚀 What is inside?
//
//	A small, deterministic toolkit around one metaheuristic:
//		• sa/: the annealer: cost, swap neighbor, Metropolis test, cooling loop
//		• cities/: random and fixed city sets, YAML/JSON loading, tour export
//		• config/: command settings from YAML, .env, environment and flags
//		• cmd/tspanneal: the command-line driver
//
// ✨ Guarantees:
//
//   - Reproducible – every random draw flows through one injectable Source
//   - Fail fast – bad schedules and empty inputs are rejected before the loop
//   - Bounded – a valid schedule runs about ⌈log(Tmin/T0)/log(rate)⌉ iterations; sa.Iterations gives the exact count
//
// Quick ASCII example:
//
//	    D───C
//	    │   │
//	    A───B
//
// is the tour the annealer settles on for the unit square: cost 4.
//
//	go get github.com/katalvlaran/tspanneal/sa
package tspanneal

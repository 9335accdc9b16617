// SPDX-License-Identifier: MIT

// Package cities prepares point sets for the annealer and hands solved
// tours back out.
//
// It covers the setup a driver needs around sa:
//   - Random:     n uniform cities in a square, seeded via WithSeed/WithRand.
//   - UnitSquare, Fixture16: fixed instances for demos and regression runs.
//   - Load, LoadFile: YAML or JSON city lists.
//   - WriteTour:  the closed path of a solved tour, ready for a plotter.
//
// Options follow the functional style: constructors validate their
// arguments and panic on programmer error, builders return sentinel errors.
package cities

// SPDX-License-Identifier: MIT

package sa

import "math"

// AcceptanceProbability returns the Metropolis probability of moving from a
// tour of currentCost to one of neighborCost at the given temperature:
// 1 for a strict improvement, exp((currentCost-neighborCost)/temperature)
// otherwise. The result lies in (0,1] for temperature > 0.
//
// Complexity: O(1).
func AcceptanceProbability(currentCost, neighborCost, temperature float64) float64 {
	if neighborCost < currentCost {
		return 1.0
	}

	return math.Exp((currentCost - neighborCost) / temperature)
}

// Metropolis decides whether to move to a neighbor of neighborCost.
//
// A strict improvement is always accepted and consumes no random draw. Any
// other move consumes exactly one rng.Float64 draw u ∈ [0,1) and is accepted
// iff u < AcceptanceProbability(...). Equal costs are therefore always
// accepted, but still cost one draw.
//
// Complexity: O(1).
func Metropolis(currentCost, neighborCost, temperature float64, rng Source) bool {
	if neighborCost < currentCost {
		return true
	}

	return rng.Float64() < AcceptanceProbability(currentCost, neighborCost, temperature)
}

// Accept evaluates both tours and applies Metropolis. Neither order is
// modified.
//
// Complexity: O(n).
func Accept(points []Point, current, neighbor []int, temperature float64, rng Source) bool {
	return Metropolis(TourCost(points, current), TourCost(points, neighbor), temperature, rng)
}

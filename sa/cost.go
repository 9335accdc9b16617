// SPDX-License-Identifier: MIT

package sa

import "math"

// Distance returns the Euclidean distance sqrt((a.X-b.X)² + (a.Y-b.Y)²).
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// TourCost returns the closed cycle length of the tour that visits
// points[order[0]], points[order[1]], … and returns to points[order[0]].
// Tours of length 0 or 1 cost 0.
//
// Contract:
//   - every element of order indexes into points (see ValidateOrder).
//
// Complexity: O(len(order)).
func TourCost(points []Point, order []int) float64 {
	n := len(order)
	if n <= 1 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += Distance(points[order[i]], points[order[i+1]])
	}
	// Closing edge last → first.
	sum += Distance(points[order[n-1]], points[order[0]])

	return sum
}

// Cost returns the closed cycle length of t, with the same summation order
// as TourCost. Tours of length 0 or 1 cost 0.
//
// Complexity: O(len(t)).
func (t Tour) Cost() float64 {
	n := len(t)
	if n <= 1 {
		return 0
	}

	var sum float64
	for i := 0; i < n-1; i++ {
		sum += Distance(t[i], t[i+1])
	}
	sum += Distance(t[n-1], t[0])

	return sum
}

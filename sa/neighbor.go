// SPDX-License-Identifier: MIT

package sa

// Neighbor returns a fresh copy of order with two positions swapped. Both
// positions are drawn independently and uniformly from [0,len(order)), so
// the same position may come up twice; that swap is a no-op and is kept as
// a legal move. The input is never modified.
//
// Exactly two rng.Intn draws are consumed for a non-empty order.
//
// Complexity: O(n) time, O(n) space.
func Neighbor(order []int, rng Source) []int {
	next := make([]int, len(order))
	neighborInto(next, order, rng)

	return next
}

// neighborInto writes the swap neighbor of src into dst, which must have the
// same length and must not alias src.
//
// Complexity: O(n) time, O(1) extra space.
func neighborInto(dst, src []int, rng Source) {
	copy(dst, src)

	n := len(dst)
	if n == 0 {
		return
	}
	i := rng.Intn(n)
	j := rng.Intn(n)
	dst[i], dst[j] = dst[j], dst[i]
}

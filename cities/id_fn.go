// SPDX-License-Identifier: MIT

package cities

import (
	"fmt"
	"strconv"
)

// IDFn generates a city identifier from its zero-based index. It must be
// deterministic.
type IDFn func(idx int) string

// DefaultIDFn numbers cities from 1: 0→"1", 12→"13".
// Complexity: O(d) for d decimal digits.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx + 1)
}

// SymbolIDFn returns spreadsheet-style letters: 0→"A", 25→"Z", 26→"AA".
// Complexity: O(log₂₆ idx).
// Panics if idx < 0.
func SymbolIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns prefix + 1-based decimal index, e.g. "c1", "c2".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx+1)
	}
}

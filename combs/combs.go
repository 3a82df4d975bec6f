// Package combs - deterministic subset enumeration.
//
// This file provides the two enumeration entry points:
//
//   - OfSize:  all k-element subsets of a slice (single size).
//   - Subsets: subsets for a list of sizes, or the full non-empty power
//     set when no sizes are given.
//
// Design principles:
//   - Deterministic, side-effect free functions; no randomness.
//   - Total: out-of-range sizes contribute nothing instead of failing.
//   - Hot-path discipline: result slices are preallocated to exact size.
package combs

import "gonum.org/v1/gonum/stat/combin"

// OfSize returns every k-element subset of elements.
//
// Ordering contract:
//   - subsets appear in lexicographic order of their element positions;
//   - inside each subset, elements keep their relative input order.
//
// Edge cases:
//   - k == 0 yields exactly one empty subset;
//   - k < 0 or k > len(elements) yields nil (nothing to choose).
//
// Complexity: O(C(n,k)·k) time and memory, n = len(elements).
func OfSize[T any](elements []T, k int) [][]T {
	n := len(elements)
	switch {
	case k < 0 || k > n:
		// Nothing of this size can be chosen.
		return nil
	case k == 0:
		// The single empty selection.
		return [][]T{{}}
	}

	// Generate position combinations in lexicographic order,
	// then map positions back onto the caller's elements.
	idxCombs := combin.Combinations(n, k)
	out := make([][]T, len(idxCombs))
	for i, idxs := range idxCombs {
		subset := make([]T, k)
		for j, idx := range idxs {
			subset[j] = elements[idx]
		}
		out[i] = subset
	}

	return out
}

// Subsets returns subsets of elements for the requested sizes.
//
// Size contract:
//   - no sizes: every subset of every size 1..len(elements), in ascending
//     size order (the full non-empty power set);
//   - one or more sizes: the concatenation of OfSize results in the given
//     size order; repeated sizes repeat their subsets (no deduplication).
//
// Complexity: O(Σ C(n,k)·k) over the requested sizes; O(2ⁿ·n) when no
// sizes are given.
func Subsets[T any](elements []T, sizes ...int) [][]T {
	n := len(elements)

	if len(sizes) == 0 {
		// Full non-empty power set: exactly 2^n - 1 subsets.
		var capHint int
		if n > 0 && n < 31 {
			capHint = 1<<uint(n) - 1
		}
		all := make([][]T, 0, capHint)
		for k := 1; k <= n; k++ {
			all = append(all, OfSize(elements, k)...)
		}

		return all
	}

	var out [][]T
	for _, k := range sizes {
		out = append(out, OfSize(elements, k)...)
	}

	return out
}

// Package combs enumerates subsets (combinations) of a slice with a
// fully deterministic ordering, for building architecture-search spaces
// over quantum circuit layers.
//
// 🚀 What is combs?
//
//	A tiny generic enumeration kit: give it a slice of candidates and it
//	hands back every way of choosing some of them, without repeats and
//	without ever reordering the chosen elements.  It is the combinatorial
//	core behind the superlayer package, where candidates are wire indices
//	or wire pairs and every subset is one sample architecture.
//
// ✨ Key guarantees:
//   - Deterministic: identical inputs always yield identical output slices.
//   - Order-preserving: elements inside a subset keep their input order.
//   - Lexicographic: within one size, subsets follow input-position order.
//   - Size-ascending: with no explicit sizes, sizes run 1..len(elements).
//   - Pure: no side effects, no hidden state, no randomness.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/qnas/combs"
//
//	combs.Subsets([]int{0, 1, 2})       // [0] [1] [2] [0 1] [0 2] [1 2] [0 1 2]
//	combs.Subsets([]int{0, 1, 2}, 2)    // [0 1] [0 2] [1 2]
//	combs.OfSize([]string{"a","b"}, 1)  // [a] [b]
//
// Performance:
//
//   - OfSize: O(C(n,k)·k) time and memory.
//   - Subsets with no sizes: O(2ⁿ·n) — exhaustive by nature; enumerate
//     full power sets only for small n.
//
// See examples in example_test.go.
package combs

// Package qnas is a small toolkit for architecture search over
// parameterized quantum circuits: enumerate candidate gate placements,
// pick one, execute only that subset.
//
// 🚀 What is qnas?
//
//	A deterministic, dependency-light library built around "super-layers" —
//	layers holding one gate instance per wire that apply only the subset
//	an external search controller selected:
//		• Subset enumeration: every wire subset, pair subset, or threshold
//		• Five placement policies: any-subset, adjacent-pairs, front-share,
//		  single-wire, all-but-one
//		• Selection → execution: a chosen selector becomes a predicate
//		  over wire indices, applied in ascending order
//
// ✨ Why choose qnas?
//
//   - Deterministic – identical inputs always enumerate identically
//   - Honest contracts – sentinel errors, no panics on user input
//   - Pure Go – the circuit engine, gates, and controller stay yours,
//     behind small interfaces
//   - Extensible – any Gate implementation plugs in via a factory
//
// Everything is organized under two subpackages:
//
//	combs/      — generic k-subset / power-set enumeration (search spaces)
//	superlayer/ — the super-layer base contract and its five variants
//
// Quick sketch of one search trial:
//
//	layer, _ := superlayer.NewSuper1QLayer(newRX, 4)
//	space := layer.ArchSpace()        // controller's selector universe
//	layer.SetSampleArch(space[5])     // controller's pick for this trial
//	_ = layer.Forward(dev)            // apply exactly that gate subset
//
// See each subpackage's doc.go for contracts, edge cases, and examples.
//
//	go get github.com/katalvlaran/qnas
package qnas

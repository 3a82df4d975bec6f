// Package superlayer implements "super-layers": supersets of candidate
// gate placements on a fixed set of quantum wires, for architecture
// search over parameterized quantum circuits.
//
// 🚀 What is a super-layer?
//
//	A layer that owns one gate instance per wire but applies only the
//	subset selected by its current sample architecture.  An external
//	search controller picks one selector out of the layer's ArchSpace,
//	installs it with SetSampleArch, and runs Forward; the layer applies
//	exactly the gates the selector permits, in ascending wire order.
//
// ✨ The five variants:
//   - Super1QLayer           — any subset of wires, any size (Wires).
//   - Super2QLayer           — subsets of wire pairs; Forward realizes
//     cyclic-adjacent pairs (k, k+1 mod n) only (WirePairs).
//   - Super1QShareFrontLayer — wires [0, t) active, t ≥ a configured
//     minimum (FrontShare).
//   - Super1QSingleWireLayer — exactly one active wire (WireIndex).
//   - Super1QAllButOneLayer  — all wires except one (WireIndex).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/qnas/superlayer"
//
//	layer, err := superlayer.NewSuper1QLayer(newRX, 4,
//	    superlayer.WithGateParams(true, true))
//	if err != nil { ... }
//
//	layer.SetSampleArch(superlayer.Wires{0, 2})  // chosen by the controller
//	if err := layer.Forward(dev); err != nil { ... }
//
// Contracts:
//   - SetSampleArch stores any selector unconditionally; membership in
//     ArchSpace is the controller's responsibility.  Forward returns
//     ErrArchUnset / ErrArchShape for absent or wrong-shape selectors;
//     right-shape selectors outside the space silently apply nothing
//     (or, for FrontShare above the wire count, everything).
//   - Gate instances are created eagerly, one per wire, independently
//     parameterized; the collection length always equals the wire count.
//   - Forward mutates only the caller's device; layers hold no hidden
//     per-pass state, so repeated calls replay the same application
//     sequence.
//   - Single-threaded by contract: gate application order is semantic,
//     so one device must never be driven by concurrent Forward passes.
//
// Note on Super2QLayer: its ArchSpace enumerates subsets of ALL C(n,2)
// wire pairs, while Forward only ever tests the n cyclic-adjacent pairs.
// Selectors containing non-adjacent pairs are legal but those pairs are
// never realized.
//
// See examples in example_test.go.
package superlayer

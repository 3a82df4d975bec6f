package superlayer

import "fmt"

// Base holds the state common to every super-layer: the fixed wire
// count and the mutable sample-architecture slot. Variants embed it and
// override ArchSpace and add Forward.
type Base struct {
	nWires int
	opts   Options
	sample SampleArch
}

// newBase constructs the shared state for nWires wires, selector unset.
func newBase(nWires int, o Options) Base {
	return Base{nWires: nWires, opts: o}
}

// NWires reports the fixed wire count the layer was built with.
func (b *Base) NWires() int {
	return b.nWires
}

// Options returns the construction options the layer was built with.
func (b *Base) Options() Options {
	return b.opts
}

// SetSampleArch replaces the current selector unconditionally. It is
// never validated against the architecture space — the external
// controller owns selector validity.
func (b *Base) SetSampleArch(arch SampleArch) {
	b.sample = arch
}

// SampleArch returns the currently installed selector, nil if unset.
func (b *Base) SampleArch() SampleArch {
	return b.sample
}

// ArchSpace returns nil on the base: it defines no selector universe of
// its own. Every variant overrides it.
func (b *Base) ArchSpace() []SampleArch {
	return nil
}

// archAs resolves the current selector to the variant's concrete shape.
// Returns ErrArchUnset for an absent selector and ErrArchShape when the
// stored value is some other variant's shape.
func archAs[S SampleArch](arch SampleArch) (S, error) {
	var zero S
	if arch == nil {
		return zero, ErrArchUnset
	}

	s, ok := arch.(S)
	if !ok {
		return zero, ErrArchShape
	}

	return s, nil
}

// wireRange returns the index range [0, n) — the per-wire choice list
// every architecture space is built from.
func wireRange(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}

	return r
}

// buildGates instantiates one gate per wire via the factory, eagerly
// and independently parameterized. len(result) == nWires always.
func buildGates(gate GateFactory, nWires int, o Options) []Gate {
	gates := make([]Gate, nWires)
	for k := range gates {
		gates[k] = gate(o.HasParams, o.Trainable)
	}

	return gates
}

// applyAt runs one gate application and decorates a failure with the
// wire positions it targeted.
func applyAt(g Gate, dev Device, wires ...int) error {
	if err := g.Apply(dev, wires...); err != nil {
		return fmt.Errorf("superlayer: gate at wires %v: %w", wires, err)
	}

	return nil
}

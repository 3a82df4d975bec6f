// Package superlayer - Super1QLayer: any subset of wires, any size.
package superlayer

import "github.com/katalvlaran/qnas/combs"

// Super1QLayer places one single-wire gate per wire and applies the
// subset named by a Wires selector.
type Super1QLayer struct {
	Base
	gates []Gate
}

// Compile-time contract check.
var _ Layer = (*Super1QLayer)(nil)

// NewSuper1QLayer builds a layer of nWires independently parameterized
// gate instances. Returns ErrNonPositiveWires or ErrNilGateFactory on
// invalid input.
func NewSuper1QLayer(gate GateFactory, nWires int, opts ...Option) (*Super1QLayer, error) {
	if err := validateLayer(gate, nWires); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Super1QLayer{
		Base:  newBase(nWires, o),
		gates: buildGates(gate, nWires, o),
	}, nil
}

// Forward applies gate k at wire k for every selected k, in ascending
// wire order. Indices in the selector that fall outside [0, NWires())
// select nothing.
func (l *Super1QLayer) Forward(dev Device) error {
	sel, err := archAs[Wires](l.Base.SampleArch())
	if err != nil {
		return err
	}

	for k := 0; k < l.nWires; k++ {
		if !sel.Contains(k) {
			continue
		}
		if err = applyAt(l.gates[k], dev, k); err != nil {
			return err
		}
	}

	return nil
}

// ArchSpace enumerates every non-empty subset of {0, …, NWires()-1},
// sizes ascending, lexicographic within a size: 2^n - 1 selectors.
func (l *Super1QLayer) ArchSpace() []SampleArch {
	subsets := combs.Subsets(wireRange(l.nWires))

	space := make([]SampleArch, len(subsets))
	for i, s := range subsets {
		space[i] = Wires(s)
	}

	return space
}

// NGates reports the per-wire gate collection length (always NWires()).
func (l *Super1QLayer) NGates() int {
	return len(l.gates)
}

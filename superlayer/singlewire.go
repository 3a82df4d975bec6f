// Package superlayer - Super1QSingleWireLayer: exactly one active wire.
package superlayer

// Super1QSingleWireLayer applies its gate on the single wire named by a
// WireIndex selector; every other wire stays untouched.
type Super1QSingleWireLayer struct {
	Base
	gates []Gate
}

var _ Layer = (*Super1QSingleWireLayer)(nil)

// NewSuper1QSingleWireLayer builds a single-active-wire layer. Returns
// ErrNonPositiveWires or ErrNilGateFactory on invalid input.
func NewSuper1QSingleWireLayer(gate GateFactory, nWires int, opts ...Option) (*Super1QSingleWireLayer, error) {
	if err := validateLayer(gate, nWires); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Super1QSingleWireLayer{
		Base:  newBase(nWires, o),
		gates: buildGates(gate, nWires, o),
	}, nil
}

// Forward applies gate w at wire w, where w is the selected index.
// Indices outside [0, NWires()) select nothing.
func (l *Super1QSingleWireLayer) Forward(dev Device) error {
	sel, err := archAs[WireIndex](l.Base.SampleArch())
	if err != nil {
		return err
	}

	if w := int(sel); w >= 0 && w < l.nWires {
		return applyAt(l.gates[w], dev, w)
	}

	return nil
}

// ArchSpace enumerates the wire indices 0..NWires()-1.
func (l *Super1QSingleWireLayer) ArchSpace() []SampleArch {
	space := make([]SampleArch, l.nWires)
	for w := range space {
		space[w] = WireIndex(w)
	}

	return space
}

// NGates reports the per-wire gate collection length (always NWires()).
func (l *Super1QSingleWireLayer) NGates() int {
	return len(l.gates)
}

// Package superlayer - Super1QAllButOneLayer: every wire active except one.
package superlayer

// Super1QAllButOneLayer applies its gate on every wire except the one
// named by a WireIndex selector.
type Super1QAllButOneLayer struct {
	Base
	gates []Gate
}

var _ Layer = (*Super1QAllButOneLayer)(nil)

// NewSuper1QAllButOneLayer builds an all-but-one layer. Returns
// ErrNonPositiveWires or ErrNilGateFactory on invalid input.
func NewSuper1QAllButOneLayer(gate GateFactory, nWires int, opts ...Option) (*Super1QAllButOneLayer, error) {
	if err := validateLayer(gate, nWires); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Super1QAllButOneLayer{
		Base:  newBase(nWires, o),
		gates: buildGates(gate, nWires, o),
	}, nil
}

// Forward applies gate k at wire k for every k except the excluded
// index, in ascending wire order. An index outside [0, NWires())
// excludes nothing, so every wire fires.
func (l *Super1QAllButOneLayer) Forward(dev Device) error {
	sel, err := archAs[WireIndex](l.Base.SampleArch())
	if err != nil {
		return err
	}

	for k := 0; k < l.nWires; k++ {
		if k == int(sel) {
			continue
		}
		if err = applyAt(l.gates[k], dev, k); err != nil {
			return err
		}
	}

	return nil
}

// ArchSpace enumerates the excludable wire indices 0..NWires()-1.
func (l *Super1QAllButOneLayer) ArchSpace() []SampleArch {
	space := make([]SampleArch, l.nWires)
	for w := range space {
		space[w] = WireIndex(w)
	}

	return space
}

// NGates reports the per-wire gate collection length (always NWires()).
func (l *Super1QAllButOneLayer) NGates() int {
	return len(l.gates)
}

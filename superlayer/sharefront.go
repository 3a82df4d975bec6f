// Package superlayer - Super1QShareFrontLayer: the first t wires are
// active, t chosen by the controller above a configured minimum.
package superlayer

// Super1QShareFrontLayer shares a front block of wires: a FrontShare
// selector t activates wires [0, t). The front nFrontShareWires wires
// are always part of every selector in the space; the rest can be added.
type Super1QShareFrontLayer struct {
	Base
	nFrontShare int
	gates       []Gate
}

var _ Layer = (*Super1QShareFrontLayer)(nil)

// NewSuper1QShareFrontLayer builds a front-share layer whose selectors
// range over thresholds [nFrontShareWires, nWires]. Returns
// ErrNonPositiveWires, ErrNilGateFactory, or ErrFrontShareRange on
// invalid input.
func NewSuper1QShareFrontLayer(gate GateFactory, nWires, nFrontShareWires int, opts ...Option) (*Super1QShareFrontLayer, error) {
	if err := validateLayer(gate, nWires); err != nil {
		return nil, err
	}
	if err := validateFrontShare(nFrontShareWires, nWires); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Super1QShareFrontLayer{
		Base:        newBase(nWires, o),
		nFrontShare: nFrontShareWires,
		gates:       buildGates(gate, nWires, o),
	}, nil
}

// Forward applies gate k at wire k for every k below the threshold, in
// ascending wire order. A threshold above NWires() activates every wire.
func (l *Super1QShareFrontLayer) Forward(dev Device) error {
	sel, err := archAs[FrontShare](l.Base.SampleArch())
	if err != nil {
		return err
	}

	for k := 0; k < l.nWires && k < int(sel); k++ {
		if err = applyAt(l.gates[k], dev, k); err != nil {
			return err
		}
	}

	return nil
}

// ArchSpace enumerates thresholds nFrontShareWires..NWires() inclusive.
func (l *Super1QShareFrontLayer) ArchSpace() []SampleArch {
	space := make([]SampleArch, 0, l.nWires-l.nFrontShare+1)
	for t := l.nFrontShare; t <= l.nWires; t++ {
		space = append(space, FrontShare(t))
	}

	return space
}

// NFrontShareWires reports the configured minimum active-wire count.
func (l *Super1QShareFrontLayer) NFrontShareWires() int {
	return l.nFrontShare
}

// NGates reports the per-wire gate collection length (always NWires()).
func (l *Super1QShareFrontLayer) NGates() int {
	return len(l.gates)
}

// Package superlayer - Super2QLayer: subsets of wire pairs, realized on
// cyclic-adjacent pairs.
package superlayer

import "github.com/katalvlaran/qnas/combs"

// Super2QLayer places one two-wire gate per wire index k, dedicated to
// the cyclic-adjacent pair (k, (k+1) mod n), and applies the pairs named
// by a WirePairs selector.
//
// ArchSpace enumerates subsets of ALL C(n,2) wire pairs while Forward
// only tests the n cyclic-adjacent ones, so selected non-adjacent pairs
// are never realized.
type Super2QLayer struct {
	Base
	gates []Gate
}

var _ Layer = (*Super2QLayer)(nil)

// NewSuper2QLayer builds a layer of nWires independently parameterized
// two-wire gate instances. WithWireReverse flips the wire order of each
// application. Returns ErrNonPositiveWires or ErrNilGateFactory on
// invalid input.
func NewSuper2QLayer(gate GateFactory, nWires int, opts ...Option) (*Super2QLayer, error) {
	if err := validateLayer(gate, nWires); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Super2QLayer{
		Base:  newBase(nWires, o),
		gates: buildGates(gate, nWires, o),
	}, nil
}

// Forward tests, for each wire k in ascending order, the pair
// (k, (k+1) mod n) against the selector in both orientations; on a
// match it applies gate k across the pair, ascending wire order by
// default, descending when wire-reverse is set.
func (l *Super2QLayer) Forward(dev Device) error {
	sel, err := archAs[WirePairs](l.Base.SampleArch())
	if err != nil {
		return err
	}

	for k := 0; k < l.nWires; k++ {
		next := (k + 1) % l.nWires
		if !sel.Contains(k, next) && !sel.Contains(next, k) {
			continue
		}

		// Sort the pair ascending, then honor the reverse flag.
		lo, hi := k, next
		if lo > hi {
			lo, hi = hi, lo
		}
		if l.opts.WireReverse {
			lo, hi = hi, lo
		}

		if err = applyAt(l.gates[k], dev, lo, hi); err != nil {
			return err
		}
	}

	return nil
}

// ArchSpace enumerates every non-empty subset of all C(n,2) wire pairs:
// 2^C(n,2) - 1 selectors. Pairs are ascending, lexicographic.
func (l *Super2QLayer) ArchSpace() []SampleArch {
	pairs := combs.OfSize(wireRange(l.nWires), 2)

	choices := make([][2]int, len(pairs))
	for i, p := range pairs {
		choices[i] = [2]int{p[0], p[1]}
	}

	subsets := combs.Subsets(choices)
	space := make([]SampleArch, len(subsets))
	for i, s := range subsets {
		space[i] = WirePairs(s)
	}

	return space
}

// WireReversed reports whether paired applications run in descending
// wire order.
func (l *Super2QLayer) WireReversed() bool {
	return l.opts.WireReverse
}

// NGates reports the per-wire gate collection length (always NWires()).
func (l *Super2QLayer) NGates() int {
	return len(l.gates)
}

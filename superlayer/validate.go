// Package superlayer - construction-time validation helpers.
//
// Design principles:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - Validation happens once, at construction; SetSampleArch and the
//     Forward hot path stay validation-free by contract.
package superlayer

// validateLayer checks the parameters every variant constructor shares.
func validateLayer(gate GateFactory, nWires int) error {
	if nWires < 1 {
		return ErrNonPositiveWires
	}
	if gate == nil {
		return ErrNilGateFactory
	}

	return nil
}

// validateFrontShare checks the minimum active-wire count of a
// front-share layer against the wire count.
func validateFrontShare(nFrontShareWires, nWires int) error {
	if nFrontShareWires < 0 || nFrontShareWires > nWires {
		return ErrFrontShareRange
	}

	return nil
}

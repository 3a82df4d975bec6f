// Package superlayer - contracts, selector shapes, sentinel errors, and
// construction options shared by all super-layer variants.
package superlayer

import "errors"

// Sentinel errors for super-layer construction and execution.
var (
	// ErrNonPositiveWires is returned by constructors when the wire
	// count is zero or negative.
	ErrNonPositiveWires = errors.New("superlayer: wire count must be positive")

	// ErrNilGateFactory is returned by constructors when no gate
	// factory is provided.
	ErrNilGateFactory = errors.New("superlayer: gate factory is nil")

	// ErrFrontShareRange is returned by NewSuper1QShareFrontLayer when
	// the minimum front-share count is negative or exceeds the wire count.
	ErrFrontShareRange = errors.New("superlayer: front-share wire count out of range")

	// ErrArchUnset is returned by Forward when no sample architecture
	// has been set on the layer.
	ErrArchUnset = errors.New("superlayer: sample architecture not set")

	// ErrArchShape is returned by Forward when the stored sample
	// architecture is not the shape the variant operates on.
	ErrArchShape = errors.New("superlayer: sample architecture has wrong shape")
)

// Device is the opaque circuit-execution state a layer forwards to its
// gates. Layers never inspect it; ownership stays with the caller for
// the duration of one Forward pass.
type Device = any

// Gate is a parameterized unitary applicable to one or more wires.
// Apply mutates dev in place; its error (arity or device mismatch) is
// the gate collaborator's to define and propagates out of Forward.
type Gate interface {
	Apply(dev Device, wires ...int) error
}

// GateFactory builds one independently parameterized gate instance.
// Constructors call it once per wire index, eagerly.
type GateFactory func(hasParams, trainable bool) Gate

// SampleArch identifies which gates are active for one Forward pass.
// It is a sealed sum type: the concrete shapes are Wires, WirePairs,
// FrontShare, and WireIndex, one per variant family.
type SampleArch interface {
	sampleArch()
}

// Wires selects a set of wire indices (Super1QLayer).
type Wires []int

func (Wires) sampleArch() {}

// Contains reports whether wire k is selected.
func (w Wires) Contains(k int) bool {
	for _, v := range w {
		if v == k {
			return true
		}
	}

	return false
}

// WirePairs selects a set of 2-element wire pairs (Super2QLayer).
// Pairs are stored as given; orientation is resolved by the layer.
type WirePairs [][2]int

func (WirePairs) sampleArch() {}

// Contains reports whether the exact ordered pair (a, b) is selected.
func (p WirePairs) Contains(a, b int) bool {
	for _, v := range p {
		if v[0] == a && v[1] == b {
			return true
		}
	}

	return false
}

// FrontShare selects wires [0, t) (Super1QShareFrontLayer).
type FrontShare int

func (FrontShare) sampleArch() {}

// WireIndex selects a single wire — the only active one for
// Super1QSingleWireLayer, the only inactive one for Super1QAllButOneLayer.
type WireIndex int

func (WireIndex) sampleArch() {}

// Layer is the contract every super-layer variant satisfies and the
// surface an architecture-search controller drives.
type Layer interface {
	// NWires reports the fixed wire count the layer was built with.
	NWires() int

	// SetSampleArch installs arch unconditionally — no validation
	// against ArchSpace, by contract (speed over safety; the
	// controller owns selector validity).
	SetSampleArch(arch SampleArch)

	// SampleArch returns the currently installed selector, nil if unset.
	SampleArch() SampleArch

	// ArchSpace enumerates every valid selector for this layer's
	// configuration. Recomputed on each call, never cached.
	ArchSpace() []SampleArch

	// Forward applies the gates permitted by the current selector to
	// dev, in ascending wire-index order.
	Forward(dev Device) error
}

// Option configures optional construction behavior of a super-layer.
// Use with the New… constructors.
type Option func(*Options)

// Options holds the construction parameters shared by all variants.
type Options struct {
	// HasParams is forwarded to the gate factory: whether each gate
	// instance carries parameters. Default false.
	HasParams bool

	// Trainable is forwarded to the gate factory: whether each gate's
	// parameters are trainable. Default false.
	Trainable bool

	// WireReverse flips the wire ordering of paired gate applications,
	// e.g. [1 2] to [2 1]. Consulted by Super2QLayer only. Default false.
	WireReverse bool
}

// DefaultOptions returns the zero configuration: parameterless,
// non-trainable gates and ascending pair order.
func DefaultOptions() Options {
	return Options{
		HasParams:   false,
		Trainable:   false,
		WireReverse: false,
	}
}

// WithGateParams returns an Option that sets the flag pair forwarded to
// every gate instantiation.
func WithGateParams(hasParams, trainable bool) Option {
	return func(o *Options) {
		o.HasParams = hasParams
		o.Trainable = trainable
	}
}

// WithWireReverse returns an Option that makes paired layers apply
// their gates in descending wire order.
func WithWireReverse(reverse bool) Option {
	return func(o *Options) {
		o.WireReverse = reverse
	}
}

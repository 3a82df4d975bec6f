// Package superlayer_test - shared recorder gates for execution-trace tests.
package superlayer_test

import (
	"github.com/katalvlaran/qnas/superlayer"
)

// application records one gate firing: which gate instance ran (by
// creation order, i.e. wire index) and the wires it was applied to.
type application struct {
	gate  int
	wires []int
}

// recorderGate appends every Apply call to a shared trace. A non-nil
// fail is returned instead, simulating a gate/device fault.
type recorderGate struct {
	id    int
	trace *[]application
	fail  error
}

func (g recorderGate) Apply(_ superlayer.Device, wires ...int) error {
	if g.fail != nil {
		return g.fail
	}

	*g.trace = append(*g.trace, application{
		gate:  g.id,
		wires: append([]int(nil), wires...),
	})

	return nil
}

// newRecorder returns a factory that numbers gate instances in creation
// order and the trace they all append to.
func newRecorder() (superlayer.GateFactory, *[]application) {
	trace := &[]application{}
	next := 0

	factory := func(_, _ bool) superlayer.Gate {
		g := recorderGate{id: next, trace: trace}
		next++

		return g
	}

	return factory, trace
}

// newFailingFactory returns a factory whose gates always fail with err.
func newFailingFactory(err error) superlayer.GateFactory {
	return func(_, _ bool) superlayer.Gate {
		return recorderGate{fail: err}
	}
}

// wiresOf flattens a trace to the wire lists that fired, in order.
func wiresOf(trace []application) [][]int {
	out := make([][]int, len(trace))
	for i, a := range trace {
		out[i] = a.wires
	}

	return out
}

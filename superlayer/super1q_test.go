package superlayer_test

import (
	"testing"

	"github.com/katalvlaran/qnas/superlayer"
	"github.com/stretchr/testify/require"
)

// TestSuper1QLayer_ArchSpaceSize verifies |space| = 2^n - 1 for a range
// of wire counts, with every selector distinct and sizes covering 1..n.
func TestSuper1QLayer_ArchSpaceSize(t *testing.T) {
	for n := 1; n <= 6; n++ {
		factory, _ := newRecorder()
		layer, err := superlayer.NewSuper1QLayer(factory, n)
		require.NoError(t, err)

		space := layer.ArchSpace()
		require.Len(t, space, 1<<uint(n)-1, "n=%d", n)

		// Distinctness and size coverage.
		seen := make(map[string]bool, len(space))
		sizes := make(map[int]bool, n)
		for _, arch := range space {
			sel, ok := arch.(superlayer.Wires)
			require.True(t, ok)

			key := ""
			for _, w := range sel {
				key += string(rune('0' + w))
			}
			require.False(t, seen[key], "duplicate selector %v (n=%d)", sel, n)
			seen[key] = true
			sizes[len(sel)] = true
		}
		for k := 1; k <= n; k++ {
			require.True(t, sizes[k], "no selector of size %d (n=%d)", k, n)
		}
	}
}

// TestSuper1QLayer_Forward_AppliesSelectedWires verifies that exactly
// the selected wires fire, ascending, each via its own gate instance.
func TestSuper1QLayer_Forward_AppliesSelectedWires(t *testing.T) {
	factory, trace := newRecorder()
	layer, err := superlayer.NewSuper1QLayer(factory, 4)
	require.NoError(t, err)

	// Selector order must not matter: application order is wire order.
	layer.SetSampleArch(superlayer.Wires{2, 0})
	require.NoError(t, layer.Forward(nil))

	require.Equal(t, []application{
		{gate: 0, wires: []int{0}},
		{gate: 2, wires: []int{2}},
	}, *trace)
}

// TestSuper1QLayer_Forward_OutOfRangeIndexIsNoop verifies that alien
// indices in the selector silently select nothing.
func TestSuper1QLayer_Forward_OutOfRangeIndexIsNoop(t *testing.T) {
	factory, trace := newRecorder()
	layer, err := superlayer.NewSuper1QLayer(factory, 3)
	require.NoError(t, err)

	layer.SetSampleArch(superlayer.Wires{7, 1})
	require.NoError(t, layer.Forward(nil))

	// Only wire 1 fires; 7 is outside [0, 3).
	require.Equal(t, [][]int{{1}}, wiresOf(*trace))
}

// TestSuper1QLayer_Forward_Idempotent verifies that two passes with an
// unchanged selector replay the identical application sequence.
func TestSuper1QLayer_Forward_Idempotent(t *testing.T) {
	factory, trace := newRecorder()
	layer, err := superlayer.NewSuper1QLayer(factory, 3)
	require.NoError(t, err)

	layer.SetSampleArch(superlayer.Wires{0, 2})

	require.NoError(t, layer.Forward(nil))
	first := append([]application(nil), *trace...)

	require.NoError(t, layer.Forward(nil))
	require.Equal(t, append(first, first...), *trace)
}

// TestSuper1QLayer_GateCollectionLength verifies one gate per wire.
func TestSuper1QLayer_GateCollectionLength(t *testing.T) {
	factory, _ := newRecorder()
	layer, err := superlayer.NewSuper1QLayer(factory, 5)
	require.NoError(t, err)

	require.Equal(t, 5, layer.NGates())
	require.Equal(t, 5, layer.NWires())
}

// SPDX-License-Identifier: MIT
package gridgraph_test

import (
	"image"
	"testing"

	"github.com/katalvlaran/lvgrid/gridgraph"
	"github.com/stretchr/testify/require"
)

// TestBridge_BasicLine tests a 3×1 line with a single water cell between two
// land cells. Expected: convert the middle cell at cost 1.
func TestBridge_BasicLine(t *testing.T) {
	g := mustRows(t, [][]int{{1, 0, 1}})
	path, cost, err := gridgraph.Bridge[int](g, isLand, gridgraph.Conn4, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, cost)
	require.Equal(t, []image.Point{{0, 0}, {1, 0}, {2, 0}}, path)
}

// TestBridge_MediumRow needs three conversions.
func TestBridge_MediumRow(t *testing.T) {
	g := mustRows(t, [][]int{{1, 0, 0, 0, 1}})
	path, cost, err := gridgraph.Bridge[int](g, isLand, gridgraph.Conn4, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 3, cost)
	require.Len(t, path, 5)
}

// TestBridge_Diagonal8 tests corner-touching land under Conn8: a single
// component, bridged to itself at no cost.
//
//	1 0
//	0 1
func TestBridge_Diagonal8(t *testing.T) {
	g := mustRows(t, [][]int{
		{1, 0},
		{0, 1},
	})
	comps := gridgraph.Components[int](g, isLand, gridgraph.Conn8)
	require.Len(t, comps, 1)

	path, cost, err := gridgraph.Bridge[int](g, isLand, gridgraph.Conn8, 0, 0)
	require.NoError(t, err)
	require.Zero(t, cost)
	require.Len(t, path, 1)
	require.Contains(t, comps[0], path[0])

	// Under Conn4 the two cells are separate islands one conversion apart.
	_, cost, err = gridgraph.Bridge[int](g, isLand, gridgraph.Conn4, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, cost)
}

// TestBridge_InvalidIndices ensures invalid component indices yield ErrComponentIndex.
func TestBridge_InvalidIndices(t *testing.T) {
	g := mustRows(t, [][]int{{1, 0, 1}})
	_, _, err := gridgraph.Bridge[int](g, isLand, gridgraph.Conn4, -1, 1)
	require.ErrorIs(t, err, gridgraph.ErrComponentIndex)
	_, _, err = gridgraph.Bridge[int](g, isLand, gridgraph.Conn4, 0, 2)
	require.ErrorIs(t, err, gridgraph.ErrComponentIndex)
}

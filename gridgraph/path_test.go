// SPDX-License-Identifier: MIT
package gridgraph_test

import (
	"image"
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/gridgraph"
	"github.com/stretchr/testify/require"
)

// terrain: 0 is a wall, any other value is the cost of entering the cell.
func terrain(v int) (int64, bool) { return int64(v), v != 0 }

// TestShortestPath_AroundExpensive prefers a longer cheap detour.
//
//	1 9 1
//	1 9 1
//	1 1 1
func TestShortestPath_AroundExpensive(t *testing.T) {
	g := mustRows(t, [][]int{
		{1, 9, 1},
		{1, 9, 1},
		{1, 1, 1},
	})
	path, cost, err := gridgraph.ShortestPath[int](g, terrain, image.Pt(0, 0), image.Pt(2, 0), gridgraph.Conn4)
	require.NoError(t, err)
	require.Equal(t, int64(6), cost)
	require.Equal(t, []image.Point{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 1}, {2, 0}}, path)

	// Diagonals cut the detour to four steps.
	_, cost, err = gridgraph.ShortestPath[int](g, terrain, image.Pt(0, 0), image.Pt(2, 0), gridgraph.Conn8)
	require.NoError(t, err)
	require.Equal(t, int64(4), cost)
}

// TestShortestPath_Walls covers unreachable targets and bad input.
func TestShortestPath_Walls(t *testing.T) {
	g := mustRows(t, [][]int{
		{1, 0, 1},
		{1, 0, 1},
	})
	_, _, err := gridgraph.ShortestPath[int](g, terrain, image.Pt(0, 0), image.Pt(2, 1), gridgraph.Conn8)
	require.ErrorIs(t, err, gridgraph.ErrNoPath)

	path, cost, err := gridgraph.ShortestPath[int](g, terrain, image.Pt(0, 1), image.Pt(0, 1), gridgraph.Conn4)
	require.NoError(t, err)
	require.Zero(t, cost)
	require.Equal(t, []image.Point{{0, 1}}, path)

	_, _, err = gridgraph.ShortestPath[int](g, terrain, image.Pt(0, 0), image.Pt(3, 0), gridgraph.Conn4)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)

	neg := func(int) (int64, bool) { return -1, true }
	_, _, err = gridgraph.ShortestPath[int](g, neg, image.Pt(0, 0), image.Pt(0, 1), gridgraph.Conn4)
	require.ErrorIs(t, err, gridgraph.ErrNegativeWeight)
}

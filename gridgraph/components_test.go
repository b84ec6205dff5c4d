// SPDX-License-Identifier: MIT
package gridgraph_test

import (
	"image"
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/gridgraph"
	"github.com/katalvlaran/lvgrid/layout"
	"github.com/stretchr/testify/require"
)

// isLand treats every positive value as land.
func isLand(v int) bool { return v >= 1 }

func mustRows(t *testing.T, rows [][]int) *grid.Buffer[int] {
	t.Helper()
	b, err := grid.FromRows(rows)
	require.NoError(t, err)
	return b
}

// TestComponents_Simple4 tests Components on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = land, 0 = water):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands, discovered in row-major order, cells in BFS order.
func TestComponents_Simple4(t *testing.T) {
	g := mustRows(t, [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	})
	comps := gridgraph.Components[int](g, isLand, gridgraph.Conn4)
	require.Equal(t, [][]image.Point{
		{{1, 0}, {2, 0}, {1, 1}, {0, 1}},
		{{2, 2}, {3, 2}},
	}, comps)
}

// TestComponents_Diagonal8 uses diagonal connectivity to catch
// "touching corners" islands.
//
// Grid:
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
//
// With Conn8, all 9 ones connect through diagonal hops into a single island;
// with Conn4 every one is alone.
func TestComponents_Diagonal8(t *testing.T) {
	g := mustRows(t, [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	})
	comps := gridgraph.Components[int](g, isLand, gridgraph.Conn8)
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 9)

	require.Len(t, gridgraph.Components[int](g, isLand, gridgraph.Conn4), 9)
}

// TestComponents_EmptyAndAllWater tests edge cases.
func TestComponents_EmptyAndAllWater(t *testing.T) {
	require.Empty(t, gridgraph.Components[int](mustRows(t, [][]int{{0, 0}, {0, 0}}), isLand, gridgraph.Conn4))
	require.Empty(t, gridgraph.Components[int](mustRows(t, nil), isLand, gridgraph.Conn8))

	comps := gridgraph.Components[int](mustRows(t, [][]int{{0, 1}}), isLand, gridgraph.Conn4)
	require.Equal(t, [][]image.Point{{{1, 0}}}, comps)
}

// TestComponents_Bits runs over a packed boolean mask in column-major order.
func TestComponents_Bits(t *testing.T) {
	mask, err := grid.FromRows([][]bool{
		{true, false, true},
		{true, false, false},
	})
	require.NoError(t, err)
	bits, err := grid.MigrateBits(mask, grid.WithLayout(layout.ColumnMajor{}))
	require.NoError(t, err)

	comps := gridgraph.Components[bool](bits, func(b bool) bool { return b }, gridgraph.Conn4)
	require.Equal(t, [][]image.Point{{{0, 0}, {0, 1}}, {{2, 0}}}, comps)
}

// TestLabel writes component ids into a fresh buffer.
func TestLabel(t *testing.T) {
	g := mustRows(t, [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	})
	dst, err := grid.New[int](g.Size())
	require.NoError(t, err)
	require.NoError(t, grid.Fill[int](dst, grid.Bounds(dst), -1))

	n, err := gridgraph.Label[int](dst, g, isLand, gridgraph.Conn4)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	want := mustRows(t, [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 2, 2},
	})
	require.Equal(t, want.Data(), dst.Data())

	small, err := grid.New[int](image.Pt(2, 2))
	require.NoError(t, err)
	_, err = gridgraph.Label[int](small, g, isLand, gridgraph.Conn4)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
}

// TestFlood replaces connected regions of equal values.
//
// Grid:
//
//	1 1 0
//	1 0 0
//	0 0 1
func TestFlood(t *testing.T) {
	g := mustRows(t, [][]int{
		{1, 1, 0},
		{1, 0, 0},
		{0, 0, 1},
	})

	n, err := gridgraph.Flood[int](g, image.Pt(2, 0), 7, gridgraph.Conn4)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []int{1, 1, 7, 1, 7, 7, 7, 7, 1}, g.Data())

	// Same value: nothing to do.
	n, err = gridgraph.Flood[int](g, image.Pt(1, 1), 7, gridgraph.Conn8)
	require.NoError(t, err)
	require.Zero(t, n)

	// The corner 1 touches no other 1, even diagonally.
	n, err = gridgraph.Flood[int](g, image.Pt(2, 2), 3, gridgraph.Conn8)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = gridgraph.Flood[int](g, image.Pt(3, 0), 0, gridgraph.Conn4)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestConnectivityOffsets(t *testing.T) {
	require.Len(t, gridgraph.Conn4.Offsets(), 4)
	require.Len(t, gridgraph.Conn8.Offsets(), 8)
	require.Equal(t, "Conn8", gridgraph.Conn8.String())
}

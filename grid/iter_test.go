// SPDX-License-Identifier: MIT
package grid_test

import (
	"image"
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/stretchr/testify/require"
)

// TestCellsRowMajorOrder checks (x0,y0,w,h) visits exactly w*h positions in
// row-major order whatever the backing layout.
func TestCellsRowMajorOrder(t *testing.T) {
	t.Parallel()

	r := image.Rect(1, 1, 4, 3)
	var want []image.Point
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			want = append(want, image.Pt(x, y))
		}
	}

	for _, tc := range allLayouts {
		t.Run(tc.name, func(t *testing.T) {
			b := seqBuffer(t, 5, 4, grid.WithLayout(tc.l))
			s := grid.Cells[int](b, r)

			var got []image.Point
			var vals []int
			for p, v := range s.All() {
				got = append(got, p)
				vals = append(vals, v)
			}
			require.NoError(t, s.Err())
			require.Equal(t, want, got)
			require.Equal(t, []int{7, 8, 9, 12, 13, 14}, vals)

			var unchecked []image.Point
			for p := range grid.CellsUnchecked[int](b, r) {
				unchecked = append(unchecked, p)
			}
			require.Equal(t, want, unchecked)
		})
	}
}

// TestCellsOutOfBoundsSized ensures a Sized grid rejects the rectangle before
// yielding anything.
func TestCellsOutOfBoundsSized(t *testing.T) {
	b := seqBuffer(t, 3, 3)
	for _, r := range []image.Rectangle{
		image.Rect(2, 2, 4, 3),     // straddles
		image.Rect(5, 5, 7, 7),     // fully outside
		image.Rect(-1, 0, 1, 1),    // negative
		image.Rect(0, 0, 3, 4),     // one row too tall
		image.Rect(10, 10, 11, 11), // far away
	} {
		s := grid.Cells[int](b, r)
		n := 0
		for range s.All() {
			n++
		}
		require.Zero(t, n, "rect %v", r)
		require.ErrorIs(t, s.Err(), grid.ErrOutOfBounds, "rect %v", r)
	}
}

// TestCellsProbeStopsAtFirstInvalid ensures an unsized grid streams until the
// first rejected position and then reports it.
func TestCellsProbeStopsAtFirstInvalid(t *testing.T) {
	g := newProbeGrid(2, 2)
	s := grid.Cells[int](g, image.Rect(1, 0, 3, 1))

	var got []image.Point
	for p := range s.All() {
		got = append(got, p)
	}
	require.Equal(t, []image.Point{{1, 0}}, got)
	require.ErrorIs(t, s.Err(), grid.ErrOutOfBounds)
	require.Contains(t, s.Err().Error(), "(2,0)")
}

// TestCellsRepeatPass runs the same unsized stream several times: each pass
// starts over and Err describes the latest one.
func TestCellsRepeatPass(t *testing.T) {
	g := newProbeGrid(2, 2)
	s := grid.Cells[int](g, image.Rect(0, 0, 3, 1))

	for pass := range 2 {
		n := 0
		for range s.Values() {
			n++
		}
		require.Equal(t, 2, n, "pass %d", pass)
		require.ErrorIs(t, s.Err(), grid.ErrOutOfBounds, "pass %d", pass)
	}

	// Stopping before the bad position leaves a clean pass.
	for range s.All() {
		break
	}
	require.NoError(t, s.Err())

	// A rectangle rejected up front is rejected on every pass.
	b := seqBuffer(t, 2, 2)
	bad := grid.Cells[int](b, image.Rect(0, 0, 3, 3))
	for range 2 {
		for range bad.All() {
			t.Fatal("rejected rectangle yielded an element")
		}
		require.ErrorIs(t, bad.Err(), grid.ErrOutOfBounds)
	}
}

// TestCellsEarlyBreak ensures consumers can stop a stream and restart it.
func TestCellsEarlyBreak(t *testing.T) {
	b := seqBuffer(t, 4, 4)
	s := grid.Cells[int](b, grid.Bounds(b))

	var first []int
	for v := range s.Values() {
		first = append(first, v)
		if len(first) == 3 {
			break
		}
	}
	require.Equal(t, []int{1, 2, 3}, first)

	n := 0
	for range s.Values() {
		n++
	}
	require.Equal(t, 16, n, "a fresh pass restarts from the beginning")
	require.NoError(t, s.Err())
}

// TestCellsEmptyRect ensures empty rectangles yield nothing without error.
func TestCellsEmptyRect(t *testing.T) {
	b := seqBuffer(t, 2, 2)
	s := grid.Cells[int](b, image.Rect(1, 1, 1, 5))
	for range s.All() {
		t.Fatal("empty rectangle yielded an element")
	}
	require.NoError(t, s.Err())
	require.Equal(t, image.Rect(1, 1, 1, 5), s.Rect())
}

// TestCellsNilGrid ensures a nil grid is reported, not dereferenced.
func TestCellsNilGrid(t *testing.T) {
	var b *grid.Buffer[int]
	s := grid.Cells[int](b, image.Rect(0, 0, 1, 1))
	require.ErrorIs(t, s.Err(), grid.ErrNilGrid)
}

// TestValuesFullExtent covers the trusted full-extent streams.
func TestValuesFullExtent(t *testing.T) {
	b := seqBuffer(t, 3, 2)
	var got []int
	for v := range grid.Values[int](b) {
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)
}

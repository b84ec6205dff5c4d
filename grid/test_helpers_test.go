// SPDX-License-Identifier: MIT
package grid_test

import (
	"image"
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/layout"
	"github.com/stretchr/testify/require"
)

// allLayouts lists the built-in layouts every backend test runs against.
var allLayouts = []struct {
	name string
	l    layout.Layout
}{
	{"RowMajor", layout.RowMajor{}},
	{"ColumnMajor", layout.ColumnMajor{}},
	{"Serpentine", layout.Serpentine{}},
}

// probeGrid is a checked-only grid with no Sized capability: kernels must
// probe it position by position. It counts writes to observe partial effects.
type probeGrid struct {
	w, h   int
	cells  map[image.Point]int
	writes int
}

func newProbeGrid(w, h int) *probeGrid {
	return &probeGrid{w: w, h: h, cells: make(map[image.Point]int)}
}

func (g *probeGrid) in(p image.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.w && p.Y < g.h
}

func (g *probeGrid) Get(p image.Point) (int, bool) {
	if !g.in(p) {
		return 0, false
	}
	return g.cells[p], true
}

func (g *probeGrid) Set(p image.Point, v int) error {
	if !g.in(p) {
		return grid.ErrOutOfBounds
	}
	g.cells[p] = v
	g.writes++
	return nil
}

// seqBuffer returns a w×h buffer holding 1, 2, 3, ... in row-major order.
func seqBuffer(t testing.TB, w, h int, opts ...grid.Option) *grid.Buffer[int] {
	t.Helper()
	b, err := grid.FromFunc(image.Pt(w, h), func(p image.Point) int { return p.Y*w + p.X + 1 }, opts...)
	require.NoError(t, err)
	return b
}

// rows collects a trusted grid into [][]T, top row first.
func rows[T any](g grid.TrustedReader[T]) [][]T {
	sz := g.Size()
	out := make([][]T, sz.Y)
	for p, v := range grid.All(g) {
		out[p.Y] = append(out[p.Y], v)
	}
	return out
}

// snapshot copies a buffer's store so tests can assert "nothing changed".
func snapshot[T any](b *grid.Buffer[T]) []T {
	return append([]T(nil), b.Data()...)
}

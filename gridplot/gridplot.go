// SPDX-License-Identifier: MIT

// Package gridplot renders numeric grids as heat maps, either as raster or
// vector images through gonum/plot or as an interactive HTML page through
// go-echarts. Row 0 of the grid is drawn at the top in both renderings.
package gridplot

import (
	"fmt"
	"image"
	"math"

	"github.com/katalvlaran/lvgrid/grid"
)

// heatGrid adapts a trusted grid to plotter.GridXYZ. gonum puts row 0 at the
// bottom, so rows are flipped.
type heatGrid struct {
	g    grid.TrustedReader[float64]
	size image.Point
}

func newHeatGrid(g grid.TrustedReader[float64]) (*heatGrid, error) {
	if grid.IsNil(g) {
		return nil, fmt.Errorf("gridplot: %w", grid.ErrNilGrid)
	}
	size := g.Size()
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("gridplot(%dx%d): %w", size.X, size.Y, grid.ErrInvalidSize)
	}
	return &heatGrid{g: g, size: size}, nil
}

func (h *heatGrid) Dims() (c, r int) { return h.size.X, h.size.Y }
func (h *heatGrid) X(c int) float64  { return float64(c) }
func (h *heatGrid) Y(r int) float64  { return float64(r) }

func (h *heatGrid) Z(c, r int) float64 {
	return h.g.GetUnchecked(image.Pt(c, h.size.Y-1-r))
}

// valueRange returns the finite minimum and maximum of g. A constant grid
// gets a unit-wide range so colour scales stay defined.
func valueRange(g grid.TrustedReader[float64]) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for v := range grid.Values(g) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 1
	}
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}

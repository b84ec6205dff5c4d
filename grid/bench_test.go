// SPDX-License-Identifier: MIT
package grid_test

import (
	"image"
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/layout"
)

var benchSize = image.Pt(256, 256)

func benchBuffer(b *testing.B, l layout.Layout) *grid.Buffer[uint32] {
	b.Helper()
	g, err := grid.New[uint32](benchSize, grid.WithLayout(l))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkFill(b *testing.B) {
	for _, tc := range allLayouts {
		b.Run(tc.name, func(b *testing.B) {
			g := benchBuffer(b, tc.l)
			r := grid.Bounds(g)
			for b.Loop() {
				_ = grid.Fill[uint32](g, r, 7)
			}
		})
	}
}

func BenchmarkFillSolid(b *testing.B) {
	g := benchBuffer(b, layout.RowMajor{})
	r := image.Rect(16, 16, 240, 240)
	for b.Loop() {
		_ = grid.FillSolid(g, r, 0x5A)
	}
}

func BenchmarkBlit(b *testing.B) {
	for _, tc := range allLayouts {
		b.Run(tc.name, func(b *testing.B) {
			src := benchBuffer(b, tc.l)
			dst := benchBuffer(b, layout.RowMajor{})
			r := grid.Bounds(src)
			for b.Loop() {
				_ = grid.Blit[uint32](dst, r, src, r)
			}
		})
	}
}

func BenchmarkScaledBlit(b *testing.B) {
	src := benchBuffer(b, layout.RowMajor{})
	dst, err := grid.New[uint32](image.Pt(512, 384))
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		_ = grid.ScaledBlit[uint32](dst, grid.Bounds(dst), src, grid.Bounds(src))
	}
}

func BenchmarkCells(b *testing.B) {
	g := benchBuffer(b, layout.RowMajor{})
	s := grid.Cells[uint32](g, grid.Bounds(g))
	for b.Loop() {
		var sum uint32
		for v := range s.Values() {
			sum += v
		}
		_ = sum
	}
}

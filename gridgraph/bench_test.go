// SPDX-License-Identifier: MIT
package gridgraph_test

import (
	"image"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/gridgraph"
)

// randomGrid builds a deterministic n×n grid with values in [0,4].
func randomGrid(b *testing.B, n int) *grid.Buffer[int] {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	g, err := grid.FromFunc(image.Pt(n, n), func(image.Point) int { return r.Intn(5) })
	if err != nil {
		b.Fatalf("setup FromFunc failed: %v", err)
	}
	return g
}

// BenchmarkComponents measures Components on a random 1000×1000 grid.
// Complexity: O(W×H×d)
func BenchmarkComponents(b *testing.B) {
	g := randomGrid(b, 1000)
	for b.Loop() {
		_ = gridgraph.Components[int](g, isLand, gridgraph.Conn4)
	}
}

// BenchmarkBridge measures a 0-1 BFS between the first two islands.
func BenchmarkBridge(b *testing.B) {
	g := randomGrid(b, 200)
	for b.Loop() {
		_, _, _ = gridgraph.Bridge[int](g, isLand, gridgraph.Conn4, 0, 1)
	}
}

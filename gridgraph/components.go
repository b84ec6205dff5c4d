// SPDX-License-Identifier: MIT

package gridgraph

import (
	"context"
	"image"
	"log/slog"

	"github.com/katalvlaran/lvgrid/grid"
)

// Components finds all contiguous regions ("islands") of cells for which land
// holds, according to conn. Components are ordered by their first cell in
// row-major order; each component lists its cells in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) bits for visited flags, plus the output.
func Components[T any](g grid.TrustedReader[T], land func(T) bool, conn Connectivity) [][]image.Point {
	size := g.Size()
	seen, err := grid.NewBits(size)
	if err != nil {
		return nil
	}
	offsets := conn.Offsets()
	var comps [][]image.Point

	for p0, v := range grid.All(g) {
		if !land(v) || seen.GetUnchecked(p0) {
			continue
		}
		// BFS to collect component
		seen.SetUnchecked(p0, true)
		comp := []image.Point{p0}
		for qi := 0; qi < len(comp); qi++ {
			u := comp[qi]
			for _, d := range offsets {
				n := u.Add(d)
				if !grid.Contains(g, n) || seen.GetUnchecked(n) || !land(g.GetUnchecked(n)) {
					continue
				}
				seen.SetUnchecked(n, true)
				comp = append(comp, n)
			}
		}
		comps = append(comps, comp)
	}
	if l := grid.Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("gridgraph: components",
			slog.String("size", size.String()), slog.String("conn", conn.String()), slog.Int("count", len(comps)))
	}
	return comps
}

// Label writes 0 for every water cell of g and k for every cell of the k-th
// component (1-based, in Components order) into dst, and returns the number
// of components. dst must cover g's extent.
//
// Errors:
//   - grid.ErrOutOfBounds if dst is smaller than g (Sized dst: nothing written).
func Label[T any](dst grid.Writer[int], g grid.TrustedReader[T], land func(T) bool, conn Connectivity) (int, error) {
	if err := grid.Fill(dst, grid.Bounds(g), 0); err != nil {
		return 0, err
	}
	comps := Components(g, land, conn)
	for i, comp := range comps {
		for _, p := range comp {
			if err := dst.Set(p, i+1); err != nil {
				return 0, err
			}
		}
	}
	return len(comps), nil
}

// Flood replaces the value of every cell connected to seed through cells
// equal to g[seed] with v, and returns how many cells changed. Filling a
// region with its own value changes nothing.
//
// Errors:
//   - grid.ErrOutOfBounds (wrapped) for a seed outside g.
func Flood[T comparable](g grid.Surface[T], seed image.Point, v T, conn Connectivity) (int, error) {
	old, ok := g.Get(seed)
	if !ok {
		return 0, floodErrorf(seed, grid.ErrOutOfBounds)
	}
	if old == v {
		return 0, nil
	}
	offsets := conn.Offsets()
	g.SetUnchecked(seed, v)
	queue := []image.Point{seed}
	for qi := 0; qi < len(queue); qi++ {
		for _, d := range offsets {
			n := queue[qi].Add(d)
			if !grid.Contains(g, n) || g.GetUnchecked(n) != old {
				continue
			}
			g.SetUnchecked(n, v)
			queue = append(queue, n)
		}
	}
	return len(queue), nil
}

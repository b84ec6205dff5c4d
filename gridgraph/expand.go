// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"
	"image"
	"math"

	"github.com/katalvlaran/lvgrid/grid"
)

// noPrev marks a cell without a predecessor.
var noPrev = image.Pt(-1, -1)

// Bridge finds a minimum-conversion path of water cells connecting any cell
// in component src to any cell in component dst, as numbered by Components.
// Each water-cell conversion costs 1. It returns the path (including the
// start and end land cells) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all src cells:
//     • Moving into a land cell   → cost 0
//     • Moving into a water cell  → cost 1
//  3. Stop when any dst cell is reached.
//  4. Reconstruct the path from the predecessor grid.
//
// Complexity: O(W·H·d) time, O(W·H) memory for distance and predecessor grids.
func Bridge[T any](g grid.TrustedReader[T], land func(T) bool, conn Connectivity, src, dst int) (path []image.Point, cost int, err error) {
	comps := Components(g, land, conn)
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	size := g.Size()
	goal, err := grid.NewBits(size)
	if err != nil {
		return nil, 0, err
	}
	for _, p := range comps[dst] {
		goal.SetUnchecked(p, true)
	}

	dist, err := grid.New[int](size)
	if err != nil {
		return nil, 0, err
	}
	prev, err := grid.New[image.Point](size)
	if err != nil {
		return nil, 0, err
	}
	grid.FillUnchecked(dist, grid.Bounds(dist), math.MaxInt)
	grid.FillUnchecked(prev, grid.Bounds(prev), noPrev)

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, p := range comps[src] {
		dist.SetUnchecked(p, 0)
		dq.PushFront(p)
	}

	offsets := conn.Offsets()
	target := noPrev
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(image.Point)
		if goal.GetUnchecked(u) {
			target = u
			break
		}
		du := dist.GetUnchecked(u)
		for _, d := range offsets {
			v := u.Add(d)
			if !grid.Contains(dist, v) {
				continue
			}
			step := 0
			if !land(g.GetUnchecked(v)) {
				step = 1
			}
			if nd := du + step; nd < dist.GetUnchecked(v) {
				dist.SetUnchecked(v, nd)
				prev.SetUnchecked(v, u)
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target == noPrev {
		return nil, 0, ErrNoPath
	}
	for at := target; at != noPrev; at = prev.GetUnchecked(at) {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist.GetUnchecked(target), nil
}

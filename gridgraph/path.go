// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/heap"
	"fmt"
	"image"
	"math"

	"github.com/katalvlaran/lvgrid/grid"
)

// ShortestPath finds the cheapest path from one cell to another. Entering a
// cell with value v costs cost(v); when cost reports false the cell is
// impassable. The start cell is free. It returns the path (from, ..., to) and
// its total cost.
//
// Uses Dijkstra with a lazy decrease-key min-heap: stale heap entries are
// skipped once a cell is finalised.
//
// Errors:
//   - grid.ErrOutOfBounds (wrapped) if from or to lies outside g.
//   - ErrNegativeWeight if cost returns a negative value.
//   - ErrNoPath if to cannot be reached.
//
// Complexity: O(W·H·d·log(W·H)) time, O(W·H) memory.
func ShortestPath[T any](g grid.TrustedReader[T], cost func(T) (int64, bool), from, to image.Point, conn Connectivity) ([]image.Point, int64, error) {
	for _, p := range []image.Point{from, to} {
		if !grid.Contains(g, p) {
			return nil, 0, fmt.Errorf("gridgraph.ShortestPath%v: %w", p, grid.ErrOutOfBounds)
		}
	}
	size := g.Size()
	dist, err := grid.New[int64](size)
	if err != nil {
		return nil, 0, err
	}
	prev, err := grid.New[image.Point](size)
	if err != nil {
		return nil, 0, err
	}
	done, err := grid.NewBits(size)
	if err != nil {
		return nil, 0, err
	}
	grid.FillUnchecked(dist, grid.Bounds(dist), math.MaxInt64)
	grid.FillUnchecked(prev, grid.Bounds(prev), noPrev)

	dist.SetUnchecked(from, 0)
	pq := cellPQ{{p: from}}
	offsets := conn.Offsets()

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(cellItem)
		u := item.p
		if done.GetUnchecked(u) {
			continue
		}
		done.SetUnchecked(u, true)
		if u == to {
			break
		}
		for _, d := range offsets {
			v := u.Add(d)
			if !grid.Contains(g, v) || done.GetUnchecked(v) {
				continue
			}
			w, ok := cost(g.GetUnchecked(v))
			if !ok {
				continue
			}
			if w < 0 {
				return nil, 0, fmt.Errorf("%w: cell %v weight=%d", ErrNegativeWeight, v, w)
			}
			nd := item.dist + w
			if nd >= dist.GetUnchecked(v) {
				continue
			}
			dist.SetUnchecked(v, nd)
			prev.SetUnchecked(v, u)
			heap.Push(&pq, cellItem{p: v, dist: nd})
		}
	}

	if !done.GetUnchecked(to) {
		return nil, 0, ErrNoPath
	}
	var path []image.Point
	for at := to; at != noPrev; at = prev.GetUnchecked(at) {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist.GetUnchecked(to), nil
}

// cellItem is a heap entry: a cell and its tentative distance.
type cellItem struct {
	p    image.Point
	dist int64
}

// cellPQ is a min-heap of cellItem ordered by dist.
type cellPQ []cellItem

func (pq cellPQ) Len() int           { return len(pq) }
func (pq cellPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq cellPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x any)        { *pq = append(*pq, x.(cellItem)) }

func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

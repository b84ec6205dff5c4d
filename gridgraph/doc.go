// SPDX-License-Identifier: MIT

// Package gridgraph treats any trusted grid as a graph of cells, enabling
// component analysis, labelling, flood fill and minimal-cost "island"
// bridging.
//
// What:
//
//   - Cells for which a caller-supplied land predicate holds are "land";
//     all others are "water".
//   - Components finds contiguous land regions (islands).
//   - Label writes a component id per cell into any writable grid.
//   - Flood replaces the connected region of equal values around a seed.
//   - Bridge computes the fewest water cells to convert (0-1 BFS) so that
//     two islands connect.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Image masks: blob counting and bucket fill over imagegrid surfaces.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Complexity:
//
//   - Components, Label, Flood: O(W×H×d), Memory: O(W×H)   (d = 4 or 8).
//   - Bridge:                   O(W×H×d), Memory: O(W×H).
//
// Connectivity:
//
//   - Conn4: orthogonal neighbors.
//   - Conn8: orthogonal and diagonal neighbors.
//
// Errors:
//
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
//   - grid.ErrOutOfBounds, grid.ErrNilGrid from the grid kernels.
package gridgraph

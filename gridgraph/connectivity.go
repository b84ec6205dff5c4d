// SPDX-License-Identifier: MIT

package gridgraph

import "image"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = []image.Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []image.Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor displacement vectors, clockwise from north.
// The returned slice must not be modified.
func (c Connectivity) Offsets() []image.Point {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	if c == Conn8 {
		return "Conn8"
	}
	return "Conn4"
}

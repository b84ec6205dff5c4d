// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
	// ErrNegativeWeight indicates a cost function returned a negative weight.
	ErrNegativeWeight = errors.New("gridgraph: negative cell weight encountered")
)

func floodErrorf(p image.Point, err error) error {
	return fmt.Errorf("gridgraph.Flood%v: %w", p, err)
}

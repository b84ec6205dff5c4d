// SPDX-License-Identifier: MIT

// Package grid - Bits storage (one element per bit).
//
// Purpose:
//   - Store boolean grids at 1 bit per position: bit i lives in byte i/8 at
//     bit position i%8 (least significant bit first), where i is the layout offset.
//   - Derive the store length from the extent (ceil(W*H/8)); never track it twice.

package grid

import (
	"image"
	"log/slog"
	"math/bits"

	"github.com/katalvlaran/lvgrid/layout"
)

const (
	ctxNewBits       = "NewBits"
	ctxBitsFromSlice = "BitsFromSlice"

	bitsPerUnit = 8
)

// Bits is a fixed-extent boolean grid packed into bytes.
type Bits struct {
	size   image.Point
	data   []byte
	layout layout.Layout
}

var _ Surface[bool] = (*Bits)(nil)

// BitsLen returns the number of bytes needed for an extent: ceil(W*H/8).
func BitsLen(size image.Point) int {
	return (layout.Len(size) + bitsPerUnit - 1) / bitsPerUnit
}

// NewBits allocates an owned, all-false bit grid.
//
// Errors:
//   - ErrInvalidSize for negative dimensions.
func NewBits(size image.Point, opts ...Option) (*Bits, error) {
	if err := validateSize(ctxNewBits, size); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	return &Bits{size: size, data: make([]byte, BitsLen(size)), layout: o.layout}, nil
}

// BitsFromSlice builds a bit grid over a caller-owned byte store.
//
// Errors:
//   - ErrInvalidSize for negative dimensions.
//   - ErrCapacity if len(data) < ceil(W*H/8); no grid is produced.
func BitsFromSlice(size image.Point, data []byte, opts ...Option) (*Bits, error) {
	if err := validateSize(ctxBitsFromSlice, size); err != nil {
		return nil, err
	}
	if need := BitsLen(size); len(data) < need {
		Logger().Warn("grid: store too small",
			slog.String("op", ctxBitsFromSlice), slog.Int("need", need), slog.Int("have", len(data)))
		return nil, sizeErrorf(ctxBitsFromSlice, size, len(data), ErrCapacity)
	}
	o := gatherOptions(opts...)
	return &Bits{size: size, data: data, layout: o.layout}, nil
}

// Size returns the extent.
func (g *Bits) Size() image.Point { return g.size }

// Data exposes the packed store.
func (g *Bits) Data() []byte { return g.data }

// Get reads the bit at p, or reports false outside the extent.
func (g *Bits) Get(p image.Point) (bool, bool) {
	i, ok := g.layout.Index(p, g.size)
	if !ok {
		return false, false
	}
	return g.bit(i), true
}

// GetUnchecked reads the bit at p; p must be inside the extent.
func (g *Bits) GetUnchecked(p image.Point) bool {
	return g.bit(g.layout.IndexUnchecked(p, g.size))
}

// Set writes the bit at p, or returns ErrOutOfBounds.
func (g *Bits) Set(p image.Point, v bool) error {
	i, ok := g.layout.Index(p, g.size)
	if !ok {
		return ErrOutOfBounds
	}
	g.setBit(i, v)
	return nil
}

// SetUnchecked writes the bit at p; p must be inside the extent.
func (g *Bits) SetUnchecked(p image.Point, v bool) {
	g.setBit(g.layout.IndexUnchecked(p, g.size), v)
}

// Count returns the number of set positions. Padding bits past W*H are ignored.
// Complexity: O(W*H/8).
func (g *Bits) Count() int {
	n := layout.Len(g.size)
	full := n / bitsPerUnit
	c := 0
	for _, b := range g.data[:full] {
		c += bits.OnesCount8(b)
	}
	if rem := n % bitsPerUnit; rem != 0 {
		c += bits.OnesCount8(g.data[full] & (1<<rem - 1))
	}
	return c
}

func (g *Bits) bit(i int) bool {
	return g.data[i/bitsPerUnit]>>(i%bitsPerUnit)&1 == 1
}

func (g *Bits) setBit(i int, v bool) {
	mask := byte(1) << (i % bitsPerUnit)
	if v {
		g.data[i/bitsPerUnit] |= mask
	} else {
		g.data[i/bitsPerUnit] &^= mask
	}
}

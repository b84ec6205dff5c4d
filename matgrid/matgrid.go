// SPDX-License-Identifier: MIT

// Package matgrid adapts gonum dense matrices to the grid capability
// interfaces. The matrix column is the grid X coordinate and the matrix row
// is the grid Y coordinate, so a grid of Size (W, H) is an H×W matrix.
//
// gonum cannot represent a zero-length dimension; extents with W == 0 or
// H == 0 are rejected with grid.ErrInvalidSize.
package matgrid

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/katalvlaran/lvgrid/grid"
	"gonum.org/v1/gonum/mat"
)

// Dense exposes a *mat.Dense as a grid of float64.
type Dense struct {
	m *mat.Dense
}

var _ grid.Surface[float64] = (*Dense)(nil)

func errorf(op string, size image.Point, err error) error {
	return fmt.Errorf("matgrid.%s(%dx%d): %w", op, size.X, size.Y, err)
}

// New allocates a zeroed size.Y × size.X matrix.
//
// Errors:
//   - grid.ErrInvalidSize if either dimension is not positive.
func New(size image.Point) (*Dense, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, errorf("New", size, grid.ErrInvalidSize)
	}
	return &Dense{m: mat.NewDense(size.Y, size.X, nil)}, nil
}

// Wrap adapts m without copying; writes are visible through m.
//
// Errors:
//   - grid.ErrNilGrid for a nil matrix.
func Wrap(m *mat.Dense) (*Dense, error) {
	if m == nil || m.IsEmpty() {
		return nil, errorf("Wrap", image.Point{}, grid.ErrNilGrid)
	}
	return &Dense{m: m}, nil
}

// Matrix returns the underlying matrix.
func (d *Dense) Matrix() *mat.Dense { return d.m }

// Size returns (columns, rows).
func (d *Dense) Size() image.Point {
	r, c := d.m.Dims()
	return image.Pt(c, r)
}

// Get returns the element at column p.X, row p.Y.
func (d *Dense) Get(p image.Point) (float64, bool) {
	r, c := d.m.Dims()
	if p.X < 0 || p.Y < 0 || p.X >= c || p.Y >= r {
		return 0, false
	}
	return d.GetUnchecked(p), true
}

// GetUnchecked reads the raw backing slice; p must be valid.
func (d *Dense) GetUnchecked(p image.Point) float64 {
	raw := d.m.RawMatrix()
	return raw.Data[p.Y*raw.Stride+p.X]
}

// Set stores v at p, or returns grid.ErrOutOfBounds.
func (d *Dense) Set(p image.Point, v float64) error {
	r, c := d.m.Dims()
	if p.X < 0 || p.Y < 0 || p.X >= c || p.Y >= r {
		return grid.ErrOutOfBounds
	}
	d.SetUnchecked(p, v)
	return nil
}

// SetUnchecked writes the raw backing slice; p must be valid.
func (d *Dense) SetUnchecked(p image.Point, v float64) {
	raw := d.m.RawMatrix()
	raw.Data[p.Y*raw.Stride+p.X] = v
}

// ToDense copies a trusted grid into a new matrix.
//
// Errors:
//   - grid.ErrNilGrid for a nil grid.
//   - grid.ErrInvalidSize for an empty extent.
func ToDense(g grid.TrustedReader[float64]) (*mat.Dense, error) {
	if grid.IsNil(g) {
		return nil, errorf("ToDense", image.Point{}, grid.ErrNilGrid)
	}
	if d, ok := g.(*Dense); ok {
		return mat.DenseCopyOf(d.m), nil
	}
	size := g.Size()
	if size.X <= 0 || size.Y <= 0 {
		return nil, errorf("ToDense", size, grid.ErrInvalidSize)
	}
	m := mat.NewDense(size.Y, size.X, nil)
	grid.BlitUnchecked[float64](&Dense{m: m}, grid.Bounds(g), g, grid.Bounds(g))
	return m, nil
}

// Mul stores the matrix product a·b in a new grid. a's width must equal b's
// height; the result has a's height and b's width.
//
// Errors:
//   - grid.ErrSizeMismatch for incompatible extents.
//   - as ToDense for either operand.
func Mul(a, b grid.TrustedReader[float64]) (*Dense, error) {
	am, err := ToDense(a)
	if err != nil {
		return nil, err
	}
	bm, err := ToDense(b)
	if err != nil {
		return nil, err
	}
	_, ac := am.Dims()
	br, _ := bm.Dims()
	if ac != br {
		return nil, errorf("Mul", a.Size(), grid.ErrSizeMismatch)
	}
	var out mat.Dense
	out.Mul(am, bm)
	grid.Logger().Debug("matgrid: mul",
		slog.String("a", a.Size().String()), slog.String("b", b.Size().String()))
	return &Dense{m: &out}, nil
}

// Transpose returns a new grid with X and Y swapped.
//
// Errors:
//   - as ToDense.
func Transpose(g grid.TrustedReader[float64]) (*Dense, error) {
	m, err := ToDense(g)
	if err != nil {
		return nil, err
	}
	return &Dense{m: mat.DenseCopyOf(m.T())}, nil
}

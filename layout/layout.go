// SPDX-License-Identifier: MIT

package layout

import "image"

// Layout maps positions within an extent to linear offsets and back.
// Implementations must be pure functions of (position, size).
type Layout interface {
	// Index returns the offset of p within size, or false if p is outside.
	// Complexity: O(1).
	Index(p, size image.Point) (int, bool)

	// IndexUnchecked returns the offset of p within size without validating p.
	// The caller guarantees Contains(p, size); otherwise the result is unspecified.
	// Complexity: O(1).
	IndexUnchecked(p, size image.Point) int

	// Point is the inverse of Index: it returns the position stored at offset i,
	// or false if i is outside [0, size.X*size.Y).
	// Complexity: O(1).
	Point(i int, size image.Point) (image.Point, bool)
}

// Default is the layout used by backends when none is configured.
var Default Layout = RowMajor{}

// Compile-time assertions for the built-in strategies.
var (
	_ Layout = RowMajor{}
	_ Layout = ColumnMajor{}
	_ Layout = Serpentine{}
)

// Contains reports whether p lies inside an extent of the given size.
// Negative coordinates are never inside.
func Contains(p, size image.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < size.X && p.Y < size.Y
}

// Len returns the number of positions in an extent (0 for degenerate sizes).
func Len(size image.Point) int {
	if size.X <= 0 || size.Y <= 0 {
		return 0
	}
	return size.X * size.Y
}

// RowMajor stores rows contiguously: offset = y*W + x.
type RowMajor struct{}

// Index implements Layout.
func (RowMajor) Index(p, size image.Point) (int, bool) {
	if !Contains(p, size) {
		return 0, false
	}
	return p.Y*size.X + p.X, true
}

// IndexUnchecked implements Layout.
func (RowMajor) IndexUnchecked(p, size image.Point) int {
	return p.Y*size.X + p.X
}

// Point implements Layout.
func (RowMajor) Point(i int, size image.Point) (image.Point, bool) {
	if i < 0 || i >= Len(size) {
		return image.Point{}, false
	}
	return image.Point{X: i % size.X, Y: i / size.X}, true
}

// ColumnMajor stores columns contiguously: offset = x*H + y.
type ColumnMajor struct{}

// Index implements Layout.
func (ColumnMajor) Index(p, size image.Point) (int, bool) {
	if !Contains(p, size) {
		return 0, false
	}
	return p.X*size.Y + p.Y, true
}

// IndexUnchecked implements Layout.
func (ColumnMajor) IndexUnchecked(p, size image.Point) int {
	return p.X*size.Y + p.Y
}

// Point implements Layout.
func (ColumnMajor) Point(i int, size image.Point) (image.Point, bool) {
	if i < 0 || i >= Len(size) {
		return image.Point{}, false
	}
	return image.Point{X: i / size.Y, Y: i % size.Y}, true
}

// Serpentine is row-major with every odd row stored right to left
// (boustrophedon order). Horizontally adjacent rows stay adjacent in memory
// at their turning points.
type Serpentine struct{}

// Index implements Layout.
func (s Serpentine) Index(p, size image.Point) (int, bool) {
	if !Contains(p, size) {
		return 0, false
	}
	return s.IndexUnchecked(p, size), true
}

// IndexUnchecked implements Layout.
func (Serpentine) IndexUnchecked(p, size image.Point) int {
	if p.Y&1 == 1 {
		return p.Y*size.X + (size.X - 1 - p.X)
	}
	return p.Y*size.X + p.X
}

// Point implements Layout.
func (Serpentine) Point(i int, size image.Point) (image.Point, bool) {
	if i < 0 || i >= Len(size) {
		return image.Point{}, false
	}
	y, x := i/size.X, i%size.X
	if y&1 == 1 {
		x = size.X - 1 - x
	}
	return image.Point{X: x, Y: y}, true
}

// IsRowMajor reports whether l stores each row as one contiguous,
// left-to-right span. Bulk kernels use it to pick slice-level fast paths.
func IsRowMajor(l Layout) bool {
	switch l.(type) {
	case RowMajor, *RowMajor:
		return true
	}
	return false
}

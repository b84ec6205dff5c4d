// SPDX-License-Identifier: MIT

// Package grid: capability interfaces.
//
// Purpose:
//   - Split grid access into small capabilities so read-only, write-only,
//     lazily computed and fully-backed grids share one set of kernels.
//   - Keep two parallel method families: checked (validates, reports) and
//     unchecked (caller already validated, zero overhead).
//
// Element type:
//   - T is whatever a read produces: a stored value, a pointer into storage,
//     or a value computed on demand (see Mapped).

package grid

import "image"

// Reader is the checked read capability.
type Reader[T any] interface {
	// Get returns the element at p, or false iff p lies outside the grid's
	// accessible extent. Get never allocates.
	Get(p image.Point) (T, bool)
}

// UncheckedReader is the caller-validated read capability.
type UncheckedReader[T any] interface {
	// GetUnchecked returns the element at p. The caller must already know p is
	// valid (via Sized, or a prior successful check). Otherwise the behavior is
	// undefined: it may panic or return an unrelated element.
	GetUnchecked(p image.Point) T
}

// Writer is the checked write capability.
type Writer[T any] interface {
	// Set stores v at p. It returns ErrOutOfBounds (unwrapped) iff p lies
	// outside the grid, in which case nothing is written.
	Set(p image.Point, v T) error
}

// UncheckedWriter is the caller-validated write capability.
type UncheckedWriter[T any] interface {
	// SetUnchecked stores v at p without validation. Same caller obligation as
	// GetUnchecked; violating it may corrupt an unrelated element or panic.
	SetUnchecked(p image.Point, v T)
}

// Sized marks a grid with a cheaply known, exact extent. Every position in
// image.Rect(0, 0, Size().X, Size().Y) is valid for both checked and
// unchecked access, which licenses callers to switch to the unchecked family
// after validating a rectangle once.
type Sized interface {
	Size() image.Point
}

// ReadWriter combines the checked read and write capabilities.
type ReadWriter[T any] interface {
	Reader[T]
	Writer[T]
}

// TrustedReader is a readable grid with a trusted extent.
type TrustedReader[T any] interface {
	Reader[T]
	UncheckedReader[T]
	Sized
}

// TrustedWriter is a writable grid with a trusted extent.
type TrustedWriter[T any] interface {
	Writer[T]
	UncheckedWriter[T]
	Sized
}

// Surface is the full capability set implemented by every storage backend.
type Surface[T any] interface {
	Reader[T]
	UncheckedReader[T]
	Writer[T]
	UncheckedWriter[T]
	Sized
}

// Bounds returns the rectangle covering the whole extent of s.
func Bounds(s Sized) image.Rectangle {
	sz := s.Size()
	return image.Rect(0, 0, sz.X, sz.Y)
}

// Contains reports whether p is a valid position of s.
func Contains(s Sized, p image.Point) bool {
	sz := s.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < sz.X && p.Y < sz.Y
}

// Fits reports whether r is valid for s: empty, or fully inside Bounds(s).
func Fits(s Sized, r image.Rectangle) bool {
	if r.Empty() {
		return true
	}
	return r.In(Bounds(s))
}

// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Kernels and constructors return these sentinels wrapped with the call site
// (method tag plus position or rectangle); callers match with errors.Is.
// Capability methods (Set) return them unwrapped so the hot path never allocates.

package grid

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrOutOfBounds indicates a position or rectangle outside the grid's extent.
	ErrOutOfBounds = errors.New("grid: position out of bounds")

	// ErrCapacity indicates a backing store too small for the requested extent.
	ErrCapacity = errors.New("grid: backing store too small for extent")

	// ErrStreamUnderrun indicates FillFrom's stream ended before every position
	// of a valid rectangle was written.
	ErrStreamUnderrun = errors.New("grid: element stream exhausted early")

	// ErrSizeMismatch indicates source and destination rectangles that cannot be
	// paired (unequal sizes for Blit/Blend, empty source for ScaledBlit).
	ErrSizeMismatch = errors.New("grid: rectangle size mismatch")

	// ErrInvalidSize indicates a negative width or height.
	ErrInvalidSize = errors.New("grid: invalid size")

	// ErrReleased indicates a checked call through an ownership wrapper whose
	// grid was already taken or released.
	ErrReleased = errors.New("grid: grid released")

	// ErrNilGrid indicates a nil grid passed where one is required.
	ErrNilGrid = errors.New("grid: nil grid")

	// ErrNotPlainData indicates a raw byte fill requested over elements that
	// hold pointers, strings, slices, maps, channels, funcs or interfaces.
	ErrNotPlainData = errors.New("grid: element type is not plain data")
)

// ---------- error context helpers ----------

// pointErrorf tags err with the kernel/method name and the offending position.
func pointErrorf(op string, p image.Point, err error) error {
	return fmt.Errorf("grid.%s%v: %w", op, p, err)
}

// rectErrorf tags err with the kernel/method name and the offending rectangle.
func rectErrorf(op string, r image.Rectangle, err error) error {
	return fmt.Errorf("grid.%s%v: %w", op, r, err)
}

// sizeErrorf tags a constructor error with the requested extent and store length.
func sizeErrorf(op string, size image.Point, have int, err error) error {
	return fmt.Errorf("grid.%s(%dx%d, len=%d): %w", op, size.X, size.Y, have, err)
}

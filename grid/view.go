// SPDX-License-Identifier: MIT

package grid

import "image"

// View is a non-owning window into a Buffer (shared storage). Positions are
// local: (0,0) is the window's top-left corner. A View must not outlive the
// store of its base buffer.
type View[T any] struct {
	base *Buffer[T]
	rect image.Rectangle // window in base coordinates
}

var (
	_ Surface[int] = (*View[int])(nil)
	_ SolidFiller  = (*View[int])(nil)
)

// Size returns the window extent.
func (v *View[T]) Size() image.Point { return v.rect.Size() }

// Rect returns the window in base-buffer coordinates.
func (v *View[T]) Rect() image.Rectangle { return v.rect }

// Base returns the buffer the view reads from and writes to.
func (v *View[T]) Base() *Buffer[T] { return v.base }

// Get reads local position p, or reports false outside the window.
func (v *View[T]) Get(p image.Point) (T, bool) {
	if !Contains(v, p) {
		var zero T
		return zero, false
	}
	return v.base.GetUnchecked(p.Add(v.rect.Min)), true
}

// GetUnchecked reads local position p; p must be inside the window.
func (v *View[T]) GetUnchecked(p image.Point) T {
	return v.base.GetUnchecked(p.Add(v.rect.Min))
}

// Set writes local position p through to the base, or returns ErrOutOfBounds.
func (v *View[T]) Set(p image.Point, val T) error {
	if !Contains(v, p) {
		return ErrOutOfBounds
	}
	v.base.SetUnchecked(p.Add(v.rect.Min), val)
	return nil
}

// SetUnchecked writes local position p; p must be inside the window.
func (v *View[T]) SetUnchecked(p image.Point, val T) {
	v.base.SetUnchecked(p.Add(v.rect.Min), val)
}

// PlainData forwards to the base buffer.
func (v *View[T]) PlainData() bool { return v.base.PlainData() }

// FillSolidUnchecked forwards a raw byte fill of local rectangle r to the base.
func (v *View[T]) FillSolidUnchecked(r image.Rectangle, c byte) {
	v.base.FillSolidUnchecked(r.Add(v.rect.Min), c)
}

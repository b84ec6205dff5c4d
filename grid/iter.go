// SPDX-License-Identifier: MIT

// Package grid - rectangular iteration.
//
// Order:
//   - Every stream visits (x0,y0), (x0+1,y0), ..., (x0+w-1,y0), (x0,y0+1), ...
//     regardless of the backing layout. Layout affects locality only.
//   - Calling All/Values again starts a fresh pass; Err reports the outcome
//     of the latest pass. A rectangle rejected up front stays rejected.

package grid

import (
	"image"
	"iter"
)

const ctxCells = "Cells"

// Scan is a checked element stream over a rectangle, in the manner of
// bufio.Scanner: range over All or Values, then inspect Err.
type Scan[T any] struct {
	src     Reader[T]
	rect    image.Rectangle
	trusted bool
	rectErr error // from the up-front check; permanent
	err     error
}

// Cells returns a checked row-major stream over r.
//
// Behavior:
//   - Sized grid: r is validated up front; if it does not fit, the stream is
//     empty and Err reports ErrOutOfBounds.
//   - Other grids: each position is probed with Get; the stream ends at the
//     first rejected position and Err reports it.
func Cells[T any](g Reader[T], r image.Rectangle) *Scan[T] {
	trusted, err := checkRect(ctxCells, g, r)
	return &Scan[T]{src: g, rect: r, trusted: trusted, rectErr: err, err: err}
}

// Err returns the first boundary error met by the stream, if any.
func (s *Scan[T]) Err() error { return s.err }

// Rect returns the rectangle being streamed.
func (s *Scan[T]) Rect() image.Rectangle { return s.rect }

// All yields (position, element) pairs.
func (s *Scan[T]) All() iter.Seq2[image.Point, T] {
	return func(yield func(image.Point, T) bool) {
		s.err = s.rectErr
		if s.err != nil {
			return
		}
		if s.trusted {
			if u, ok := s.src.(UncheckedReader[T]); ok {
				for p, v := range CellsUnchecked(u, s.rect) {
					if !yield(p, v) {
						return
					}
				}
				return
			}
		}
		var p image.Point
		for p.Y = s.rect.Min.Y; p.Y < s.rect.Max.Y; p.Y++ {
			for p.X = s.rect.Min.X; p.X < s.rect.Max.X; p.X++ {
				v, ok := s.src.Get(p)
				if !ok {
					s.err = pointErrorf(ctxCells, p, ErrOutOfBounds)
					return
				}
				if !yield(p, v) {
					return
				}
			}
		}
	}
}

// Values yields elements only.
func (s *Scan[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// CellsUnchecked streams r without validation. r must fit the grid.
func CellsUnchecked[T any](g UncheckedReader[T], r image.Rectangle) iter.Seq2[image.Point, T] {
	return func(yield func(image.Point, T) bool) {
		if b, ok := rowMajorBuffer[T](g); ok && !r.Empty() {
			for y := r.Min.Y; y < r.Max.Y; y++ {
				for i, v := range b.row(y, r.Min.X, r.Max.X) {
					if !yield(image.Point{X: r.Min.X + i, Y: y}, v) {
						return
					}
				}
			}
			return
		}
		var p image.Point
		for p.Y = r.Min.Y; p.Y < r.Max.Y; p.Y++ {
			for p.X = r.Min.X; p.X < r.Max.X; p.X++ {
				if !yield(p, g.GetUnchecked(p)) {
					return
				}
			}
		}
	}
}

// All streams the full extent of a trusted grid. No validation is needed:
// Sized guarantees every position of Bounds(g) is valid.
func All[T any](g TrustedReader[T]) iter.Seq2[image.Point, T] {
	return CellsUnchecked[T](g, Bounds(g))
}

// Values streams the elements of the full extent of a trusted grid.
func Values[T any](g TrustedReader[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range All(g) {
			if !yield(v) {
				return
			}
		}
	}
}

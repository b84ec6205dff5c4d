// SPDX-License-Identifier: MIT

// Package grid - fill kernels.
//
// Failure policy (all checked fills):
//   - Sized destination: the rectangle is validated first; on failure nothing
//     is written.
//   - Destination without a known extent: positions are written in row-major
//     order until the first rejected one; earlier writes stay in place.

package grid

import (
	"image"
	"iter"
	"log/slog"
)

const (
	ctxFill      = "Fill"
	ctxFillFrom  = "FillFrom"
	ctxFillSolid = "FillSolid"
	ctxFillFunc  = "FillFunc"
)

// SolidFiller is a trusted grid whose element memory can be overwritten with
// a raw byte pattern.
type SolidFiller interface {
	Sized
	// PlainData reports whether the element memory holds no pointers, so any
	// byte pattern is a valid element.
	PlainData() bool
	// FillSolidUnchecked writes byte c over every element in r. r must fit
	// and PlainData must be true.
	FillSolidUnchecked(r image.Rectangle, c byte)
}

// Fill writes v to every position of r.
//
// Errors:
//   - ErrOutOfBounds (wrapped with the rectangle or the first bad position).
//   - ErrNilGrid for a nil destination.
func Fill[T any](g Writer[T], r image.Rectangle, v T) error {
	trusted, err := checkRect(ctxFill, g, r)
	if err != nil {
		return err
	}
	if trusted {
		if u, ok := g.(UncheckedWriter[T]); ok {
			FillUnchecked(u, r, v)
			return nil
		}
	}
	var p image.Point
	for p.Y = r.Min.Y; p.Y < r.Max.Y; p.Y++ {
		for p.X = r.Min.X; p.X < r.Max.X; p.X++ {
			if err := g.Set(p, v); err != nil {
				return pointErrorf(ctxFill, p, err)
			}
		}
	}
	return nil
}

// FillUnchecked writes v to every position of r without validation.
// r must fit the grid.
func FillUnchecked[T any](g UncheckedWriter[T], r image.Rectangle, v T) {
	if r.Empty() {
		return
	}
	if b, ok := rowMajorBuffer[T](g); ok {
		if debugEnabled() {
			Logger().Debug("grid: fill row fast path", slog.String("rect", r.String()))
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			span := b.row(y, r.Min.X, r.Max.X)
			for i := range span {
				span[i] = v
			}
		}
		return
	}
	var p image.Point
	for p.Y = r.Min.Y; p.Y < r.Max.Y; p.Y++ {
		for p.X = r.Min.X; p.X < r.Max.X; p.X++ {
			g.SetUnchecked(p, v)
		}
	}
}

// FillFunc writes f(p) to every position p of r, calling f once per position
// in row-major order. f sees grid coordinates, not rectangle-local ones.
//
// Errors:
//   - ErrNilGrid for a nil f; nothing is written.
//   - as Fill.
func FillFunc[T any](g Writer[T], r image.Rectangle, f func(image.Point) T) error {
	if f == nil {
		return rectErrorf(ctxFillFunc, r, ErrNilGrid)
	}
	trusted, err := checkRect(ctxFillFunc, g, r)
	if err != nil {
		return err
	}
	if trusted {
		if u, ok := g.(UncheckedWriter[T]); ok {
			FillFuncUnchecked(u, r, f)
			return nil
		}
	}
	var p image.Point
	for p.Y = r.Min.Y; p.Y < r.Max.Y; p.Y++ {
		for p.X = r.Min.X; p.X < r.Max.X; p.X++ {
			if err := g.Set(p, f(p)); err != nil {
				return pointErrorf(ctxFillFunc, p, err)
			}
		}
	}
	return nil
}

// FillFuncUnchecked is FillFunc without validation; r must fit the grid.
func FillFuncUnchecked[T any](g UncheckedWriter[T], r image.Rectangle, f func(image.Point) T) {
	if b, ok := rowMajorBuffer[T](g); ok && !r.Empty() {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			span := b.row(y, r.Min.X, r.Max.X)
			for i := range span {
				span[i] = f(image.Point{X: r.Min.X + i, Y: y})
			}
		}
		return
	}
	var p image.Point
	for p.Y = r.Min.Y; p.Y < r.Max.Y; p.Y++ {
		for p.X = r.Min.X; p.X < r.Max.X; p.X++ {
			g.SetUnchecked(p, f(p))
		}
	}
}

// FillFrom writes the first w*h elements of seq to r in row-major order.
//
// Behavior:
//   - Excess elements are ignored and never pulled from seq.
//   - If seq ends early, the positions already reached stay written and
//     ErrStreamUnderrun is returned, tagged with the first unwritten position.
//   - The rectangle is checked before seq is touched, so an out-of-bounds
//     rectangle on a Sized grid consumes nothing.
func FillFrom[T any](g Writer[T], r image.Rectangle, seq iter.Seq[T]) error {
	trusted, err := checkRect(ctxFillFrom, g, r)
	if err != nil {
		return err
	}
	if trusted {
		if u, ok := g.(UncheckedWriter[T]); ok {
			return FillFromUnchecked(u, r, seq)
		}
	}
	if r.Empty() {
		return nil
	}
	if seq == nil {
		return underrun(r, 0)
	}
	w, total := r.Dx(), r.Dx()*r.Dy()
	n := 0
	for v := range seq {
		p := image.Point{X: r.Min.X + n%w, Y: r.Min.Y + n/w}
		if err := g.Set(p, v); err != nil {
			return pointErrorf(ctxFillFrom, p, err)
		}
		n++
		if n == total {
			return nil
		}
	}
	return underrun(r, n)
}

// FillFromUnchecked is FillFrom without rectangle validation; r must fit.
// A short stream still reports ErrStreamUnderrun: it is a property of the
// stream, not of the rectangle.
func FillFromUnchecked[T any](g UncheckedWriter[T], r image.Rectangle, seq iter.Seq[T]) error {
	if r.Empty() {
		return nil
	}
	if seq == nil {
		return underrun(r, 0)
	}
	w, total := r.Dx(), r.Dx()*r.Dy()
	n := 0
	for v := range seq {
		g.SetUnchecked(image.Point{X: r.Min.X + n%w, Y: r.Min.Y + n/w}, v)
		n++
		if n == total {
			return nil
		}
	}
	return underrun(r, n)
}

func underrun(r image.Rectangle, n int) error {
	w := r.Dx()
	return pointErrorf(ctxFillFrom, image.Point{X: r.Min.X + n%w, Y: r.Min.Y + n/w}, ErrStreamUnderrun)
}

// FillSolid overwrites the memory of every element in r with byte c.
//
// Errors:
//   - ErrNotPlainData if the element type holds pointers; nothing is written.
//   - ErrOutOfBounds if r does not fit; nothing is written.
func FillSolid(g SolidFiller, r image.Rectangle, c byte) error {
	if _, err := checkRect(ctxFillSolid, g, r); err != nil {
		return err
	}
	if !g.PlainData() {
		return rectErrorf(ctxFillSolid, r, ErrNotPlainData)
	}
	g.FillSolidUnchecked(r, c)
	return nil
}

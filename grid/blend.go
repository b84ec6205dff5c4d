// SPDX-License-Identifier: MIT

package grid

import "image"

const ctxBlend = "Blend"

// UncheckedReadWriter combines the caller-validated read and write capabilities.
type UncheckedReadWriter[T any] interface {
	UncheckedReader[T]
	UncheckedWriter[T]
}

// Blend replaces every element of dst's rectangle dr with combine(d, s), where
// d is the current destination element and s the element at the matching
// position of src's rectangle sr. combine runs exactly once per position, in
// row-major order; it need not be associative. Source and destination element
// types may differ (e.g. a coverage mask blended into colors).
//
// Errors:
//   - ErrSizeMismatch if sr and dr differ in size; nothing is written.
//   - ErrOutOfBounds for either rectangle (or the first bad position, with
//     earlier positions already blended).
func Blend[D, S any](dst ReadWriter[D], dr image.Rectangle, src Reader[S], sr image.Rectangle, combine func(D, S) D) error {
	if !sameSize(dr, sr) {
		return rectErrorf(ctxBlend, dr, ErrSizeMismatch)
	}
	srcTrusted, err := checkRect(ctxBlend, src, sr)
	if err != nil {
		return err
	}
	dstTrusted, err := checkRect(ctxBlend, dst, dr)
	if err != nil {
		return err
	}
	if dr.Empty() {
		return nil
	}
	su, sok := src.(UncheckedReader[S])
	du, dok := dst.(UncheckedReadWriter[D])
	if sok && dok && srcTrusted && dstTrusted {
		BlendUnchecked(du, dr, su, sr, combine)
		return nil
	}

	off := sr.Min.Sub(dr.Min)
	var dp image.Point
	for dp.Y = dr.Min.Y; dp.Y < dr.Max.Y; dp.Y++ {
		for dp.X = dr.Min.X; dp.X < dr.Max.X; dp.X++ {
			sp := dp.Add(off)
			s, ok := src.Get(sp)
			if !ok {
				return pointErrorf(ctxBlend, sp, ErrOutOfBounds)
			}
			d, ok := dst.Get(dp)
			if !ok {
				return pointErrorf(ctxBlend, dp, ErrOutOfBounds)
			}
			if err := dst.Set(dp, combine(d, s)); err != nil {
				return pointErrorf(ctxBlend, dp, err)
			}
		}
	}
	return nil
}

// BlendUnchecked is Blend without validation. Both rectangles must fit their
// grids and share dr's size.
func BlendUnchecked[D, S any](dst UncheckedReadWriter[D], dr image.Rectangle, src UncheckedReader[S], sr image.Rectangle, combine func(D, S) D) {
	if dr.Empty() {
		return
	}
	if db, ok := rowMajorBuffer[D](dst); ok {
		off := sr.Min.Sub(dr.Min)
		for y := dr.Min.Y; y < dr.Max.Y; y++ {
			span := db.row(y, dr.Min.X, dr.Max.X)
			for i := range span {
				span[i] = combine(span[i], src.GetUnchecked(image.Point{X: dr.Min.X + i, Y: y}.Add(off)))
			}
		}
		return
	}
	off := sr.Min.Sub(dr.Min)
	var dp image.Point
	for dp.Y = dr.Min.Y; dp.Y < dr.Max.Y; dp.Y++ {
		for dp.X = dr.Min.X; dp.X < dr.Max.X; dp.X++ {
			dst.SetUnchecked(dp, combine(dst.GetUnchecked(dp), src.GetUnchecked(dp.Add(off))))
		}
	}
}

// BlendClear discards both elements and yields D's zero value.
func BlendClear[D, S any](D, S) D {
	var zero D
	return zero
}

// BlendSource replaces the destination element with the source element.
func BlendSource[T any](_, s T) T { return s }

// BlendDestination keeps the destination element and ignores the source.
func BlendDestination[D, S any](d D, _ S) D { return d }

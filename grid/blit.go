// SPDX-License-Identifier: MIT

// Package grid - copy kernels (Blit, Copy, ScaledBlit).
//
// Contract:
//   - Blit pairs sr and dr element for element in row-major order; their sizes
//     must match. Each element is read before it is written, but overlapping
//     rectangles within one grid are only guaranteed correct when disjoint.
//   - ScaledBlit samples nearest neighbor: destination-local (dx, dy) reads
//     source-local (dx*sw/dw, dy*sh/dh), truncated. An empty dr is a no-op.
//   - Checked variants validate both rectangles up front for Sized grids and
//     otherwise stop at the first rejected read or write (earlier writes stay).

package grid

import (
	"image"
	"log/slog"
)

const (
	ctxBlit       = "Blit"
	ctxCopy       = "Copy"
	ctxScaledBlit = "ScaledBlit"
)

// Blit copies src's rectangle sr onto dst's rectangle dr.
//
// Errors:
//   - ErrSizeMismatch if sr and dr differ in size; nothing is written.
//   - ErrOutOfBounds for either rectangle (or the first bad position).
//   - ErrNilGrid for a nil grid.
func Blit[T any](dst Writer[T], dr image.Rectangle, src Reader[T], sr image.Rectangle) error {
	if !sameSize(dr, sr) {
		return rectErrorf(ctxBlit, dr, ErrSizeMismatch)
	}
	srcTrusted, err := checkRect(ctxBlit, src, sr)
	if err != nil {
		return err
	}
	dstTrusted, err := checkRect(ctxBlit, dst, dr)
	if err != nil {
		return err
	}
	if dr.Empty() {
		return nil
	}
	su, srcFast := src.(UncheckedReader[T])
	srcFast = srcFast && srcTrusted
	du, dstFast := dst.(UncheckedWriter[T])
	dstFast = dstFast && dstTrusted
	if srcFast && dstFast {
		BlitUnchecked(du, dr, su, sr)
		return nil
	}

	off := sr.Min.Sub(dr.Min)
	var dp image.Point
	for dp.Y = dr.Min.Y; dp.Y < dr.Max.Y; dp.Y++ {
		for dp.X = dr.Min.X; dp.X < dr.Max.X; dp.X++ {
			sp := dp.Add(off)
			var v T
			if srcFast {
				v = su.GetUnchecked(sp)
			} else {
				var ok bool
				if v, ok = src.Get(sp); !ok {
					return pointErrorf(ctxBlit, sp, ErrOutOfBounds)
				}
			}
			if dstFast {
				du.SetUnchecked(dp, v)
			} else if err := dst.Set(dp, v); err != nil {
				return pointErrorf(ctxBlit, dp, err)
			}
		}
	}
	return nil
}

// BlitUnchecked copies sr onto dr without validation. Both rectangles must fit
// their grids and share dr's size.
func BlitUnchecked[T any](dst UncheckedWriter[T], dr image.Rectangle, src UncheckedReader[T], sr image.Rectangle) {
	if dr.Empty() {
		return
	}
	db, dok := rowMajorBuffer[T](dst)
	sb, sok := rowMajorBuffer[T](src)
	if dok && sok {
		if debugEnabled() {
			Logger().Debug("grid: blit row fast path", slog.String("dst", dr.String()), slog.String("src", sr.String()))
		}
		for y := 0; y < dr.Dy(); y++ {
			copy(db.row(dr.Min.Y+y, dr.Min.X, dr.Max.X), sb.row(sr.Min.Y+y, sr.Min.X, sr.Min.X+dr.Dx()))
		}
		return
	}
	off := sr.Min.Sub(dr.Min)
	var dp image.Point
	for dp.Y = dr.Min.Y; dp.Y < dr.Max.Y; dp.Y++ {
		for dp.X = dr.Min.X; dp.X < dr.Max.X; dp.X++ {
			dst.SetUnchecked(dp, src.GetUnchecked(dp.Add(off)))
		}
	}
}

// Copy copies the full extent of src onto dst at the origin.
//
// Errors:
//   - ErrOutOfBounds if dst is smaller than src (Sized dst: nothing written).
func Copy[T any](dst Writer[T], src TrustedReader[T]) error {
	if IsNil(src) {
		return rectErrorf(ctxCopy, image.Rectangle{}, ErrNilGrid)
	}
	r := Bounds(src)
	return Blit(dst, r, src, r)
}

// ScaledBlit maps src's rectangle sr onto dst's rectangle dr with
// nearest-neighbor sampling. Sizes may differ in both dimensions.
//
// Errors:
//   - ErrSizeMismatch if sr is empty while dr is not.
//   - ErrOutOfBounds for either rectangle (or the first bad position).
func ScaledBlit[T any](dst Writer[T], dr image.Rectangle, src Reader[T], sr image.Rectangle) error {
	if dr.Empty() {
		return nil
	}
	if sr.Empty() {
		return rectErrorf(ctxScaledBlit, sr, ErrSizeMismatch)
	}
	srcTrusted, err := checkRect(ctxScaledBlit, src, sr)
	if err != nil {
		return err
	}
	dstTrusted, err := checkRect(ctxScaledBlit, dst, dr)
	if err != nil {
		return err
	}
	su, srcFast := src.(UncheckedReader[T])
	du, dstFast := dst.(UncheckedWriter[T])
	if srcFast && srcTrusted && dstFast && dstTrusted {
		ScaledBlitUnchecked(du, dr, su, sr)
		return nil
	}

	dw, dh := dr.Dx(), dr.Dy()
	sw, sh := sr.Dx(), sr.Dy()
	for y := 0; y < dh; y++ {
		sy := sr.Min.Y + y*sh/dh
		for x := 0; x < dw; x++ {
			sp := image.Point{X: sr.Min.X + x*sw/dw, Y: sy}
			v, ok := src.Get(sp)
			if !ok {
				return pointErrorf(ctxScaledBlit, sp, ErrOutOfBounds)
			}
			dp := image.Point{X: dr.Min.X + x, Y: dr.Min.Y + y}
			if err := dst.Set(dp, v); err != nil {
				return pointErrorf(ctxScaledBlit, dp, err)
			}
		}
	}
	return nil
}

// ScaledBlitUnchecked is ScaledBlit without validation. Both rectangles must
// fit their grids; an empty dr is a no-op and an empty sr is undefined.
func ScaledBlitUnchecked[T any](dst UncheckedWriter[T], dr image.Rectangle, src UncheckedReader[T], sr image.Rectangle) {
	if dr.Empty() {
		return
	}
	dw, dh := dr.Dx(), dr.Dy()
	sw, sh := sr.Dx(), sr.Dy()
	for y := 0; y < dh; y++ {
		sy := sr.Min.Y + y*sh/dh
		for x := 0; x < dw; x++ {
			dst.SetUnchecked(
				image.Point{X: dr.Min.X + x, Y: dr.Min.Y + y},
				src.GetUnchecked(image.Point{X: sr.Min.X + x*sw/dw, Y: sy}),
			)
		}
	}
}

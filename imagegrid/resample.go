// SPDX-License-Identifier: MIT

package imagegrid

import (
	"image"
	"log/slog"

	"github.com/katalvlaran/lvgrid/grid"
	xdraw "golang.org/x/image/draw"
)

const ctxResample = "Resample"

// Resample scales src's rectangle sr onto dst's rectangle dr with the given
// interpolator, replacing the destination pixels. A nil interpolator means
// xdraw.BiLinear. Rectangles are in local coordinates.
//
// Errors:
//   - grid.ErrNilGrid for a nil surface.
//   - grid.ErrOutOfBounds if either rectangle does not fit.
//   - grid.ErrSizeMismatch if sr is empty while dr is not.
func Resample(dst *RGBA, dr image.Rectangle, src *RGBA, sr image.Rectangle, q xdraw.Interpolator) error {
	if dst == nil || src == nil {
		return rectErrorf(ctxResample, dr, grid.ErrNilGrid)
	}
	if !grid.Fits(dst, dr) {
		return rectErrorf(ctxResample, dr, grid.ErrOutOfBounds)
	}
	if !grid.Fits(src, sr) {
		return rectErrorf(ctxResample, sr, grid.ErrOutOfBounds)
	}
	if dr.Empty() {
		return nil
	}
	if sr.Empty() {
		return rectErrorf(ctxResample, sr, grid.ErrSizeMismatch)
	}
	if q == nil {
		q = xdraw.BiLinear
	}
	grid.Logger().Debug("imagegrid: resample",
		slog.String("dst", dr.String()), slog.String("src", sr.String()))
	q.Scale(dst.img, dr.Add(dst.img.Rect.Min), src.img, sr.Add(src.img.Rect.Min), xdraw.Src, nil)
	return nil
}

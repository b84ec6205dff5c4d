// SPDX-License-Identifier: MIT

// Package imagegrid adapts the standard image types to the grid capability
// interfaces so that grid kernels (Fill, Blit, ScaledBlit, Blend, Cells) run
// directly over image pixels, and bridges back to golang.org/x/image/draw for
// interpolated scaling.
//
// Coordinates:
//   - Positions are local: (0,0) is the image's Rect.Min, whatever the image's
//     origin. Size() is Rect.Size().
//
// Types:
//   - Gray exposes *image.Gray as grid.Surface[uint8].
//   - RGBA exposes *image.RGBA as grid.Surface[color.RGBA].
//   - Both also implement grid.SolidFiller over their Pix bytes.
//
// Conversions:
//   - Grayscale and Image materialise any trusted grid as a fresh image.
//   - FromImage converts an arbitrary image.Image into an RGBA surface.
//   - Resample scales between RGBA surfaces with an xdraw.Interpolator
//     (BiLinear, CatmullRom, ...); grid.ScaledBlit remains the exact
//     nearest-neighbor kernel.
package imagegrid

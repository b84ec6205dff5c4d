// SPDX-License-Identifier: MIT

package imagegrid

import (
	"image"
	"image/color"

	"github.com/katalvlaran/lvgrid/grid"
)

// Gray exposes an *image.Gray as a grid of 8-bit luminance values.
type Gray struct {
	img *image.Gray
}

var (
	_ grid.Surface[uint8] = (*Gray)(nil)
	_ grid.SolidFiller    = (*Gray)(nil)
)

// NewGray allocates a zeroed size.X × size.Y gray image.
//
// Errors:
//   - grid.ErrInvalidSize for negative dimensions.
func NewGray(size image.Point) (*Gray, error) {
	if size.X < 0 || size.Y < 0 {
		return nil, rectErrorf("NewGray", image.Rectangle{Max: size}, grid.ErrInvalidSize)
	}
	return &Gray{img: image.NewGray(image.Rectangle{Max: size})}, nil
}

// WrapGray adapts img without copying; writes are visible in img.Pix.
//
// Errors:
//   - grid.ErrNilGrid for a nil image.
func WrapGray(img *image.Gray) (*Gray, error) {
	if img == nil {
		return nil, rectErrorf("WrapGray", image.Rectangle{}, grid.ErrNilGrid)
	}
	return &Gray{img: img}, nil
}

// Image returns the underlying image.
func (g *Gray) Image() *image.Gray { return g.img }

// Size returns the image extent.
func (g *Gray) Size() image.Point { return g.img.Rect.Size() }

// Get returns the luminance at local position p.
func (g *Gray) Get(p image.Point) (uint8, bool) {
	q := p.Add(g.img.Rect.Min)
	if !q.In(g.img.Rect) {
		return 0, false
	}
	return g.img.Pix[g.img.PixOffset(q.X, q.Y)], true
}

// GetUnchecked returns the luminance at p; p must be valid.
func (g *Gray) GetUnchecked(p image.Point) uint8 {
	q := p.Add(g.img.Rect.Min)
	return g.img.Pix[g.img.PixOffset(q.X, q.Y)]
}

// Set stores v at p, or returns grid.ErrOutOfBounds.
func (g *Gray) Set(p image.Point, v uint8) error {
	q := p.Add(g.img.Rect.Min)
	if !q.In(g.img.Rect) {
		return grid.ErrOutOfBounds
	}
	g.img.Pix[g.img.PixOffset(q.X, q.Y)] = v
	return nil
}

// SetUnchecked stores v at p; p must be valid.
func (g *Gray) SetUnchecked(p image.Point, v uint8) {
	q := p.Add(g.img.Rect.Min)
	g.img.Pix[g.img.PixOffset(q.X, q.Y)] = v
}

// PlainData is always true: pixels are bytes.
func (g *Gray) PlainData() bool { return true }

// FillSolidUnchecked writes c over every pixel of r; r must fit.
func (g *Gray) FillSolidUnchecked(r image.Rectangle, c byte) {
	fillRows(g.img.Pix, g.img.PixOffset, r.Add(g.img.Rect.Min), 1, c)
}

// Grayscale materialises a trusted luminance grid as a new *image.Gray with
// origin (0,0).
func Grayscale(g grid.TrustedReader[uint8]) *image.Gray {
	img := image.NewGray(grid.Bounds(g))
	for p, v := range grid.All(g) {
		img.Pix[img.PixOffset(p.X, p.Y)] = v
	}
	return img
}

// Luma converts a color to its 8-bit luminance with the standard library's
// gray model.
func Luma(c color.RGBA) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}

// fillRows sets bpp bytes per pixel to c across r, row by row.
func fillRows(pix []byte, offset func(x, y int) int, r image.Rectangle, bpp int, c byte) {
	if r.Empty() {
		return
	}
	n := r.Dx() * bpp
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := offset(r.Min.X, y)
		row := pix[i : i+n]
		for j := range row {
			row[j] = c
		}
	}
}

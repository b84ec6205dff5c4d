// SPDX-License-Identifier: MIT

package imagegrid

import (
	"image"
	"image/color"

	"github.com/katalvlaran/lvgrid/grid"
	xdraw "golang.org/x/image/draw"
)

// RGBA exposes an *image.RGBA as a grid of premultiplied colors.
type RGBA struct {
	img *image.RGBA
}

var (
	_ grid.Surface[color.RGBA] = (*RGBA)(nil)
	_ grid.SolidFiller         = (*RGBA)(nil)
)

// NewRGBA allocates a transparent size.X × size.Y image.
//
// Errors:
//   - grid.ErrInvalidSize for negative dimensions.
func NewRGBA(size image.Point) (*RGBA, error) {
	if size.X < 0 || size.Y < 0 {
		return nil, rectErrorf("NewRGBA", image.Rectangle{Max: size}, grid.ErrInvalidSize)
	}
	return &RGBA{img: image.NewRGBA(image.Rectangle{Max: size})}, nil
}

// WrapRGBA adapts img without copying; writes are visible in img.Pix.
//
// Errors:
//   - grid.ErrNilGrid for a nil image.
func WrapRGBA(img *image.RGBA) (*RGBA, error) {
	if img == nil {
		return nil, rectErrorf("WrapRGBA", image.Rectangle{}, grid.ErrNilGrid)
	}
	return &RGBA{img: img}, nil
}

// FromImage converts any image into a new RGBA surface with origin (0,0).
//
// Errors:
//   - grid.ErrNilGrid for a nil image.
func FromImage(src image.Image) (*RGBA, error) {
	if src == nil {
		return nil, rectErrorf("FromImage", image.Rectangle{}, grid.ErrNilGrid)
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rectangle{Max: b.Size()})
	xdraw.Copy(dst, image.Point{}, src, b, xdraw.Src, nil)
	return &RGBA{img: dst}, nil
}

// Image returns the underlying image.
func (g *RGBA) Image() *image.RGBA { return g.img }

// Size returns the image extent.
func (g *RGBA) Size() image.Point { return g.img.Rect.Size() }

// Get returns the color at local position p.
func (g *RGBA) Get(p image.Point) (color.RGBA, bool) {
	q := p.Add(g.img.Rect.Min)
	if !q.In(g.img.Rect) {
		return color.RGBA{}, false
	}
	return g.at(q), true
}

// GetUnchecked returns the color at p; p must be valid.
func (g *RGBA) GetUnchecked(p image.Point) color.RGBA {
	return g.at(p.Add(g.img.Rect.Min))
}

// Set stores v at p, or returns grid.ErrOutOfBounds.
func (g *RGBA) Set(p image.Point, v color.RGBA) error {
	q := p.Add(g.img.Rect.Min)
	if !q.In(g.img.Rect) {
		return grid.ErrOutOfBounds
	}
	g.put(q, v)
	return nil
}

// SetUnchecked stores v at p; p must be valid.
func (g *RGBA) SetUnchecked(p image.Point, v color.RGBA) {
	g.put(p.Add(g.img.Rect.Min), v)
}

// PlainData is always true: pixels are bytes.
func (g *RGBA) PlainData() bool { return true }

// FillSolidUnchecked writes c over all four channels of every pixel in r.
func (g *RGBA) FillSolidUnchecked(r image.Rectangle, c byte) {
	fillRows(g.img.Pix, g.img.PixOffset, r.Add(g.img.Rect.Min), 4, c)
}

func (g *RGBA) at(q image.Point) color.RGBA {
	i := g.img.PixOffset(q.X, q.Y)
	s := g.img.Pix[i : i+4 : i+4]
	return color.RGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

func (g *RGBA) put(q image.Point, v color.RGBA) {
	i := g.img.PixOffset(q.X, q.Y)
	s := g.img.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = v.R, v.G, v.B, v.A
}

// Image materialises a trusted color grid as a new *image.RGBA with origin (0,0).
func Image(g grid.TrustedReader[color.RGBA]) *image.RGBA {
	img := image.NewRGBA(grid.Bounds(g))
	out := &RGBA{img: img}
	for p, v := range grid.All(g) {
		out.put(p, v)
	}
	return img
}

// SPDX-License-Identifier: MIT

package gridplot

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvgrid/grid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// HeatMap builds a gonum plot of g with a heat palette.
//
// Errors:
//   - grid.ErrNilGrid for a nil grid.
//   - grid.ErrInvalidSize for an empty extent.
func HeatMap(g grid.TrustedReader[float64], opts ...Option) (*plot.Plot, error) {
	hg, err := newHeatGrid(g)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	hm := plotter.NewHeatMap(hg, palette.Heat(o.colors, 1))
	hm.Min, hm.Max = valueRange(g)

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "row (flipped)"
	p.Add(hm)
	return p, nil
}

// WriteHeatMap renders g to w in the given format ("png", "svg", "pdf", ...)
// at w×h.
func WriteHeatMap(out io.Writer, g grid.TrustedReader[float64], w, h vg.Length, format string, opts ...Option) error {
	p, err := HeatMap(g, opts...)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(w, h, format)
	if err != nil {
		return err
	}
	n, err := wt.WriteTo(out)
	grid.Logger().Debug("gridplot: heat map written",
		slog.String("format", format), slog.Int64("bytes", n))
	return err
}

// SaveHeatMap renders g to path; the extension selects the format.
func SaveHeatMap(path string, g grid.TrustedReader[float64], w, h vg.Length, opts ...Option) error {
	p, err := HeatMap(g, opts...)
	if err != nil {
		return err
	}
	return p.Save(w, h, path)
}

// SPDX-License-Identifier: MIT
package gridplot_test

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/gridplot"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func ramp(t *testing.T) *grid.Buffer[float64] {
	t.Helper()
	b, err := grid.FromFunc(image.Pt(4, 3), func(p image.Point) float64 { return float64(p.X * p.Y) })
	require.NoError(t, err)
	return b
}

func TestWriteHeatMapPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, gridplot.WriteHeatMap(&buf, ramp(t), 4*vg.Inch, 3*vg.Inch, "png", gridplot.WithTitle("ramp")))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.False(t, img.Bounds().Empty())
}

func TestSaveHeatMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heat.svg")
	// A constant grid with a NaN still renders.
	b, err := grid.FromFunc(image.Pt(2, 2), func(p image.Point) float64 {
		if p == (image.Point{}) {
			return math.NaN()
		}
		return 5
	})
	require.NoError(t, err)
	require.NoError(t, gridplot.SaveHeatMap(path, b, 3*vg.Inch, 3*vg.Inch, gridplot.WithColors(4)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "<svg")
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, gridplot.WriteHTML(&buf, ramp(t), gridplot.WithTitle("ramp grid")))
	out := buf.String()
	require.Contains(t, out, "echarts")
	require.Contains(t, out, "ramp grid")
	require.Contains(t, out, "heatmap")
}

func TestRejects(t *testing.T) {
	var buf bytes.Buffer
	empty, err := grid.New[float64](image.Pt(3, 0))
	require.NoError(t, err)

	require.ErrorIs(t, gridplot.WriteHTML(&buf, empty), grid.ErrInvalidSize)
	require.ErrorIs(t, gridplot.WriteHeatMap(&buf, nil, vg.Inch, vg.Inch, "png"), grid.ErrNilGrid)
	var typedNil *grid.Buffer[float64]
	require.ErrorIs(t, gridplot.WriteHTML(&buf, typedNil), grid.ErrNilGrid)
	_, err = gridplot.HeatMap(typedNil)
	require.ErrorIs(t, err, grid.ErrNilGrid)
	_, err = gridplot.HeatMap(empty)
	require.ErrorIs(t, err, grid.ErrInvalidSize)
	require.Panics(t, func() { gridplot.WithColors(1) })
}

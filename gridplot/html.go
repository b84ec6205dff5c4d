// SPDX-License-Identifier: MIT

package gridplot

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/katalvlaran/lvgrid/grid"
)

// viridis is the colour ramp for HTML heat maps.
var viridis = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// WriteHTML renders g as an ECharts heat map page.
//
// Errors:
//   - grid.ErrNilGrid for a nil grid.
//   - grid.ErrInvalidSize for an empty extent.
func WriteHTML(out io.Writer, g grid.TrustedReader[float64], settings ...Option) error {
	hg, err := newHeatGrid(g)
	if err != nil {
		return err
	}
	o := gatherOptions(settings...)
	lo, hi := valueRange(g)

	xs := make([]string, hg.size.X)
	for i := range xs {
		xs[i] = strconv.Itoa(i)
	}
	// Category axes grow upwards; list rows top-down by reversing.
	ys := make([]string, hg.size.Y)
	for i := range ys {
		ys[i] = strconv.Itoa(hg.size.Y - 1 - i)
	}

	data := make([]opts.HeatMapData, 0, hg.size.X*hg.size.Y)
	for p, v := range grid.All(g) {
		data = append(data, opts.HeatMapData{Value: [3]interface{}{p.X, hg.size.Y - 1 - p.Y, v}})
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: o.title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xs}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: ys}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(lo),
			Max:        float32(hi),
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)
	hm.SetXAxis(xs).AddSeries("grid", data)
	return hm.Render(out)
}

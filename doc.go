// Package lvgrid is a toolkit for two-dimensional grids of any element type:
// pixel buffers, tile maps, occupancy masks, matrices.
//
// 🚀 What is lvgrid?
//
//	One set of capability interfaces and bulk kernels, many storages:
//		• Layouts: row-major, column-major, serpentine or your own
//		• Backends: flat buffers (owned or borrowed), windows, bit-packed masks
//		• Kernels: iteration, fill, blit, nearest-neighbor scaling, blending
//		• Ownership: unique, shared and reference-counted wrappers
//		• Conversion: lazy element mapping, eager migration between backends
//		• Interop: image.Gray/image.RGBA, gonum matrices, heat-map plots
//		• Analysis: islands, labelling, flood fill, bridging, shortest paths
//
// ✨ Why choose lvgrid?
//
//   - Checked by default: out-of-range positions and rectangles are reported,
//     never silently clipped
//   - Fast when trusted: unchecked variants and row-span fast paths for
//     callers that already validated
//   - Storage-agnostic: every kernel runs on anything that implements the
//     capabilities it needs
//
// Under the hood, everything is organized into subpackages:
//
//	layout/    — index strategies mapping (x, y) to a flat index and back
//	grid/      — capabilities, backends, kernels, ownership and conversion
//	imagegrid/ — image.Gray / image.RGBA surfaces and x/image/draw resampling
//	matgrid/   — gonum *mat.Dense surfaces, products and transposes
//	gridplot/  — heat maps through gonum/plot (PNG, SVG, PDF) and go-echarts (HTML)
//	gridgraph/ — components, labels, flood fill, bridges and shortest paths
//
// Quick ASCII example:
//
//	    ┌───┬───┐        ┌───┬───┬───┬───┐
//	    │ a │ b │  ──►   │ a │ a │ b │ b │
//	    ├───┼───┤ 2×2    ├───┼───┼───┼───┤
//	    │ c │ d │ →4×4   │ a │ a │ b │ b │
//	    └───┴───┘        │ c │ c │ d │ d │ ...
//
//	is grid.ScaledBlit with nearest-neighbor sampling.
//
//	go get github.com/katalvlaran/lvgrid
package lvgrid

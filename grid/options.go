// SPDX-License-Identifier: MIT

// Package grid: functional configuration for storage backends.
//
// Design goals:
//   - No dead switches: every option changes backend behavior and is tested.
//   - Safe by construction: option constructors panic only on nonsensical
//     values (programmer error); constructors themselves never panic.

package grid

import "github.com/katalvlaran/lvgrid/layout"

// ---------- Internal panic messages ----------

const panicLayoutNil = "grid: WithLayout: layout must be non-nil"

// Option mutates backend options.
type Option func(*Options)

// Options holds the effective backend configuration. Fields are unexported;
// constructors accept ...Option and resolve them through gatherOptions.
type Options struct {
	layout layout.Layout // storage ordering; layout.Default
}

// WithLayout selects the position→offset strategy of the backing store.
// Panics if l is nil.
func WithLayout(l layout.Layout) Option {
	if l == nil {
		panic(panicLayoutNil)
	}
	return func(o *Options) { o.layout = l }
}

// defaultOptions returns the zero-configuration options.
func defaultOptions() Options {
	return Options{layout: layout.Default}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

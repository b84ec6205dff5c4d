// SPDX-License-Identifier: MIT

package gridplot

// Option configures a rendering.
type Option func(*options)

type options struct {
	title  string
	colors int
}

func defaultOptions() options {
	return options{colors: 12}
}

// WithTitle sets the chart title.
func WithTitle(s string) Option {
	return func(o *options) { o.title = s }
}

// WithColors sets the number of palette steps. Panics if n < 2.
func WithColors(n int) Option {
	if n < 2 {
		panic("gridplot: WithColors(n) requires n >= 2")
	}
	return func(o *options) { o.colors = n }
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// SPDX-License-Identifier: MIT

package transform

import "github.com/katalvlaran/openmath/mat4"

// config holds every knob a Step may consult. It is passed by value.
type config struct {
	start       mat4.Mat4 // initial matrix
	epsilon     float64   // lengths and extents at or below this are degenerate
	finiteCheck bool      // reject NaN/Inf after each step
}

const (
	defaultEpsilon     = 1e-12
	defaultFiniteCheck = true
)

// newConfig resolves options over the defaults. Later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		start:       mat4.Identity[float64](),
		epsilon:     defaultEpsilon,
		finiteCheck: defaultFiniteCheck,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

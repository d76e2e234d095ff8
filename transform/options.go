// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/katalvlaran/openmath/mat4"
)

// Option customizes a Build call.
type Option func(*config)

// WithStart sets the matrix the first step is applied to (default identity).
func WithStart(m mat4.Mat4) Option {
	return func(c *config) {
		c.start = m
	}
}

// WithEpsilon sets the tolerance used by degeneracy checks.
// Panics if eps is negative or NaN.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic("transform: WithEpsilon(eps<0 or NaN)")
	}
	return func(c *config) {
		c.epsilon = eps
	}
}

// WithFiniteCheck toggles the NaN/Inf check run after every step.
func WithFiniteCheck(on bool) Option {
	return func(c *config) {
		c.finiteCheck = on
	}
}

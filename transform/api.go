// SPDX-License-Identifier: MIT

// Package transform - public entry point.
//
// Build is the single orchestrator: it resolves options once, then folds the
// steps over the start matrix. Step factories live in impl_*.go.

package transform

import (
	"fmt"

	"github.com/katalvlaran/openmath/mat4"
)

// Step maps the accumulated matrix to the next one. Steps must validate
// their parameters and return sentinel errors instead of panicking.
type Step func(m mat4.Mat4, cfg config) (mat4.Mat4, error)

// Build applies steps in order, starting from the identity or the
// WithStart matrix. The first failing step stops the fold; its error is
// returned wrapped as "Build: step <i>: ...".
//
// Complexity: O(len(opts) + 64·len(steps)).
func Build(opts []Option, steps ...Step) (mat4.Mat4, error) {
	cfg := newConfig(opts...)
	m := cfg.start

	for i, step := range steps {
		if step == nil {
			return mat4.Mat4{}, fmt.Errorf("Build: step %d: %w", i, ErrNilStep)
		}
		next, err := step(m, cfg)
		if err != nil {
			return mat4.Mat4{}, fmt.Errorf("Build: step %d: %w", i, err)
		}
		if cfg.finiteCheck && !next.IsFinite() {
			return mat4.Mat4{}, fmt.Errorf("Build: step %d: %w", i, ErrNonFinite)
		}
		m = next
	}

	return m, nil
}

// Compose is Build with default options.
func Compose(steps ...Step) (mat4.Mat4, error) { return Build(nil, steps...) }

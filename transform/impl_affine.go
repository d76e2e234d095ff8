// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/openmath/mat4"
	"github.com/katalvlaran/openmath/scalar"
	"github.com/katalvlaran/openmath/vector"
)

const (
	methodTranslate = "Translate"
	methodRotate    = "Rotate"
	methodScale     = "Scale"
	methodScaleBy   = "ScaleBy"
	methodMatrix    = "Matrix"
)

// Translate moves by v.
func Translate(v vector.Vec3) Step {
	return func(m mat4.Mat4, _ config) (mat4.Mat4, error) {
		return m.Translated(v), nil
	}
}

// Rotate turns by angle around axis. The axis need not be unit length but
// must be longer than the configured epsilon.
func Rotate(angle scalar.Angle, axis vector.Vec3) Step {
	return func(m mat4.Mat4, cfg config) (mat4.Mat4, error) {
		if err := validateAxis(methodRotate, "axis", axis, cfg.epsilon); err != nil {
			return m, err
		}
		return mat4.Rotated(m, angle, axis), nil
	}
}

// Scale multiplies each axis by the matching component of v.
// Zero factors are allowed; they flatten the space.
func Scale(v vector.Vec3) Step {
	return func(m mat4.Mat4, _ config) (mat4.Mat4, error) {
		return m.Scaled(v), nil
	}
}

// ScaleBy scales every axis by s.
func ScaleBy(s float64) Step {
	return func(m mat4.Mat4, _ config) (mat4.Mat4, error) {
		return m.ScaledBy(s), nil
	}
}

// Matrix left-multiplies an arbitrary matrix.
func Matrix(o mat4.Mat4) Step {
	return func(m mat4.Mat4, _ config) (mat4.Mat4, error) {
		return o.Mul(m), nil
	}
}

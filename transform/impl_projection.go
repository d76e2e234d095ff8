// SPDX-License-Identifier: MIT

// Package transform - projection and view steps.
//
// Each step validates what the bare mat4 constructor would otherwise turn
// into NaN or ±Inf, then left-multiplies the constructed matrix.

package transform

import (
	"fmt"

	"github.com/katalvlaran/openmath/mat4"
	"github.com/katalvlaran/openmath/scalar"
	"github.com/katalvlaran/openmath/vector"
)

const (
	methodPerspective = "Perspective"
	methodOrtho       = "Ortho"
	methodLookAt      = "LookAt"
)

// Perspective applies a perspective projection with vertical field of view
// angle and aspect ratio width/height.
func Perspective(angle scalar.Angle, ratio, near, far float64) Step {
	return func(m mat4.Mat4, cfg config) (mat4.Mat4, error) {
		if err := validateRatio(methodPerspective, ratio); err != nil {
			return m, err
		}
		if err := validateExtent(methodPerspective, "depth", near, far, cfg.epsilon); err != nil {
			return m, err
		}
		return mat4.Perspective(angle, ratio, near, far).Mul(m), nil
	}
}

// Ortho applies an orthographic projection of the given box.
func Ortho(left, right, bottom, top, near, far float64) Step {
	return func(m mat4.Mat4, cfg config) (mat4.Mat4, error) {
		if err := validateExtent(methodOrtho, "horizontal", left, right, cfg.epsilon); err != nil {
			return m, err
		}
		if err := validateExtent(methodOrtho, "vertical", bottom, top, cfg.epsilon); err != nil {
			return m, err
		}
		if err := validateExtent(methodOrtho, "depth", near, far, cfg.epsilon); err != nil {
			return m, err
		}
		return mat4.Ortho(left, right, bottom, top, near, far).Mul(m), nil
	}
}

// LookAt applies the view matrix of a camera at from looking at to.
// from == to, a zero up vector, or up parallel to the view direction all
// leave the camera basis undefined and fail with ErrDegenerateAxis.
func LookAt(from, to, up vector.Vec3) Step {
	return func(m mat4.Mat4, cfg config) (mat4.Mat4, error) {
		fwd := to.Sub(from)
		if err := validateAxis(methodLookAt, "forward", fwd, cfg.epsilon); err != nil {
			return m, err
		}
		if err := validateAxis(methodLookAt, "up", up, cfg.epsilon); err != nil {
			return m, err
		}
		side := vector.Normalize3(fwd).Cross(vector.Normalize3(up))
		if err := validateAxis(methodLookAt, "side", side, cfg.epsilon); err != nil {
			return m, fmt.Errorf("%w (up is parallel to the view direction)", err)
		}
		return mat4.LookAt(from, to, up).Mul(m), nil
	}
}

// SPDX-License-Identifier: MIT

// Package transform composes 4×4 transforms from a list of steps.
//
// A Step is a function that receives the matrix accumulated so far and the
// resolved configuration, and returns the next matrix. Build starts from the
// identity (or WithStart) and applies steps in order. Every step factory
// left-multiplies, so the last step listed is the last one applied to a
// point:
//
//	m, err := transform.Build(nil,
//	    transform.Scale(vector.New3(2.0, 2, 2)),
//	    transform.Rotate(scalar.Deg(90), vector.New3(0.0, 0, 1)),
//	    transform.Translate(vector.New3(1.0, 0, 0)),
//	)
//
// Unlike the mat4 constructors, which propagate NaN on degenerate input,
// step factories validate their parameters and return sentinel errors:
//
//   - ErrDegenerateAxis:   zero rotation axis, or look-at forward parallel to up.
//   - ErrDegenerateVolume: empty projection box (near == far, left == right, ...).
//   - ErrBadRatio:         aspect ratio not strictly positive.
//   - ErrNonFinite:        a step produced NaN or ±Inf (WithFiniteCheck).
//
// Pipelines can also be read from YAML with Decode; see pipeline.go for the
// document layout.
//
// Option constructors panic on meaningless values. Steps never panic.
package transform

// SPDX-License-Identifier: MIT

package transform

import "errors"

// Validation sentinels. Callers branch with errors.Is; context is attached
// with %w at the step and Build boundaries.
var (
	// ErrDegenerateAxis indicates a direction with (near) zero length: a
	// rotation axis, or the side vector of a look-at camera.
	ErrDegenerateAxis = errors.New("transform: degenerate axis")

	// ErrDegenerateVolume indicates a projection box with zero extent along
	// some axis.
	ErrDegenerateVolume = errors.New("transform: degenerate volume")

	// ErrBadRatio indicates a non-positive (or NaN) aspect ratio.
	ErrBadRatio = errors.New("transform: aspect ratio must be > 0")

	// ErrNonFinite indicates a step produced NaN or ±Inf cells.
	ErrNonFinite = errors.New("transform: non-finite matrix")

	// ErrNilStep indicates a nil Step was passed to Build.
	ErrNilStep = errors.New("transform: nil step")
)

// Pipeline document errors.
var (
	ErrUnknownOp    = errors.New("transform: unknown op")
	ErrMissingField = errors.New("transform: missing field")
	ErrBadArity     = errors.New("transform: wrong number of components")

	// ErrUnexpectedField indicates a step key its op does not read.
	ErrUnexpectedField = errors.New("transform: field not used by op")
)

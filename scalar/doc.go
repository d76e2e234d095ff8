// SPDX-License-Identifier: MIT

// Package scalar defines the element types every openmath vector and matrix
// is parameterized over.
//
// Capability tiers:
//
//	Scalar: any integer or floating-point type (+ - * / and comparison).
//	Real:   floating-point types; required by rotation, normalization,
//	        projection and view builders.
//
// Neg is offered on every Scalar; for unsigned types it wraps modulo 2^n.
//
// Transcendental helpers (Sqrt, Sin, Cos, Tan) accept any Scalar. float32 goes
// through github.com/chewxy/math32 so it never widens; every other type is
// evaluated in float64 and converted back (integers truncate).
//
// Angle is the tagged radians/degrees value taken by every rotation and
// projection constructor.
package scalar

// SPDX-License-Identifier: MIT

// Package vector provides the fixed-size value types Vector2, Vector3 and
// Vector4 over any scalar.Scalar element type.
//
// All operations are componentwise and return new values; nothing aliases.
// Indexing outside a vector's arity panics: indices are expected to be
// constants, so a bad one is a programming error, not data.
//
// Length is defined for every scalar type and always returns float64.
// Normalize2/3/4 are package functions restricted to scalar.Real, so integer
// vectors cannot be normalized by accident; normalizing a zero vector yields
// NaN components and is not guarded against.
package vector

// SPDX-License-Identifier: MIT

// Package mat4 - conversions to and from other Go matrix types.
//
//   - mathgl (mgl32/mgl64) stores Mat4 column-major, the same flattening as
//     Array, so conversion is a straight element copy.
//   - golang.org/x/image/math/f32 stores Mat4 row-major: m[4*r + c].

package mat4

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/openmath/scalar"
	"github.com/katalvlaran/openmath/vector"
)

// ToMGL32 converts m to a mathgl single-precision matrix.
func (m Matrix4[V]) ToMGL32() mgl32.Mat4 {
	var out mgl32.Mat4
	for i, v := range m.Array() {
		out[i] = float32(v)
	}
	return out
}

// ToMGL64 converts m to a mathgl double-precision matrix.
func (m Matrix4[V]) ToMGL64() mgl64.Mat4 {
	var out mgl64.Mat4
	for i, v := range m.Array() {
		out[i] = float64(v)
	}
	return out
}

// ToF32 converts m to the row-major x/image matrix.
func (m Matrix4[V]) ToF32() f32.Mat4 {
	var out f32.Mat4
	for c := 0; c < dim; c++ {
		col := m.Column(c).Array()
		for r, v := range col {
			out[dim*r+c] = float32(v)
		}
	}
	return out
}

// FromMGL32 converts a mathgl single-precision matrix.
func FromMGL32[V scalar.Scalar](src mgl32.Mat4) Matrix4[V] {
	var a [16]V
	for i, v := range src {
		a[i] = V(v)
	}
	return FromArray(a)
}

// FromMGL64 converts a mathgl double-precision matrix.
func FromMGL64[V scalar.Scalar](src mgl64.Mat4) Matrix4[V] {
	var a [16]V
	for i, v := range src {
		a[i] = V(v)
	}
	return FromArray(a)
}

// FromF32 converts a row-major x/image matrix.
func FromF32[V scalar.Scalar](src f32.Mat4) Matrix4[V] {
	var m Matrix4[V]
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			m.Set(c, r, V(src[dim*r+c]))
		}
	}
	return m
}

// Convert changes the scalar type of every cell.
func Convert[To, From scalar.Scalar](m Matrix4[From]) Matrix4[To] {
	return Matrix4[To]{
		X: vector.Convert4[To](m.X),
		Y: vector.Convert4[To](m.Y),
		Z: vector.Convert4[To](m.Z),
		W: vector.Convert4[To](m.W),
	}
}

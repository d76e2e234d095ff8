// SPDX-License-Identifier: MIT

package mat4

import (
	"github.com/katalvlaran/openmath/scalar"
	"github.com/katalvlaran/openmath/vector"
)

// Each builder below forms the matrix of one operation, T, and returns
// T * m. The mutating siblings replace the receiver with that result.

// Translation returns the identity with column 3 = (v, 1).
func Translation[V scalar.Scalar](v vector.Vector3[V]) Matrix4[V] {
	t := Identity[V]()
	t.W = v.Extend(1)
	return t
}

// Rotation returns the rotation by angle about axis (Rodrigues' formula).
// The axis is normalized first; a zero axis yields NaN cells.
func Rotation[V scalar.Real](angle scalar.Angle, axis vector.Vector3[V]) Matrix4[V] {
	rad := angle.Radians()
	a := vector.Normalize3(axis)
	c := 1 - V(scalar.Cos(rad)) // one minus cos
	s := V(scalar.Sin(rad))

	r := Identity[V]()
	r.X = vector.Vector4[V]{
		X: 1 + c*(a.X*a.X-1),
		Y: a.Z*s + c*a.X*a.Y,
		Z: -a.Y*s + c*a.X*a.Z,
	}
	r.Y = vector.Vector4[V]{
		X: -a.Z*s + c*a.X*a.Y,
		Y: 1 + c*(a.Y*a.Y-1),
		Z: a.X*s + c*a.Y*a.Z,
	}
	r.Z = vector.Vector4[V]{
		X: a.Y*s + c*a.X*a.Z,
		Y: -a.X*s + c*a.Y*a.Z,
		Z: 1 + c*(a.Z*a.Z-1),
	}
	return r
}

// Scaling returns Diagonal(v.X, v.Y, v.Z, 1).
func Scaling[V scalar.Scalar](v vector.Vector3[V]) Matrix4[V] {
	return Diagonal(v.X, v.Y, v.Z, 1)
}

// Translated returns Translation(v) * m.
func (m Matrix4[V]) Translated(v vector.Vector3[V]) Matrix4[V] { return Translation(v).Mul(m) }

// TranslatedXYZ is Translated with the vector spelled out.
func (m Matrix4[V]) TranslatedXYZ(x, y, z V) Matrix4[V] {
	return m.Translated(vector.Vector3[V]{X: x, Y: y, Z: z})
}

// Scaled returns Scaling(v) * m.
func (m Matrix4[V]) Scaled(v vector.Vector3[V]) Matrix4[V] { return Scaling(v).Mul(m) }

// ScaledXYZ is Scaled with the factors spelled out.
func (m Matrix4[V]) ScaledXYZ(x, y, z V) Matrix4[V] {
	return m.Scaled(vector.Vector3[V]{X: x, Y: y, Z: z})
}

// ScaledBy scales all three axes uniformly.
func (m Matrix4[V]) ScaledBy(s V) Matrix4[V] { return m.Scaled(vector.Splat3(s)) }

func (m *Matrix4[V]) Translate(v vector.Vector3[V]) { *m = m.Translated(v) }
func (m *Matrix4[V]) TranslateXYZ(x, y, z V)        { *m = m.TranslatedXYZ(x, y, z) }
func (m *Matrix4[V]) Scale(v vector.Vector3[V])     { *m = m.Scaled(v) }
func (m *Matrix4[V]) ScaleXYZ(x, y, z V)            { *m = m.ScaledXYZ(x, y, z) }
func (m *Matrix4[V]) ScaleBy(s V)                   { *m = m.ScaledBy(s) }

// Rotation has no integer form, so the rotate builders are package functions
// over scalar.Real rather than methods.

// Rotated returns Rotation(angle, axis) * m.
func Rotated[V scalar.Real](m Matrix4[V], angle scalar.Angle, axis vector.Vector3[V]) Matrix4[V] {
	return Rotation(angle, axis).Mul(m)
}

// RotatedXYZ is Rotated with the axis spelled out.
func RotatedXYZ[V scalar.Real](m Matrix4[V], angle scalar.Angle, x, y, z V) Matrix4[V] {
	return Rotated(m, angle, vector.Vector3[V]{X: x, Y: y, Z: z})
}

// Rotate replaces *m with Rotated(*m, angle, axis).
func Rotate[V scalar.Real](m *Matrix4[V], angle scalar.Angle, axis vector.Vector3[V]) {
	*m = Rotated(*m, angle, axis)
}

// RotateXYZ replaces *m with RotatedXYZ(*m, angle, x, y, z).
func RotateXYZ[V scalar.Real](m *Matrix4[V], angle scalar.Angle, x, y, z V) {
	*m = RotatedXYZ(*m, angle, x, y, z)
}

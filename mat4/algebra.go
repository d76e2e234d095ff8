// SPDX-License-Identifier: MIT

package mat4

import (
	"math"

	"github.com/katalvlaran/openmath/scalar"
	"github.com/katalvlaran/openmath/vector"
)

// Add returns m + o, column by column.
func (m Matrix4[V]) Add(o Matrix4[V]) Matrix4[V] {
	return Matrix4[V]{X: m.X.Add(o.X), Y: m.Y.Add(o.Y), Z: m.Z.Add(o.Z), W: m.W.Add(o.W)}
}

// Sub returns m - o, column by column.
func (m Matrix4[V]) Sub(o Matrix4[V]) Matrix4[V] {
	return Matrix4[V]{X: m.X.Sub(o.X), Y: m.Y.Sub(o.Y), Z: m.Z.Sub(o.Z), W: m.W.Sub(o.W)}
}

// Neg returns -m.
func (m Matrix4[V]) Neg() Matrix4[V] {
	return Matrix4[V]{X: m.X.Neg(), Y: m.Y.Neg(), Z: m.Z.Neg(), W: m.W.Neg()}
}

// Mul returns the product m * o, the linear map "apply o, then m".
// Column j of the result is m applied to column j of o; m is transposed once
// so every cell is a single row·column dot product.
func (m Matrix4[V]) Mul(o Matrix4[V]) Matrix4[V] {
	t := m.Transposed()
	return Matrix4[V]{
		X: dotRows(t, o.X),
		Y: dotRows(t, o.Y),
		Z: dotRows(t, o.Z),
		W: dotRows(t, o.W),
	}
}

// MulVec returns m * v with v taken as a column vector.
func (m Matrix4[V]) MulVec(v vector.Vector4[V]) vector.Vector4[V] {
	return dotRows(m.Transposed(), v)
}

// dotRows treats t's columns as the rows of the original matrix and
// projects v through each.
func dotRows[V scalar.Scalar](t Matrix4[V], v vector.Vector4[V]) vector.Vector4[V] {
	return vector.Vector4[V]{X: t.X.Dot(v), Y: t.Y.Dot(v), Z: t.Z.Dot(v), W: t.W.Dot(v)}
}

// AllClose reports whether every cell satisfies |m-o| <= atol + rtol*|o|.
// NaN is never close to anything; infinities are close only to the same
// infinity. Negative tolerances are taken by absolute value.
func (m Matrix4[V]) AllClose(o Matrix4[V], rtol, atol float64) bool {
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	a, b := m.Array(), o.Array()
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		if math.IsNaN(x) || math.IsNaN(y) {
			return false
		}
		if math.IsInf(x, 0) || math.IsInf(y, 0) {
			if x != y {
				return false
			}
			continue
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false
		}
	}
	return true
}

// IsFinite reports whether no cell is NaN or ±Inf.
func (m Matrix4[V]) IsFinite() bool {
	for _, v := range m.Array() {
		if !scalar.IsFinite(v) {
			return false
		}
	}
	return true
}

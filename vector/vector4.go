// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"github.com/katalvlaran/openmath/scalar"
)

const componentCount4 = 4

// Vector4 is a 4-component vector; mat4 uses it for both columns and rows.
type Vector4[V scalar.Scalar] struct {
	X V `json:"x" yaml:"x"`
	Y V `json:"y" yaml:"y"`
	Z V `json:"z" yaml:"z"`
	W V `json:"w" yaml:"w"`
}

// Common instantiations. Vec4 is single precision.
type (
	Vec4  = Vector4[float32]
	Vec4d = Vector4[float64]
	Vec4i = Vector4[int]
)

// New4 returns (x, y, z, w).
func New4[V scalar.Scalar](x, y, z, w V) Vector4[V] { return Vector4[V]{X: x, Y: y, Z: z, W: w} }

// Splat4 returns a vector with every component set to v.
func Splat4[V scalar.Scalar](v V) Vector4[V] { return Vector4[V]{X: v, Y: v, Z: v, W: v} }

// At returns component i (0 = X .. 3 = W).
func (a Vector4[V]) At(i int) V {
	mustIndex(i, componentCount4)
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	case 2:
		return a.Z
	default:
		return a.W
	}
}

// Set replaces component i.
func (a *Vector4[V]) Set(i int, v V) {
	mustIndex(i, componentCount4)
	switch i {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	case 2:
		a.Z = v
	default:
		a.W = v
	}
}

// Array returns the components in order.
func (a Vector4[V]) Array() [4]V { return [4]V{a.X, a.Y, a.Z, a.W} }

func (a Vector4[V]) Add(b Vector4[V]) Vector4[V] {
	return Vector4[V]{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

func (a Vector4[V]) Sub(b Vector4[V]) Vector4[V] {
	return Vector4[V]{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

func (a Vector4[V]) Mul(s V) Vector4[V] { return Vector4[V]{a.X * s, a.Y * s, a.Z * s, a.W * s} }
func (a Vector4[V]) Div(s V) Vector4[V] { return Vector4[V]{a.X / s, a.Y / s, a.Z / s, a.W / s} }
func (a Vector4[V]) Neg() Vector4[V]    { return Vector4[V]{-a.X, -a.Y, -a.Z, -a.W} }

// Dot returns the dot product a·b.
func (a Vector4[V]) Dot(b Vector4[V]) V { return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W }

// LengthSquared returns a·a.
func (a Vector4[V]) LengthSquared() V { return a.Dot(a) }

// Length returns the Euclidean length, computed in float64 so integer
// vectors do not truncate.
func (a Vector4[V]) Length() float64 { return math.Sqrt(float64(a.LengthSquared())) }

// Normalize4 returns a / |a|. A zero vector yields NaN components.
func Normalize4[V scalar.Real](a Vector4[V]) Vector4[V] {
	return a.Div(scalar.Sqrt(a.LengthSquared()))
}

// Truncate drops W.
func (a Vector4[V]) Truncate() Vector3[V] { return Vector3[V]{a.X, a.Y, a.Z} }

// Color aliases.
func (a Vector4[V]) R() V { return a.X }
func (a Vector4[V]) G() V { return a.Y }
func (a Vector4[V]) B() V { return a.Z }
func (a Vector4[V]) A() V { return a.W }

// Convert4 converts every component to To.
func Convert4[To, From scalar.Scalar](a Vector4[From]) Vector4[To] {
	return Vector4[To]{To(a.X), To(a.Y), To(a.Z), To(a.W)}
}

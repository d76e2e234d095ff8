// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"github.com/katalvlaran/openmath/scalar"
)

const componentCount3 = 3

// Vector3 is a 3-component vector. The zero value is the zero vector.
type Vector3[V scalar.Scalar] struct {
	X V `json:"x" yaml:"x"`
	Y V `json:"y" yaml:"y"`
	Z V `json:"z" yaml:"z"`
}

// Common instantiations.
type (
	Vec3  = Vector3[float64]
	Vec3f = Vector3[float32]
	Vec3i = Vector3[int]
)

// New3 returns (x, y, z).
func New3[V scalar.Scalar](x, y, z V) Vector3[V] { return Vector3[V]{X: x, Y: y, Z: z} }

// Splat3 returns a vector with every component set to v.
func Splat3[V scalar.Scalar](v V) Vector3[V] { return Vector3[V]{X: v, Y: v, Z: v} }

// At returns component i (0 = X, 1 = Y, 2 = Z).
func (a Vector3[V]) At(i int) V {
	mustIndex(i, componentCount3)
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

// Set replaces component i.
func (a *Vector3[V]) Set(i int, v V) {
	mustIndex(i, componentCount3)
	switch i {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	default:
		a.Z = v
	}
}

// Array returns the components in order.
func (a Vector3[V]) Array() [3]V { return [3]V{a.X, a.Y, a.Z} }

func (a Vector3[V]) Add(b Vector3[V]) Vector3[V] { return Vector3[V]{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3[V]) Sub(b Vector3[V]) Vector3[V] { return Vector3[V]{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vector3[V]) Mul(s V) Vector3[V]          { return Vector3[V]{a.X * s, a.Y * s, a.Z * s} }
func (a Vector3[V]) Div(s V) Vector3[V]          { return Vector3[V]{a.X / s, a.Y / s, a.Z / s} }
func (a Vector3[V]) Neg() Vector3[V]             { return Vector3[V]{-a.X, -a.Y, -a.Z} }

// Dot returns the dot product a·b.
func (a Vector3[V]) Dot(b Vector3[V]) V { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns the right-handed cross product a×b.
func (a Vector3[V]) Cross(b Vector3[V]) Vector3[V] {
	return Vector3[V]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// LengthSquared returns a·a.
func (a Vector3[V]) LengthSquared() V { return a.Dot(a) }

// Length returns the Euclidean length, computed in float64 so integer
// vectors do not truncate.
func (a Vector3[V]) Length() float64 { return math.Sqrt(float64(a.LengthSquared())) }

// Normalize3 returns a / |a|. A zero vector yields NaN components.
func Normalize3[V scalar.Real](a Vector3[V]) Vector3[V] {
	return a.Div(scalar.Sqrt(a.LengthSquared()))
}

// Extend returns (x, y, z, w).
func (a Vector3[V]) Extend(w V) Vector4[V] { return Vector4[V]{a.X, a.Y, a.Z, w} }

// Truncate drops Z.
func (a Vector3[V]) Truncate() Vector2[V] { return Vector2[V]{a.X, a.Y} }

// Color aliases.
func (a Vector3[V]) R() V { return a.X }
func (a Vector3[V]) G() V { return a.Y }
func (a Vector3[V]) B() V { return a.Z }

// Convert3 converts every component to To.
func Convert3[To, From scalar.Scalar](a Vector3[From]) Vector3[To] {
	return Vector3[To]{To(a.X), To(a.Y), To(a.Z)}
}

// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"github.com/katalvlaran/openmath/scalar"
)

const componentCount2 = 2

// Vector2 is a 2-component vector. The zero value is the zero vector.
type Vector2[V scalar.Scalar] struct {
	X V `json:"x" yaml:"x"`
	Y V `json:"y" yaml:"y"`
}

// Common instantiations.
type (
	Vec2  = Vector2[float64]
	Vec2f = Vector2[float32]
	Vec2i = Vector2[int]
)

// New2 returns (x, y).
func New2[V scalar.Scalar](x, y V) Vector2[V] { return Vector2[V]{X: x, Y: y} }

// Splat2 returns a vector with both components set to v.
func Splat2[V scalar.Scalar](v V) Vector2[V] { return Vector2[V]{X: v, Y: v} }

// At returns component i (0 = X, 1 = Y).
func (a Vector2[V]) At(i int) V {
	mustIndex(i, componentCount2)
	if i == 0 {
		return a.X
	}
	return a.Y
}

// Set replaces component i.
func (a *Vector2[V]) Set(i int, v V) {
	mustIndex(i, componentCount2)
	if i == 0 {
		a.X = v
		return
	}
	a.Y = v
}

// Array returns the components in order.
func (a Vector2[V]) Array() [2]V { return [2]V{a.X, a.Y} }

func (a Vector2[V]) Add(b Vector2[V]) Vector2[V] { return Vector2[V]{a.X + b.X, a.Y + b.Y} }
func (a Vector2[V]) Sub(b Vector2[V]) Vector2[V] { return Vector2[V]{a.X - b.X, a.Y - b.Y} }
func (a Vector2[V]) Mul(s V) Vector2[V]          { return Vector2[V]{a.X * s, a.Y * s} }
func (a Vector2[V]) Div(s V) Vector2[V]          { return Vector2[V]{a.X / s, a.Y / s} }
func (a Vector2[V]) Neg() Vector2[V]             { return Vector2[V]{-a.X, -a.Y} }

// Dot returns the dot product a·b.
func (a Vector2[V]) Dot(b Vector2[V]) V { return a.X*b.X + a.Y*b.Y }

// Cross returns the perpendicular (y, -x).
func (a Vector2[V]) Cross() Vector2[V] { return Vector2[V]{a.Y, -a.X} }

// LengthSquared returns a·a.
func (a Vector2[V]) LengthSquared() V { return a.Dot(a) }

// Length returns the Euclidean length, computed in float64 so integer
// vectors do not truncate.
func (a Vector2[V]) Length() float64 { return math.Sqrt(float64(a.LengthSquared())) }

// Normalize2 returns a / |a|. A zero vector yields NaN components.
func Normalize2[V scalar.Real](a Vector2[V]) Vector2[V] {
	return a.Div(scalar.Sqrt(a.LengthSquared()))
}

// Extend returns (x, y, z).
func (a Vector2[V]) Extend(z V) Vector3[V] { return Vector3[V]{a.X, a.Y, z} }

// Color aliases.
func (a Vector2[V]) R() V { return a.X }
func (a Vector2[V]) G() V { return a.Y }

// Convert2 converts every component to To.
func Convert2[To, From scalar.Scalar](a Vector2[From]) Vector2[To] {
	return Vector2[To]{To(a.X), To(a.Y)}
}

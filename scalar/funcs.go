// SPDX-License-Identifier: MIT

package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// Sqrt returns the square root of x.
func Sqrt[V Scalar](x V) V {
	if f, ok := any(x).(float32); ok {
		return V(math32.Sqrt(f))
	}
	return V(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[V Scalar](x V) V {
	if f, ok := any(x).(float32); ok {
		return V(math32.Sin(f))
	}
	return V(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[V Scalar](x V) V {
	if f, ok := any(x).(float32); ok {
		return V(math32.Cos(f))
	}
	return V(math.Cos(float64(x)))
}

// Tan returns the tangent of the radian argument x.
func Tan[V Scalar](x V) V {
	if f, ok := any(x).(float32); ok {
		return V(math32.Tan(f))
	}
	return V(math.Tan(float64(x)))
}

// IsFinite reports whether x is neither NaN nor ±Inf. Integers are always finite.
func IsFinite[V Scalar](x V) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Abs returns |x|.
func Abs[V Scalar](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

// SPDX-License-Identifier: MIT

package scalar

import "golang.org/x/exp/constraints"

// Scalar is the base tier: any integer or floating-point type.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Real is the floating-point tier.
type Real interface {
	constraints.Float
}

// Zero returns the additive identity of V.
func Zero[V Scalar]() V { return 0 }

// One returns the multiplicative identity of V.
func One[V Scalar]() V { return 1 }

// SPDX-License-Identifier: MIT

package vector_test

import (
	"fmt"

	"github.com/katalvlaran/openmath/vector"
)

// ExampleVector3_Cross builds a right-handed basis from two axes.
func ExampleVector3_Cross() {
	x := vector.New3(1.0, 0.0, 0.0)
	y := vector.New3(0.0, 1.0, 0.0)
	fmt.Println(x.Cross(y).Array())
	// Output:
	// [0 0 1]
}

func ExampleVector2_Add() {
	v := vector.Splat2(1).Add(vector.New2(0, 1)).Mul(3)
	fmt.Println(v.X, v.Y)
	// Output:
	// 3 6
}

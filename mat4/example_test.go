// SPDX-License-Identifier: MIT

package mat4_test

import (
	"fmt"

	"github.com/katalvlaran/openmath/mat4"
	"github.com/katalvlaran/openmath/scalar"
	"github.com/katalvlaran/openmath/vector"
)

// ExampleMatrix4_Translated chains two translations from the identity.
func ExampleMatrix4_Translated() {
	m := mat4.Identity[float64]().
		Translated(vector.New3(1.0, 0, 0)).
		Translated(vector.New3(0.0, 1, 0))
	fmt.Print(m)
	// Output:
	// [1, 0, 0, 1]
	// [0, 1, 0, 1]
	// [0, 0, 1, 0]
	// [0, 0, 0, 1]
}

// ExampleMatrix4_Array shows the column-major upload order.
func ExampleMatrix4_Array() {
	m := mat4.Identity[float32]().ScaledXYZ(2, 3, 4).TranslatedXYZ(5, 6, 7)
	fmt.Println(m.Array())
	// Output:
	// [2 0 0 0 0 3 0 0 0 0 4 0 5 6 7 1]
}

func ExamplePerspective() {
	p := mat4.Perspective(scalar.Deg(90), 1.0, 1, 3)
	fmt.Printf("%.3f %.3f %.3f %.3f\n", p.At(0, 0), p.At(2, 2), p.At(3, 2), p.At(2, 3))
	// Output:
	// 1.000 -2.000 -3.000 -1.000
}

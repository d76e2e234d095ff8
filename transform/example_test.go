// SPDX-License-Identifier: MIT

package transform_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/openmath/scalar"
	"github.com/katalvlaran/openmath/transform"
	"github.com/katalvlaran/openmath/vector"
)

func ExampleBuild() {
	m, err := transform.Build(nil,
		transform.ScaleBy(2),
		transform.Translate(vector.New3(1.0, 0, 0)),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(m)
	// Output:
	// [2, 0, 0, 1]
	// [0, 2, 0, 0]
	// [0, 0, 2, 0]
	// [0, 0, 0, 1]
}

func ExampleBuild_error() {
	_, err := transform.Build(nil, transform.Rotate(scalar.Deg(90), vector.Vec3{}))
	fmt.Println(errors.Is(err, transform.ErrDegenerateAxis))
	// Output:
	// true
}

func ExampleDecode() {
	doc := `
steps:
  - op: translate
    vector: [0, 0, -3]
  - op: scale
    vector: [1, 1, 2]
`
	p, err := transform.Decode(strings.NewReader(doc))
	if err != nil {
		fmt.Println(err)
		return
	}
	m, err := p.Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.MulVec(vector.New4(1.0, 1, 1, 1)))
	// Output:
	// {1 1 -4 1}
}

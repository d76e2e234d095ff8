// SPDX-License-Identifier: MIT

package mat4

import "fmt"

const (
	dim                  = 4
	panicIndexOutOfRange = "mat4: index out of range 0..3: %d"
)

// mustIndex panics unless i names a row or column.
func mustIndex(i int) {
	if i < 0 || i >= dim {
		panic(fmt.Sprintf(panicIndexOutOfRange, i))
	}
}

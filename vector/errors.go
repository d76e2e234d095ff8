// SPDX-License-Identifier: MIT

package vector

import "fmt"

const panicIndexOutOfRange = "vector: index out of range 0..%d: %d"

// mustIndex panics unless 0 <= i < n.
func mustIndex(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf(panicIndexOutOfRange, n-1, i))
	}
}

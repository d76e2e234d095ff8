// SPDX-License-Identifier: MIT
// Package mat4_test contains test helpers
//
// Purpose:
//   • Provide deterministic fixtures (sequential and seeded-random matrices).
//   • Compare matrices with a tolerance and a readable cell diff.

package mat4_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/openmath/mat4"
)

// eps is the absolute tolerance used by approximate comparisons.
const eps = 1e-6

// seq returns the matrix whose cells read 1..16 row by row.
func seq() mat4.Mat4 {
	return mat4.New[float64](
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
}

// randomMat fills a matrix from a seeded source so failures reproduce.
func randomMat(rng *rand.Rand) mat4.Mat4 {
	var a [16]float64
	for i := range a {
		a[i] = rng.Float64()*20 - 10
	}
	return mat4.FromArray(a)
}

// requireMatClose fails the test when any cell of got differs from want by
// more than tol, printing a per-cell diff.
func requireMatClose(t *testing.T, want, got mat4.Mat4, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

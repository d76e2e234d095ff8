// SPDX-License-Identifier: MIT

package mat4_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/openmath/mat4"
	"github.com/katalvlaran/openmath/scalar"
	"github.com/katalvlaran/openmath/vector"
)

func TestPerspective_DiagonalSanity(t *testing.T) {
	p := mat4.Perspective(scalar.Deg(90), 1.0, 0.1, 100)

	require.InDelta(t, p.At(0, 0), p.At(1, 1), 1e-15)
	require.InDelta(t, 1.0, p.At(1, 1), 1e-12) // tan(45°) == 1
	require.Equal(t, -1.0, p.At(2, 3))
	require.InDelta(t, -(100+0.1)/(100-0.1), p.At(2, 2), 1e-15)
	require.InDelta(t, -(2*100*0.1)/(100-0.1), p.At(3, 2), 1e-15)
	require.Equal(t, 1.0, p.At(3, 3), "untouched diagonal keeps its identity value")
	require.Equal(t, 0.0, p.At(3, 0))
	require.Equal(t, 0.0, p.At(0, 3))
}

func TestPerspective_RatioScalesX(t *testing.T) {
	p := mat4.Perspective(scalar.Rad(math.Pi/3), 16.0/9.0, 1, 10)
	require.InDelta(t, p.At(1, 1)/(16.0/9.0), p.At(0, 0), 1e-12)
}

func TestPerspective_MatchesMathGLExceptW(t *testing.T) {
	fovy, aspect, near, far := math.Pi/4, 4.0/3.0, 0.5, 50.0
	got := mat4.Perspective(scalar.Rad(fovy), aspect, near, far)
	got.Set(3, 3, 0) // mathgl clears (3,3); this library keeps the identity 1 there.

	want := mat4.FromMGL64[float64](mgl64.Perspective(fovy, aspect, near, far))
	requireMatClose(t, want, got, 1e-12)
}

func TestPerspective_DegreesEqualRadians(t *testing.T) {
	a := mat4.Perspective(scalar.Deg(60), 1.5, 0.1, 10)
	b := mat4.Perspective(scalar.Rad(math.Pi/3), 1.5, 0.1, 10)
	requireMatClose(t, a, b, 1e-12)
}

func TestPerspective_Float32(t *testing.T) {
	p := mat4.Perspective[float32](scalar.Deg(90), 2, 1, 3)
	require.InDelta(t, float32(0.5), p.At(0, 0), 1e-6)
	require.InDelta(t, float32(-2), p.At(2, 2), 1e-6)
	require.InDelta(t, float32(-3), p.At(3, 2), 1e-6)
}

func TestOrtho_Cells(t *testing.T) {
	o := mat4.Ortho(-2.0, 2, -1, 3, 1, 5)
	want := mat4.New[float64](
		0.5, 0, 0, 0,
		0, 0.5, 0, 0.5,
		0, 0, 0.5, 1.5,
		0, 0, 0, 1,
	)
	require.Equal(t, want, o)
}

func TestLookAt_Orthonormal(t *testing.T) {
	m := mat4.LookAt(vector.New3(0.0, 0, 5), vector.Vec3{}, vector.New3(0.0, 1, 0))

	rows := make([]vector.Vec3, 3)
	for r := range rows {
		rows[r] = m.Row(r).Truncate()
		require.InDelta(t, 1.0, rows[r].Length(), eps, "row %d unit length", r)
	}
	require.InDelta(t, 0.0, rows[0].Dot(rows[1]), eps)
	require.InDelta(t, 0.0, rows[0].Dot(rows[2]), eps)
	require.InDelta(t, 0.0, rows[1].Dot(rows[2]), eps)

	// Camera on +Z looking at the origin: view space is world space shifted by -5 in z.
	want := mat4.Identity[float64]().TranslatedXYZ(0, 0, -5)
	requireMatClose(t, want, m, eps)
}

func TestLookAt_MovesEyeToOrigin(t *testing.T) {
	from := vector.New3(3.0, -2, 7)
	m := mat4.LookAt(from, vector.New3(1.0, 1, 1), vector.New3(0.0, 1, 0))
	eye := m.MulVec(from.Extend(1))
	require.InDelta(t, 0.0, eye.X, 1e-12)
	require.InDelta(t, 0.0, eye.Y, 1e-12)
	require.InDelta(t, 0.0, eye.Z, 1e-12)
	require.Equal(t, 1.0, eye.W)
}

func TestLookAt_MatchesMathGL(t *testing.T) {
	cases := []struct{ from, to, up vector.Vec3 }{
		{vector.New3(0.0, 0, 5), vector.Vec3{}, vector.New3(0.0, 1, 0)},
		{vector.New3(4.0, 3, -2), vector.New3(-1.0, 0.5, 2), vector.New3(0.0, 1, 0)},
		{vector.New3(1.0, 10, 1), vector.New3(0.0, 0, 0), vector.New3(0.0, 0, 1)},
	}
	for _, tc := range cases {
		got := mat4.LookAt(tc.from, tc.to, tc.up)
		want := mat4.FromMGL64[float64](mgl64.LookAtV(
			mgl64.Vec3{tc.from.X, tc.from.Y, tc.from.Z},
			mgl64.Vec3{tc.to.X, tc.to.Y, tc.to.Z},
			mgl64.Vec3{tc.up.X, tc.up.Y, tc.up.Z},
		))
		requireMatClose(t, want, got, 1e-9)
	}
}

func TestLookAt_DegenerateUpPropagatesNaN(t *testing.T) {
	// up parallel to the viewing direction: f × up == 0.
	m := mat4.LookAt(vector.New3(0.0, 0, 0), vector.New3(0.0, 1, 0), vector.New3(0.0, 1, 0))
	require.False(t, m.IsFinite())
	require.True(t, math.IsNaN(m.At(0, 0)))
}

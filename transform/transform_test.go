// SPDX-License-Identifier: MIT

package transform_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/openmath/mat4"
	"github.com/katalvlaran/openmath/scalar"
	"github.com/katalvlaran/openmath/transform"
	"github.com/katalvlaran/openmath/vector"
)

const eps = 1e-9

func TestBuild_EmptyIsStart(t *testing.T) {
	t.Parallel()

	m, err := transform.Compose()
	require.NoError(t, err)
	require.Equal(t, mat4.Identity[float64](), m)

	start := mat4.New[float64](1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	m, err = transform.Build([]transform.Option{transform.WithStart(start)})
	require.NoError(t, err)
	require.Equal(t, start, m)
}

// TestBuild_MatchesChainedMethods checks that steps apply in listed order,
// each one left-multiplied, exactly like chaining the mat4 methods.
func TestBuild_MatchesChainedMethods(t *testing.T) {
	t.Parallel()

	axis := vector.New3(1.0, 1, 0)
	got, err := transform.Compose(
		transform.ScaleBy(2),
		transform.Rotate(scalar.Deg(30), axis),
		transform.Translate(vector.New3(1.0, 2, 3)),
		transform.Scale(vector.New3(1.0, 0.5, 1)),
	)
	require.NoError(t, err)

	want := mat4.Rotated(mat4.Identity[float64]().ScaledBy(2), scalar.Deg(30), axis).
		Translated(vector.New3(1.0, 2, 3)).
		Scaled(vector.New3(1.0, 0.5, 1))
	require.True(t, got.AllClose(want, 0, eps), "got\n%v\nwant\n%v", got, want)

	// Scale first, then translate: the origin lands on the translation.
	p := got.MulVec(vector.New4(0.0, 0, 0, 1))
	require.InDelta(t, 1.0, p.X, eps)
	require.InDelta(t, 1.0, p.Y, eps)
	require.InDelta(t, 3.0, p.Z, eps)
}

func TestMatrixStep_LeftMultiplies(t *testing.T) {
	t.Parallel()

	a := mat4.New[float64](1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	b := mat4.Identity[float64]().TranslatedXYZ(1, 2, 3)

	got, err := transform.Build([]transform.Option{transform.WithStart(b)}, transform.Matrix(a))
	require.NoError(t, err)
	require.Equal(t, a.Mul(b), got)
}

func TestProjectionSteps(t *testing.T) {
	t.Parallel()

	view, err := transform.Compose(
		transform.LookAt(vector.New3(0.0, 0, 5), vector.New3(0.0, 0, 0), vector.New3(0.0, 1, 0)),
		transform.Perspective(scalar.Deg(60), 16.0/9, 0.1, 100),
	)
	require.NoError(t, err)

	want := mat4.Perspective(scalar.Deg(60), 16.0/9, 0.1, 100).
		Mul(mat4.LookAt(vector.New3(0.0, 0, 5), vector.New3(0.0, 0, 0), vector.New3(0.0, 1, 0)))
	require.True(t, view.AllClose(want, 0, eps))

	ortho, err := transform.Compose(transform.Ortho(-1, 1, -2, 2, 0.5, 10))
	require.NoError(t, err)
	require.Equal(t, mat4.Ortho(-1.0, 1, -2, 2, 0.5, 10), ortho)
}

func TestStepValidation(t *testing.T) {
	t.Parallel()

	up := vector.New3(0.0, 1, 0)
	tests := []struct {
		name string
		step transform.Step
		want error
	}{
		{"rotate zero axis", transform.Rotate(scalar.Deg(10), vector.Vec3{}), transform.ErrDegenerateAxis},
		{"rotate NaN axis", transform.Rotate(scalar.Deg(10), vector.New3(math.NaN(), 0, 0)), transform.ErrDegenerateAxis},
		{"perspective zero ratio", transform.Perspective(scalar.Deg(60), 0, 1, 10), transform.ErrBadRatio},
		{"perspective negative ratio", transform.Perspective(scalar.Deg(60), -1, 1, 10), transform.ErrBadRatio},
		{"perspective near==far", transform.Perspective(scalar.Deg(60), 1, 2, 2), transform.ErrDegenerateVolume},
		{"ortho left==right", transform.Ortho(1, 1, 0, 1, 0, 1), transform.ErrDegenerateVolume},
		{"ortho bottom==top", transform.Ortho(0, 1, 3, 3, 0, 1), transform.ErrDegenerateVolume},
		{"ortho near==far", transform.Ortho(0, 1, 0, 1, 4, 4), transform.ErrDegenerateVolume},
		{"lookat from==to", transform.LookAt(up, up, up), transform.ErrDegenerateAxis},
		{"lookat zero up", transform.LookAt(vector.Vec3{}, vector.New3(0.0, 0, -1), vector.Vec3{}), transform.ErrDegenerateAxis},
		{"lookat parallel up", transform.LookAt(vector.Vec3{}, vector.New3(0.0, 3, 0), up), transform.ErrDegenerateAxis},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := transform.Compose(transform.Translate(up), tc.step)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
			require.Contains(t, err.Error(), "Build: step 1:")
		})
	}
}

func TestNonFiniteCheck(t *testing.T) {
	t.Parallel()

	inf := transform.Translate(vector.New3(math.Inf(1), 0, 0))

	_, err := transform.Compose(inf)
	require.ErrorIs(t, err, transform.ErrNonFinite)

	m, err := transform.Build([]transform.Option{transform.WithFiniteCheck(false)}, inf)
	require.NoError(t, err)
	require.False(t, m.IsFinite())
}

func TestEpsilonWidensDegeneracy(t *testing.T) {
	t.Parallel()

	small := transform.Rotate(scalar.Deg(45), vector.New3(1e-6, 0, 0))

	_, err := transform.Compose(small)
	require.NoError(t, err)

	_, err = transform.Build([]transform.Option{transform.WithEpsilon(1e-3)}, small)
	require.ErrorIs(t, err, transform.ErrDegenerateAxis)
}

func TestNilStep(t *testing.T) {
	t.Parallel()

	_, err := transform.Compose(transform.ScaleBy(2), nil)
	require.ErrorIs(t, err, transform.ErrNilStep)
}

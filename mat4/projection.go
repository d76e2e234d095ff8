// SPDX-License-Identifier: MIT

// Package mat4 - projection & view constructors (floating-point tier).
//
// Every constructor starts from Identity and overwrites only the cells it
// names; untouched cells keep their identity value.
//
// Degenerate input (ratio == 0, near == far, zero-length or parallel
// look-at vectors) is not rejected: results carry NaN/Inf per IEEE 754.

package mat4

import (
	"github.com/katalvlaran/openmath/scalar"
	"github.com/katalvlaran/openmath/vector"
)

// Perspective returns a right-handed OpenGL-style perspective projection
// with vertical field of view angle and aspect ratio width/height.
//
// Cells (column, row):
//
//	(0,0) = 1/(ratio*t)   (1,1) = 1/t   with t = tan(angle/2)
//	(2,2) = -(far+near)/(far-near)
//	(3,2) = -(2*far*near)/(far-near)
//	(2,3) = -1
func Perspective[V scalar.Real](angle scalar.Angle, ratio, near, far V) Matrix4[V] {
	r := Identity[V]()
	t := V(scalar.Tan(angle.Radians() / 2))

	r.Set(0, 0, 1/(ratio*t))
	r.Set(1, 1, 1/t)
	r.Set(2, 3, -1)

	r.Set(2, 2, -(far+near)/(far-near))
	r.Set(3, 2, -(2*far*near)/(far-near))

	return r
}

// Ortho returns an orthographic projection of the box
// [left,right]×[bottom,top]×[near,far]: scale 2/extent on the diagonal and
// (max+min)/(max-min) per axis in the translation column.
func Ortho[V scalar.Real](left, right, bottom, top, near, far V) Matrix4[V] {
	r := Identity[V]()
	r.Set(0, 0, 2/(right-left))
	r.Set(1, 1, 2/(top-bottom))
	r.Set(2, 2, 2/(far-near))

	r.Set(3, 0, (right+left)/(right-left))
	r.Set(3, 1, (top+bottom)/(top-bottom))
	r.Set(3, 2, (far+near)/(far-near))

	return r
}

// LookAt returns the view matrix of a camera at from looking at to.
//
// Implementation:
//   - Stage 1: f = normalize(to - from), s = normalize(f × up), u = s × f.
//   - Stage 2: s, u and -f become ROWS 0..2 of the upper-left 3×3 block
//     (the transpose of the camera basis).
//   - Stage 3: column 3 holds -s·from, -u·from, f·from.
func LookAt[V scalar.Real](from, to, up vector.Vector3[V]) Matrix4[V] {
	r := Identity[V]()
	f := vector.Normalize3(to.Sub(from))
	s := vector.Normalize3(f.Cross(up))
	u := s.Cross(f)

	r.SetRow(0, s.Extend(-s.Dot(from)))
	r.SetRow(1, u.Extend(-u.Dot(from)))
	r.SetRow(2, f.Neg().Extend(f.Dot(from)))

	return r
}

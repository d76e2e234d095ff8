// SPDX-License-Identifier: MIT

// Package mat4 implements Matrix4, a 4×4 matrix over any scalar.Scalar,
// stored as four column vectors.
//
// Layout:
//
//	      X    Y    Z    W      ← fields are COLUMNS
//	row0  X.X  Y.X  Z.X  W.X
//	row1  X.Y  Y.Y  Z.Y  W.Y
//	row2  X.Z  Y.Z  Z.Z  W.Z
//	row3  X.W  Y.W  Z.W  W.W
//
// Every accessor reads the same sixteen scalars: At(c, r) == Column(c).At(r)
// == Row(r).At(c). Array flattens column by column (column-major), the
// order OpenGL-style pipelines upload.
//
// Composition convention: the affine builders (Translated, Rotated, Scaled)
// build the single-operation matrix T and return T * m. A chain
// m.Translated(a).Scaled(b) therefore translates first and scales second.
//
// Translation and scaling work for every scalar.Scalar. Rotation, like the
// projection and view constructors, needs scalar.Real and is spelled as a
// package function: Rotated(m, angle, axis).
//
// Errors: indices outside 0..3 panic. Floating-point degeneracies (zero
// axes, parallel look-at vectors, near == far) are not detected and surface
// as NaN/Inf in the result.
package mat4

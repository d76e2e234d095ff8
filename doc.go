// Package openmath is a small generic linear-algebra toolkit for 3D graphics:
// fixed-size vectors and a column-major 4×4 matrix, parameterized over the
// scalar element type.
//
// 🚀 What is in the box?
//
//   - scalar/      numeric constraints (Scalar, Real), Sqrt/Sin/Cos/Tan,
//     and Angle, a radians-or-degrees tagged value
//   - vector/      Vector2, Vector3, Vector4: arithmetic, dot/cross, length, normalize
//   - mat4/        Matrix4: column/row/cell indexing, transpose, +, -, ×,
//     perspective, ortho, lookAt, translate, rotate, scale,
//     and conversions to mathgl and x/image matrices
//   - transform/   validated step pipelines, in Go or as YAML documents
//   - cmd/xform    CLI that composes a YAML pipeline and prints or applies it
//
// ✨ Conventions
//
//   - Storage is column-major: Matrix4 fields X, Y, Z, W are columns, and
//     Array() flattens column by column, ready for glUniformMatrix4fv.
//   - Indexing is (column, row): m.At(c, r) == m.Column(c).At(r) == m.Row(r).At(c).
//   - Builders left-multiply: m.Translated(v) == Translation(v).Mul(m), so
//     chained calls apply to points in the order they are written.
//   - Out-of-range indices panic; degenerate float input yields NaN, not errors.
//     The transform package is the validating layer.
//
// Quick start:
//
//	view := mat4.LookAt(vector.New3(0.0, 0, 5), vector.Vec3{}, vector.New3(0.0, 1, 0))
//	proj := mat4.Perspective(scalar.Deg(60), 16.0/9, 0.1, 100)
//	model := mat4.RotatedXYZ(mat4.Identity[float64]().ScaledBy(2), scalar.Deg(45), 0, 1, 0)
//	mvp := proj.Mul(view).Mul(model)
//
// See the package docs of scalar, vector, mat4 and transform for details.
package openmath

// SPDX-License-Identifier: MIT

// Package mat4 - storage & indexing.
//
// Purpose:
//   - Hold the matrix as four Vector4 columns; rows are gathered on demand so
//     both views always address the same sixteen scalars.
//   - Provide column, row and cell accessors that agree by construction.
//   - Flatten in column-major order (Array) for graphics-API interop.
//
// Complexity quicksheet:
//   - Column/SetColumn: O(1), one Vector4 copy.
//   - Row/SetRow: O(1), touches all four columns.
//   - Transposed/Array: O(16).

package mat4

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/openmath/scalar"
	"github.com/katalvlaran/openmath/vector"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix4 is a 4×4 matrix whose fields are its COLUMNS, left to right.
// It is a plain value: copies never share storage, and == compares all
// sixteen cells.
type Matrix4[V scalar.Scalar] struct {
	X vector.Vector4[V] `json:"x" yaml:"x"` // column 0
	Y vector.Vector4[V] `json:"y" yaml:"y"` // column 1
	Z vector.Vector4[V] `json:"z" yaml:"z"` // column 2
	W vector.Vector4[V] `json:"w" yaml:"w"` // column 3 (translation for affine transforms)
}

// Common instantiations.
type (
	Mat4  = Matrix4[float64]
	Mat4f = Matrix4[float32]
)

// Diagonal returns the matrix with x, y, z, w on the diagonal and zeros
// elsewhere. With x, y, z scale factors and w = 1 it is a scaling matrix.
func Diagonal[V scalar.Scalar](x, y, z, w V) Matrix4[V] {
	return Matrix4[V]{
		X: vector.Vector4[V]{X: x},
		Y: vector.Vector4[V]{Y: y},
		Z: vector.Vector4[V]{Z: z},
		W: vector.Vector4[V]{W: w},
	}
}

// Identity returns the multiplicative identity.
func Identity[V scalar.Scalar]() Matrix4[V] { return Diagonal[V](1, 1, 1, 1) }

// Zero returns the matrix with every cell 0.
func Zero[V scalar.Scalar]() Matrix4[V] { return Matrix4[V]{} }

// Splat returns the matrix with every cell set to v.
func Splat[V scalar.Scalar](v V) Matrix4[V] {
	c := vector.Splat4(v)
	return Matrix4[V]{X: c, Y: c, Z: c, W: c}
}

// FromColumns assembles a matrix from its columns.
func FromColumns[V scalar.Scalar](c0, c1, c2, c3 vector.Vector4[V]) Matrix4[V] {
	return Matrix4[V]{X: c0, Y: c1, Z: c2, W: c3}
}

// FromRows assembles a matrix from its rows.
func FromRows[V scalar.Scalar](r0, r1, r2, r3 vector.Vector4[V]) Matrix4[V] {
	return Matrix4[V]{
		X: vector.Vector4[V]{X: r0.X, Y: r1.X, Z: r2.X, W: r3.X},
		Y: vector.Vector4[V]{X: r0.Y, Y: r1.Y, Z: r2.Y, W: r3.Y},
		Z: vector.Vector4[V]{X: r0.Z, Y: r1.Z, Z: r2.Z, W: r3.Z},
		W: vector.Vector4[V]{X: r0.W, Y: r1.W, Z: r2.W, W: r3.W},
	}
}

// New takes the sixteen cells in reading order, row by row, so a literal
// call looks like the matrix written on paper. mRC is row R, column C.
func New[V scalar.Scalar](
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 V,
) Matrix4[V] {
	return Matrix4[V]{
		X: vector.Vector4[V]{X: m11, Y: m21, Z: m31, W: m41},
		Y: vector.Vector4[V]{X: m12, Y: m22, Z: m32, W: m42},
		Z: vector.Vector4[V]{X: m13, Y: m23, Z: m33, W: m43},
		W: vector.Vector4[V]{X: m14, Y: m24, Z: m34, W: m44},
	}
}

// FromArray is the inverse of Array: a[4*c + r] is column c, row r.
func FromArray[V scalar.Scalar](a [16]V) Matrix4[V] {
	return Matrix4[V]{
		X: vector.Vector4[V]{X: a[0], Y: a[1], Z: a[2], W: a[3]},
		Y: vector.Vector4[V]{X: a[4], Y: a[5], Z: a[6], W: a[7]},
		Z: vector.Vector4[V]{X: a[8], Y: a[9], Z: a[10], W: a[11]},
		W: vector.Vector4[V]{X: a[12], Y: a[13], Z: a[14], W: a[15]},
	}
}

// columnRef returns a pointer to column c inside m.
func (m *Matrix4[V]) columnRef(c int) *vector.Vector4[V] {
	mustIndex(c)
	switch c {
	case 0:
		return &m.X
	case 1:
		return &m.Y
	case 2:
		return &m.Z
	default:
		return &m.W
	}
}

// Column returns column c. Panics unless 0 <= c <= 3.
func (m Matrix4[V]) Column(c int) vector.Vector4[V] { return *m.columnRef(c) }

// SetColumn replaces column c. Panics unless 0 <= c <= 3.
func (m *Matrix4[V]) SetColumn(c int, v vector.Vector4[V]) { *m.columnRef(c) = v }

// Row gathers row r, one scalar from each column. Panics unless 0 <= r <= 3.
func (m Matrix4[V]) Row(r int) vector.Vector4[V] {
	mustIndex(r)
	return vector.Vector4[V]{X: m.X.At(r), Y: m.Y.At(r), Z: m.Z.At(r), W: m.W.At(r)}
}

// SetRow scatters v across the four columns at offset r.
// Panics unless 0 <= r <= 3.
func (m *Matrix4[V]) SetRow(r int, v vector.Vector4[V]) {
	mustIndex(r)
	m.X.Set(r, v.X)
	m.Y.Set(r, v.Y)
	m.Z.Set(r, v.Z)
	m.W.Set(r, v.W)
}

// At returns the cell at column c, row r.
func (m Matrix4[V]) At(c, r int) V { return m.columnRef(c).At(r) }

// Set writes the cell at column c, row r.
func (m *Matrix4[V]) Set(c, r int, v V) { m.columnRef(c).Set(r, v) }

// Transposed returns the matrix whose columns are m's rows.
func (m Matrix4[V]) Transposed() Matrix4[V] { return FromRows(m.X, m.Y, m.Z, m.W) }

// Transpose replaces m with its transpose.
func (m *Matrix4[V]) Transpose() { *m = m.Transposed() }

// Array flattens m column by column: column 0 top to bottom, then column 1,
// and so on. The order is a compatibility contract with column-major GPU
// buffers and must not change.
func (m Matrix4[V]) Array() [16]V {
	return [16]V{
		m.X.X, m.X.Y, m.X.Z, m.X.W,
		m.Y.X, m.Y.Y, m.Y.Z, m.Y.W,
		m.Z.X, m.Z.Y, m.Z.Z, m.Z.W,
		m.W.X, m.W.Y, m.W.Z, m.W.W,
	}
}

// String implements fmt.Stringer: one "[a, b, c, d]" line per row.
func (m Matrix4[V]) String() string {
	var sb strings.Builder
	for r := 0; r < dim; r++ {
		row := m.Row(r).Array()
		sb.WriteString(_fmtRowOpen)
		for c, v := range row {
			if c > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", v)
		}
		sb.WriteString(_fmtRowClose)
	}
	return sb.String()
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Matrix4[float64]{}

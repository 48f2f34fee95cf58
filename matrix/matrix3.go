// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/lvgeom/vector"
)

// Dim is the fixed dimension of Matrix3.
const Dim = 3

// Matrix3 is a 3×3 matrix stored row-major: m[row][col].
// Value type; every operation returns a new matrix.
type Matrix3 [Dim][Dim]float64

// NewMatrix3 returns the matrix with the given rows.
func NewMatrix3(rows [Dim][Dim]float64) Matrix3 {
	return Matrix3(rows)
}

// Identity3 returns the 3×3 identity.
func Identity3() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// FromRows builds a matrix whose rows are r0, r1, r2.
func FromRows(r0, r1, r2 vector.Vector3) Matrix3 {
	return Matrix3{r0.Array(), r1.Array(), r2.Array()}
}

// At returns m[i][j], or ErrOutOfRange for indices outside [0, 3).
func (m Matrix3) At(i, j int) (float64, error) {
	if i < 0 || i >= Dim || j < 0 || j >= Dim {
		return 0, matrixErrorf(opAt, ErrOutOfRange)
	}

	return m[i][j], nil
}

// Rows returns the rows of m as vectors.
func (m Matrix3) Rows() [Dim]vector.Vector3 {
	return [Dim]vector.Vector3{
		vector.New3(m[0][0], m[0][1], m[0][2]),
		vector.New3(m[1][0], m[1][1], m[1][2]),
		vector.New3(m[2][0], m[2][1], m[2][2]),
	}
}

// Transpose returns mᵀ.
func (m Matrix3) Transpose() Matrix3 {
	var out Matrix3
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			out[j][i] = m[i][j]
		}
	}

	return out
}

// Scale returns m * s.
func (m Matrix3) Scale(s float64) Matrix3 {
	var out Matrix3
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			out[i][j] = m[i][j] * s
		}
	}

	return out
}

// Neg returns -m.
func (m Matrix3) Neg() Matrix3 {
	return m.Scale(-1)
}

// Mul returns the matrix product m·rhs.
func (m Matrix3) Mul(rhs Matrix3) Matrix3 {
	var (
		out  Matrix3 // result accumulator, zero-initialized
		i, j int     // row of m, column of rhs
	)
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			out[i][j] = m[i][0]*rhs[0][j] + m[i][1]*rhs[1][j] + m[i][2]*rhs[2][j] // row i · column j
		}
	}

	return out
}

// MulVec returns m·v, treating v as a column vector.
func (m Matrix3) MulVec(v vector.Vector3) vector.Vector3 {
	rows := m.Rows() // each output component is a row dot v

	return vector.New3(rows[0].Dot(v), rows[1].Dot(v), rows[2].Dot(v))
}

// Determinant returns det(m) by cofactor expansion along the first row.
func (m Matrix3) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) - // + a₀₀·M₀₀
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) + // − a₀₁·M₀₁
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0]) // + a₀₂·M₀₂
}

// isFinite reports whether every entry is neither NaN nor ±Inf.
func (m Matrix3) isFinite() bool {
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			if math.IsNaN(m[i][j]) || math.IsInf(m[i][j], 0) {
				return false
			}
		}
	}

	return true
}

// SPDX-License-Identifier: MIT

package matrix

// ZeroDeterminant is the sentinel determinant that marks a singular matrix.
// The comparison is exact: near-singular matrices invert (badly conditioned).
const ZeroDeterminant = 0.0

// Cofactors returns the matrix of cofactors C[i][j] = (-1)^(i+j)·M[i][j],
// where M[i][j] is the minor obtained by deleting row i and column j.
func (m Matrix3) Cofactors() Matrix3 {
	return Matrix3{
		{
			m[1][1]*m[2][2] - m[1][2]*m[2][1],
			m[1][2]*m[2][0] - m[1][0]*m[2][2],
			m[1][0]*m[2][1] - m[1][1]*m[2][0],
		},
		{
			m[0][2]*m[2][1] - m[0][1]*m[2][2],
			m[0][0]*m[2][2] - m[0][2]*m[2][0],
			m[0][1]*m[2][0] - m[0][0]*m[2][1],
		},
		{
			m[0][1]*m[1][2] - m[0][2]*m[1][1],
			m[0][2]*m[1][0] - m[0][0]*m[1][2],
			m[0][0]*m[1][1] - m[0][1]*m[1][0],
		},
	}
}

// Adjugate returns the transpose of the cofactor matrix.
func (m Matrix3) Adjugate() Matrix3 {
	return m.Cofactors().Transpose()
}

// Inverse returns m⁻¹ = adj(m) / det(m).
// Blueprint:
//
//	Stage 1 (Validate): every entry must be finite.
//	Stage 2 (Determinant): cofactor expansion; exact zero ⇒ ErrSingular.
//	Stage 3 (Execute): adjugate scaled by 1/det.
//
// Errors:
//   - ErrNaNInf   — an entry is NaN or ±Inf.
//   - ErrSingular — det(m) == 0 (degenerate input, e.g. collinear regression points).
//
// Complexity: O(1).
func (m Matrix3) Inverse() (Matrix3, error) {
	// Stage 1: Validate entries
	if !m.isFinite() {
		return Matrix3{}, matrixErrorf(opInverse, ErrNaNInf)
	}

	// Stage 2: Determinant and singular check
	det := m.Determinant()      // cofactor expansion along row 0
	if det == ZeroDeterminant { // exact zero pivot
		return Matrix3{}, matrixErrorf(opInverse, ErrSingular)
	}

	// Stage 3: Adjugate over determinant
	adj := m.Adjugate()
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			adj[i][j] /= det
		}
	}

	return adj, nil
}

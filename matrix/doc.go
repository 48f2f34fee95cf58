// SPDX-License-Identifier: MIT

// Package matrix provides the fixed-size 3×3 linear algebra used by lvgeom.
//
// The matrix package provides:
//
//   - Matrix3, a row-major [3][3]float64 value type (no heap allocation).
//   - Products with other matrices and with vector.Vector3.
//   - Determinant by cofactor expansion and Inverse via the adjugate.
//
// Inverse fails with ErrSingular when the determinant is exactly zero; the
// plane regression in package plane relies on that to report degenerate
// (collinear) point sets instead of returning garbage.
//
// See the examples in this package for usage patterns.
package matrix

// SPDX-License-Identifier: MIT

package plane

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/vector"
)

// DegenerateTolerance is the relative bound under which the centered xy
// covariance of a regression sample counts as singular.
const DegenerateTolerance = 1e-12

// Regress fits z = mx·x + my·y + c to points by least squares and returns
// the plane together with the sum of squared z residuals.
//
// Stage 1: gather the coordinate columns and their moment sums.
// Stage 2: reject point sets whose xy footprint is (numerically) a line or a
// point. The centered covariance determinant Cxx·Cyy − Cxy² is compared
// against DegenerateTolerance·(Cxx+Cyy)², so the test is scale-free.
// Stage 3: solve the normal equations
//
//	| Σx²  Σxy  Σx | |mx|   | Σxz |
//	| Σxy  Σy²  Σy | |my| = | Σyz |
//	| Σx   Σy   n  | |c |   | Σz  |
//
// Stage 4: accumulate residuals against the fitted surface.
//
// Errors: ErrTooFewPoints below three points; matrix.ErrSingular when the
// points do not determine a non-vertical plane (collinear, vertical).
func Regress(points []vector.Vector3) (SimplePlane, float64, error) {
	if len(points) < 3 {
		return SimplePlane{}, 0, planeErrorf(opRegress, ErrTooFewPoints)
	}

	// Stage 1: coordinate columns and raw moments
	var (
		n  = len(points)         // sample count, bottom-right Gram entry
		xs = make([]float64, n) // x column
		ys = make([]float64, n) // y column
		zs = make([]float64, n) // z column (the regressand)
	)
	for i, pt := range points {
		xs[i], ys[i], zs[i] = pt.X, pt.Y, pt.Z
	}
	sx, sy, sz := floats.Sum(xs), floats.Sum(ys), floats.Sum(zs)                 // first moments
	sxx, syy, sxy := floats.Dot(xs, xs), floats.Dot(ys, ys), floats.Dot(xs, ys) // second moments
	sxz, syz := floats.Dot(xs, zs), floats.Dot(ys, zs)                          // cross moments with z

	// Stage 2: scale-relative degeneracy of the xy footprint
	if degenerateFootprint(xs, ys, sx, sy) {
		return SimplePlane{}, 0, planeErrorf(opRegress, matrix.ErrSingular)
	}

	// Stage 3: normal equations
	gram := matrix.NewMatrix3([3][3]float64{
		{sxx, sxy, sx},
		{sxy, syy, sy},
		{sx, sy, float64(n)},
	})
	inv, err := gram.Inverse() // exact zero determinant still reported here
	if err != nil {
		return SimplePlane{}, 0, planeErrorf(opRegress, err)
	}
	coef := inv.MulVec(vector.New3(sxz, syz, sz))
	mx, my, c := coef.X, coef.Y, coef.Z // z = mx·x + my·y + c

	// Stage 4: residuals
	residuals := make([]float64, n)
	for i := range points {
		residuals[i] = zs[i] - (mx*xs[i] + my*ys[i] + c) // signed vertical miss
	}

	return FromMXB(mx, my, c), floats.Dot(residuals, residuals), nil
}

// degenerateFootprint reports whether the centered xy covariance of the
// samples is singular relative to its own scale. Centering happens on copies
// so the raw columns stay intact for the normal equations.
func degenerateFootprint(xs, ys []float64, sx, sy float64) bool {
	var (
		n  = float64(len(xs))
		cx = append([]float64(nil), xs...) // x − mean(x)
		cy = append([]float64(nil), ys...) // y − mean(y)
	)
	floats.AddConst(-sx/n, cx)
	floats.AddConst(-sy/n, cy)

	cxx, cyy, cxy := floats.Dot(cx, cx), floats.Dot(cy, cy), floats.Dot(cx, cy)
	det := cxx*cyy - cxy*cxy // ≥ 0 up to rounding (Cauchy–Schwarz)
	trace := cxx + cyy       // total spread; 0 when all xy coincide

	return det <= DegenerateTolerance*trace*trace
}

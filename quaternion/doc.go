// SPDX-License-Identifier: MIT

// Package quaternion implements Hamilton quaternions for rotation algebra.
//
// A Quaternion{W, X, Y, Z} is either a rotation (unit norm) or a general
// hypercomplex intermediate, e.g. the pure-vector quaternion (0, v) used to
// rotate v. The zero value is NOT the identity; use Identity().
//
// Products, conjugates and norms are delegated to gonum.org/v1/gonum/num/quat
// so Number() / FromNumber interoperate with the rest of the gonum stack.
//
// Preconditions:
//   - Inverse requires a non-zero quaternion; the zero quaternion yields
//     Inf/NaN components. Callers own this check.
//
// Small-angle policy:
//   - FromRotationVector returns Identity() when |v| < SmallAngle.
//   - Exp uses the Taylor series of sinc below SmallAngle.
package quaternion

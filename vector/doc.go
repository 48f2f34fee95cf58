// SPDX-License-Identifier: MIT

// Package vector provides the 2D and 3D real-valued vectors every other
// lvgeom package is built on.
//
// 🚀 What is in here?
//
//	Vector2{X, Y} and Vector3{X, Y, Z} are small value types (copy semantics).
//	Every operation returns a new value; nothing is mutated in place, so any
//	vector can be shared between goroutines without synchronization.
//
// ✨ Key features:
//   - arithmetic: Add, Sub, Neg, Scale, Div
//   - products: Dot, Cross (Vector2.Cross returns the scalar z component)
//   - length: Magnitude, Hat, WithMagnitude, DistTo
//   - angles: AngleCosine, Angle (3D, via github.com/golang/geo/r3)
//   - interop: R3/FromR3 (golang/geo), Mgl/FromMgl (go-gl/mathgl)
//
// Numeric policy:
//
//   - Equal is epsilon equality: a.DistTo(b) < Epsilon (1e-12). It is not a
//     true equivalence relation; do not rely on transitivity beyond Epsilon.
//   - Hat and WithMagnitude of the zero vector return the zero vector.
//   - AngleCosine with a zero operand returns NaN. This is the defined result,
//     not an error.
//   - No other inputs are guarded; NaN and Inf propagate per IEEE-754.
//
// Usage:
//
//	i, j := vector.IHat(), vector.JHat()
//	k := i.Cross(j)            // (0, 0, 1)
//	u := vector.New3(2, 3, 6).Hat() // (2/7, 3/7, 6/7)
package vector

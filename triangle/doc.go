// SPDX-License-Identifier: MIT

// Package triangle provides SimpleTriangle, a 3D triangle with point and ray
// intersection tests that report boundary contact separately.
//
// Orientation follows the vertex order: the normal is (B−A)×(C−B)/2, its
// length is the area, and Flip reverses the winding.
//
// Classification of an in-plane point uses barycentric coordinates (u, v)
// along B−A and C−A:
//
//	u < 0 ∨ v < 0 ∨ u+v > 1   ⇒ Never
//	u == 0 ∨ v == 0 ∨ u+v == 1 ⇒ Edge
//	otherwise                  ⇒ Once
//
// A zero-area triangle intersects nothing.
package triangle

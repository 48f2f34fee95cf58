// SPDX-License-Identifier: MIT

// Package rotation implements 3D orientations (Rotation3) and rigid
// transforms (Pose3) as non-commutative composition groups.
//
// 🚀 Operand order
//
//	The algebra uses named methods instead of operators, and the receiver is
//	always the transform that acts FIRST in time for Rotation3.Compose and the
//	OUTER frame for Pose3.Compose:
//
//	  a.Compose(b)    Rotation3: rotate by a, then by b   (quaternion b·a)
//	                  Pose3:     b expressed in a's frame, placed by a
//	  a.Inverse()     the group inverse
//	  a.Sub(b)        the x with x∘b == a (undoes a trailing b)
//	  a.RelativeTo(b) b⁻¹ then a, i.e. a seen from b's frame
//	  a.Scale(t)      fractional transform along the shorter arc
//
//	Composition is NOT commutative: a.Compose(b) != b.Compose(a) in general.
//
// ✨ Numeric policy
//
//   - Rotation3 always holds a unit quaternion. New normalizes its input and
//     every composition renormalizes the product, so long chains do not drift.
//   - Equality is up to the quaternion double cover: q and -q are the same
//     rotation.
//   - Scale picks the shorter arc (angle ≤ π) before scaling, so
//     (270° about k).Scale(0.5) is 45° about -k, not 135° about k.
//
// ⚙️ Interop
//
//   - Rotation3.Quat / Mat3 and Pose3.Mat4 convert to github.com/go-gl/mathgl.
//   - Pose3.DualQuaternion converts to gonum's num/dualquat; the dual
//     quaternion product of two poses equals their Compose.
//
// Usage:
//
//	quarter := rotation.FromAxisAngle(vector.KHat().Scale(math.Pi / 2))
//	p := rotation.NewPose(vector.IHat(), quarter)
//	p.Compose(p.Inverse()) // identity
package rotation

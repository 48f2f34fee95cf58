// SPDX-License-Identifier: MIT

package rotation

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/lvgeom/quaternion"
	"github.com/katalvlaran/lvgeom/vector"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// Pose3 is a rigid transform: a point x maps to Position + Orientation(x).
// The zero value is not valid (its orientation is the zero quaternion and
// every transform yields NaN); use IdentityPose.
type Pose3 struct {
	Position    vector.Vector3
	Orientation Rotation3
}

// NewPose returns the pose with the given position and orientation.
func NewPose(position vector.Vector3, orientation Rotation3) Pose3 {
	return Pose3{Position: position, Orientation: orientation}
}

// IdentityPose returns the pose at the origin with no rotation.
func IdentityPose() Pose3 {
	return Pose3{Orientation: Identity()}
}

// Compose returns b expressed in p's frame and then placed by p:
//
//	position    = p.Position + p.Orientation.RotateVector(b.Position)
//	orientation = b.Orientation followed by p.Orientation
//
// so that p.Compose(b).TransformPoint(x) == p.TransformPoint(b.TransformPoint(x)).
// Not commutative. The orientation is the quaternion q_p·q_b, intentionally
// the reverse of a literal "p.orientation + b.orientation" (q_b·q_p), which
// would break associativity.
func (p Pose3) Compose(b Pose3) Pose3 {
	return Pose3{
		Position:    p.Position.Add(p.Orientation.RotateVector(b.Position)),
		Orientation: b.Orientation.Compose(p.Orientation),
	}
}

// Inverse returns the pose that undoes p; both p∘p⁻¹ and p⁻¹∘p are the identity.
func (p Pose3) Inverse() Pose3 {
	inv := p.Orientation.Inverse()

	return Pose3{
		Position:    inv.RotateVector(p.Position.Neg()),
		Orientation: inv,
	}
}

// Sub returns the pose x with x.Compose(b) == p.
func (p Pose3) Sub(b Pose3) Pose3 {
	return p.Compose(b.Inverse())
}

// RelativeTo returns p expressed in b's frame: b⁻¹∘p.
// It satisfies b.Compose(p.RelativeTo(b)) == p.
func (p Pose3) RelativeTo(b Pose3) Pose3 {
	return b.Inverse().Compose(p)
}

// Scale scales the position linearly and the orientation fractionally
// (shorter arc). p.Scale(2) is generally not p.Compose(p).
func (p Pose3) Scale(t float64) Pose3 {
	return Pose3{
		Position:    p.Position.Scale(t),
		Orientation: p.Orientation.Scale(t),
	}
}

// TransformPoint maps x from p's local frame into the parent frame.
func (p Pose3) TransformPoint(x vector.Vector3) vector.Vector3 {
	return p.Position.Add(p.Orientation.RotateVector(x))
}

// Equal reports whether positions agree within vector.Epsilon and
// orientations are the same rotation within Epsilon.
func (p Pose3) Equal(b Pose3) bool {
	return p.EqualWithin(b, Epsilon)
}

// EqualWithin is Equal with an explicit tolerance for both parts.
func (p Pose3) EqualWithin(b Pose3, tol float64) bool {
	return p.Position.DistTo(b.Position) < tol && p.Orientation.EqualWithin(b.Orientation, tol)
}

// Mat4 returns the homogeneous transform as a column-major mgl64.Mat4.
func (p Pose3) Mat4() mgl64.Mat4 {
	t := mgl64.Translate3D(p.Position.X, p.Position.Y, p.Position.Z)

	return t.Mul4(p.Orientation.Quat().Mat4())
}

// DualQuaternion returns the unit dual quaternion r + ε·½·t·r, where r is the
// orientation and t the pure quaternion of the position.
func (p Pose3) DualQuaternion() dualquat.Number {
	r := p.Orientation.Quaternion().Number()
	t := quaternion.FromScalarVector(0, p.Position).Number()

	return dualquat.Number{
		Real: r,
		Dual: quat.Scale(0.5, quat.Mul(t, r)),
	}
}

// PoseFromDualQuaternion inverts DualQuaternion. The real part is normalized;
// the translation is the vector part of 2·dual·conj(real).
func PoseFromDualQuaternion(d dualquat.Number) Pose3 {
	n := quat.Abs(d.Real)
	r := quat.Scale(1/n, d.Real)
	dual := quat.Scale(1/n, d.Dual)
	t := quat.Scale(2, quat.Mul(dual, quat.Conj(r)))

	return Pose3{
		Position:    quaternion.FromNumber(t).Vector(),
		Orientation: New(quaternion.FromNumber(r)),
	}
}

// SPDX-License-Identifier: MIT

package rotation

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/quaternion"
	"github.com/katalvlaran/lvgeom/vector"
)

// Epsilon is the default tolerance for Rotation3 and Pose3 equality.
const Epsilon = 1e-12

// Rotation3 is an element of SO(3) backed by a unit quaternion.
// The zero value is not valid; use Identity.
type Rotation3 struct {
	q quaternion.Quaternion
}

// Identity returns the rotation that leaves every vector unchanged.
func Identity() Rotation3 {
	return Rotation3{q: quaternion.Identity()}
}

// New wraps q, normalizing it to unit length. The zero quaternion maps to Identity.
func New(q quaternion.Quaternion) Rotation3 {
	return Rotation3{q: q.Hat()}
}

// FromAxisAngle returns the rotation by |v| radians about v (right-hand rule).
// Vectors shorter than quaternion.SmallAngle give Identity.
func FromAxisAngle(v vector.Vector3) Rotation3 {
	return Rotation3{q: quaternion.FromRotationVector(v)}
}

// FromQuat converts a go-gl mgl64.Quat.
func FromQuat(q mgl64.Quat) Rotation3 {
	return New(quaternion.New(q.W, q.V[0], q.V[1], q.V[2]))
}

// Quaternion returns the underlying unit quaternion.
func (r Rotation3) Quaternion() quaternion.Quaternion {
	return r.q
}

// Compose returns the rotation that applies r first and then next.
// The quaternion is next.q · r.q, renormalized.
func (r Rotation3) Compose(next Rotation3) Rotation3 {
	return Rotation3{q: next.q.Mul(r.q).Hat()}
}

// Inverse returns the rotation that undoes r.
func (r Rotation3) Inverse() Rotation3 {
	return Rotation3{q: r.q.Inverse()}
}

// Sub returns the rotation x with x.Compose(b) == r, i.e. quaternion b⁻¹·r.
// Equivalent to r.Compose(b.Inverse()).
func (r Rotation3) Sub(b Rotation3) Rotation3 {
	return r.Compose(b.Inverse())
}

// RelativeTo returns b.Inverse().Compose(r): undo b, then apply r.
// It satisfies b.Compose(r.RelativeTo(b)) == r.
func (r Rotation3) RelativeTo(b Rotation3) Rotation3 {
	return b.Inverse().Compose(r)
}

// Scale returns the fractional rotation: same axis, angle multiplied by t.
// The shorter arc is used: a quaternion with negative scalar part is
// negated before its angle is read, so the result does not depend on which
// of q, -q represents r.
func (r Rotation3) Scale(t float64) Rotation3 {
	return FromAxisAngle(r.q.RotationVector().Scale(t))
}

// Div returns r.Scale(1 / t).
func (r Rotation3) Div(t float64) Rotation3 {
	return r.Scale(1 / t)
}

// Slerp interpolates from r (t = 0) to b (t = 1) along the shorter great arc.
func (r Rotation3) Slerp(b Rotation3, t float64) Rotation3 {
	return r.Compose(b.RelativeTo(r).Scale(t))
}

// RotateVector returns v rotated by r: the vector part of q·(0, v)·q⁻¹.
func (r Rotation3) RotateVector(v vector.Vector3) vector.Vector3 {
	p := quaternion.FromScalarVector(0, v)

	return r.q.Mul(p).Mul(r.q.Inverse()).Vector()
}

// AxisAngle returns the rotation vector (unit axis · angle) with angle in [0, π].
func (r Rotation3) AxisAngle() vector.Vector3 {
	return r.q.RotationVector()
}

// Angle returns the rotation angle in [0, π].
func (r Rotation3) Angle() float64 {
	return r.AxisAngle().Magnitude()
}

// Equal reports whether r and b are the same rotation within Epsilon.
func (r Rotation3) Equal(b Rotation3) bool {
	return r.EqualWithin(b, Epsilon)
}

// EqualWithin reports whether r and b are the same rotation within tol,
// comparing quaternions up to sign.
func (r Rotation3) EqualWithin(b Rotation3, tol float64) bool {
	return r.q.SameRotation(b.q, tol)
}

// Matrix returns the 3×3 rotation matrix whose columns are the rotated basis.
func (r Rotation3) Matrix() matrix.Matrix3 {
	return matrix.FromRows(
		r.RotateVector(vector.IHat()),
		r.RotateVector(vector.JHat()),
		r.RotateVector(vector.KHat()),
	).Transpose()
}

// Quat converts r to a go-gl mgl64.Quat.
func (r Rotation3) Quat() mgl64.Quat {
	return mgl64.Quat{W: r.q.W, V: mgl64.Vec3{r.q.X, r.q.Y, r.q.Z}}
}

// Mat3 returns the rotation matrix as a column-major mgl64.Mat3.
func (r Rotation3) Mat3() mgl64.Mat3 {
	return r.Quat().Mat4().Mat3()
}

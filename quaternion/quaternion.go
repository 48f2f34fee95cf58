// SPDX-License-Identifier: MIT

package quaternion

import (
	"math"

	"github.com/katalvlaran/lvgeom/vector"
	"gonum.org/v1/gonum/num/quat"
)

// SmallAngle is the magnitude below which rotation vectors are treated as zero
// and sinc switches to its Taylor expansion.
const SmallAngle = 1e-9

// Epsilon is the 4D distance under which two quaternions compare Equal.
const Epsilon = 1e-12

// Quaternion is w + xi + yj + zk.
type Quaternion struct {
	W, X, Y, Z float64
}

// New returns w + xi + yj + zk.
func New(w, x, y, z float64) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// Identity returns (1, 0, 0, 0).
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// FromScalarVector returns (s, v).
func FromScalarVector(s float64, v vector.Vector3) Quaternion {
	return Quaternion{W: s, X: v.X, Y: v.Y, Z: v.Z}
}

// FromRotationVector returns the unit quaternion rotating by |v| radians about v.
// Rotation vectors shorter than SmallAngle map to Identity.
func FromRotationVector(v vector.Vector3) Quaternion {
	theta := v.Magnitude()
	if theta < SmallAngle {
		return Identity()
	}
	half := theta / 2

	return FromScalarVector(math.Cos(half), v.Hat().Scale(math.Sin(half)))
}

// FromVectorProduct returns the quaternion product of the pure quaternions
// (0, a) and (0, b) with the sign convention (a·b, a×b).
func FromVectorProduct(a, b vector.Vector3) Quaternion {
	return FromScalarVector(a.Dot(b), a.Cross(b))
}

// FromNumber converts a gonum quat.Number.
func FromNumber(n quat.Number) Quaternion {
	return Quaternion{W: n.Real, X: n.Imag, Y: n.Jmag, Z: n.Kmag}
}

// Number converts q to a gonum quat.Number.
func (q Quaternion) Number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// Scalar returns the real part w.
func (q Quaternion) Scalar() float64 { return q.W }

// Vector returns the imaginary part (x, y, z).
func (q Quaternion) Vector() vector.Vector3 {
	return vector.New3(q.X, q.Y, q.Z)
}

// Add returns q + rhs.
func (q Quaternion) Add(rhs Quaternion) Quaternion {
	return FromNumber(quat.Add(q.Number(), rhs.Number()))
}

// Sub returns q - rhs.
func (q Quaternion) Sub(rhs Quaternion) Quaternion {
	return FromNumber(quat.Sub(q.Number(), rhs.Number()))
}

// Neg returns -q. As a rotation, -q and q are the same.
func (q Quaternion) Neg() Quaternion {
	return Quaternion{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Scale returns q * s.
func (q Quaternion) Scale(s float64) Quaternion {
	return FromNumber(quat.Scale(s, q.Number()))
}

// Div returns q / s.
func (q Quaternion) Div(s float64) Quaternion {
	return Quaternion{W: q.W / s, X: q.X / s, Y: q.Y / s, Z: q.Z / s}
}

// Mul returns the Hamilton product q·rhs. Not commutative:
//
//	scalar = w1·w2 − v1·v2
//	vector = w1·v2 + w2·v1 + v1×v2
func (q Quaternion) Mul(rhs Quaternion) Quaternion {
	return FromNumber(quat.Mul(q.Number(), rhs.Number()))
}

// Dot returns the 4D Euclidean dot product.
func (q Quaternion) Dot(rhs Quaternion) float64 {
	return q.W*rhs.W + q.X*rhs.X + q.Y*rhs.Y + q.Z*rhs.Z
}

// Conjugate returns (w, -v).
func (q Quaternion) Conjugate() Quaternion {
	return FromNumber(quat.Conj(q.Number()))
}

// Norm returns √(q·q).
func (q Quaternion) Norm() float64 {
	return quat.Abs(q.Number())
}

// Inverse returns conj(q) / (q·q).
// q must be non-zero; the zero quaternion produces Inf/NaN components.
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate().Div(q.Dot(q))
}

// Hat returns q scaled to unit norm. The zero quaternion maps to Identity.
func (q Quaternion) Hat() Quaternion {
	n := q.Norm()
	if n == 0 {
		return Identity()
	}

	return q.Div(n)
}

// Equal reports whether q and rhs are closer than Epsilon in 4D.
func (q Quaternion) Equal(rhs Quaternion) bool {
	return q.EqualWithin(rhs, Epsilon)
}

// EqualWithin reports whether the 4D distance between q and rhs is below tol.
func (q Quaternion) EqualWithin(rhs Quaternion, tol float64) bool {
	d := q.Sub(rhs)

	return math.Sqrt(d.Dot(d)) < tol
}

// SameRotation reports whether q and rhs represent the same rotation,
// i.e. q == rhs or q == -rhs within tol.
func (q Quaternion) SameRotation(rhs Quaternion, tol float64) bool {
	return q.EqualWithin(rhs, tol) || q.EqualWithin(rhs.Neg(), tol)
}

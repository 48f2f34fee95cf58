// SPDX-License-Identifier: MIT

package quaternion

import (
	"math"

	"github.com/katalvlaran/lvgeom/vector"
)

// sinc returns sin(θ)/θ, switching to 1 − θ²/6 + θ⁴/120 below SmallAngle
// where the quotient loses precision.
func sinc(theta float64) float64 {
	if math.Abs(theta) < SmallAngle {
		t2 := theta * theta

		return 1 - t2/6 + t2*t2/120
	}

	return math.Sin(theta) / theta
}

// clampUnit limits x to [-1, 1] so that acos never sees rounding overshoot.
func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

// Exp returns the quaternion exponential
//
//	exp(w, v) = e^w · (cos|v|, sinc(|v|)·v)
//
// For a pure quaternion (0, θ/2·axis) this is the rotation by θ about axis.
func (q Quaternion) Exp() Quaternion {
	v := q.Vector()
	theta := v.Magnitude()
	ew := math.Exp(q.W)

	return FromScalarVector(ew*math.Cos(theta), v.Scale(ew*sinc(theta)))
}

// Log returns the quaternion logarithm
//
//	log(q) = (ln|q|, acos(w/|q|)/|v| · v)
//
// the inverse of Exp on the principal branch. q must be non-zero. When the
// vector part is shorter than SmallAngle the axis is undefined: positive real
// quaternions return a zero-angle vector part scaled by 1/|q| (the limit), and
// negative real quaternions pick the X axis for the π rotation.
func (q Quaternion) Log() Quaternion {
	n := q.Norm()
	v := q.Vector()
	vm := v.Magnitude()
	if vm < SmallAngle {
		if q.W < 0 {
			return FromScalarVector(math.Log(n), vector.IHat().Scale(math.Pi))
		}

		return FromScalarVector(math.Log(n), v.Div(n))
	}
	theta := math.Acos(clampUnit(q.W / n))

	return FromScalarVector(math.Log(n), v.Scale(theta/vm))
}

// RotationVector returns the axis-angle vector (axis · angle, angle ∈ [0, π])
// of the unit quaternion q, the inverse of FromRotationVector.
// The shorter arc is chosen: when w < 0 the quaternion is negated first, so q
// and -q (the same rotation) give the same result.
func (q Quaternion) RotationVector() vector.Vector3 {
	if q.W < 0 {
		q = q.Neg()
	}
	v := q.Vector()
	angle := 2 * math.Atan2(v.Magnitude(), q.W)

	return v.WithMagnitude(angle)
}

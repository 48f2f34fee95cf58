// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the distance under which two vectors compare Equal.
const Epsilon = 1e-12

// Vector3 is a point or direction in 3D space.
type Vector3 struct {
	X, Y, Z float64
}

// New3 returns the vector (x, y, z).
func New3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Zero3 returns the zero vector.
func Zero3() Vector3 { return Vector3{} }

// IHat returns the unit vector along X.
func IHat() Vector3 { return Vector3{X: 1} }

// JHat returns the unit vector along Y.
func JHat() Vector3 { return Vector3{Y: 1} }

// KHat returns the unit vector along Z.
func KHat() Vector3 { return Vector3{Z: 1} }

// Add returns v + rhs.
func (v Vector3) Add(rhs Vector3) Vector3 {
	return Vector3{X: v.X + rhs.X, Y: v.Y + rhs.Y, Z: v.Z + rhs.Z}
}

// Sub returns v - rhs.
func (v Vector3) Sub(rhs Vector3) Vector3 {
	return Vector3{X: v.X - rhs.X, Y: v.Y - rhs.Y, Z: v.Z - rhs.Z}
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Scale returns v * s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns v / s. Division by zero follows IEEE-754.
func (v Vector3) Div(s float64) Vector3 {
	return Vector3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Dot returns the scalar product v·rhs.
func (v Vector3) Dot(rhs Vector3) float64 {
	return v.X*rhs.X + v.Y*rhs.Y + v.Z*rhs.Z
}

// Cross returns the vector product v×rhs (right-hand rule).
func (v Vector3) Cross(rhs Vector3) Vector3 {
	return Vector3{
		X: v.Y*rhs.Z - v.Z*rhs.Y,
		Y: v.Z*rhs.X - v.X*rhs.Z,
		Z: v.X*rhs.Y - v.Y*rhs.X,
	}
}

// MagnitudeSquared returns v·v.
func (v Vector3) MagnitudeSquared() float64 {
	return v.Dot(v)
}

// Magnitude returns the Euclidean norm of v.
func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// Hat returns v normalized to unit length.
// The zero vector is returned unchanged.
func (v Vector3) Hat() Vector3 {
	if v.X == 0 && v.Y == 0 && v.Z == 0 {
		return v
	}

	return v.Div(v.Magnitude())
}

// WithMagnitude returns a vector along v with length m (negative m flips it).
// The zero vector stays zero regardless of m.
func (v Vector3) WithMagnitude(m float64) Vector3 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector3{}
	}

	return v.Scale(m / mag)
}

// AngleCosine returns cos of the angle between v and rhs.
// Returns NaN when either operand has zero magnitude.
func (v Vector3) AngleCosine(rhs Vector3) float64 {
	return v.Dot(rhs) / (v.Magnitude() * rhs.Magnitude())
}

// Angle returns the unsigned angle between v and rhs in radians, in [0, π].
// Unlike AngleCosine it is well conditioned near 0 and π, and returns 0 when
// either operand is zero.
func (v Vector3) Angle(rhs Vector3) float64 {
	return v.R3().Angle(rhs.R3()).Radians()
}

// DistTo returns |v - rhs|.
func (v Vector3) DistTo(rhs Vector3) float64 {
	return v.Sub(rhs).Magnitude()
}

// Equal reports whether v and rhs are closer than Epsilon.
func (v Vector3) Equal(rhs Vector3) bool {
	return v.DistTo(rhs) < Epsilon
}

// Array returns the components as [X, Y, Z].
func (v Vector3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// R3 converts v to a github.com/golang/geo r3.Vector.
func (v Vector3) R3() r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

// FromR3 converts an r3.Vector.
func FromR3(p r3.Vector) Vector3 {
	return Vector3{X: p.X, Y: p.Y, Z: p.Z}
}

// Mgl converts v to a go-gl mgl64.Vec3.
func (v Vector3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromMgl converts an mgl64.Vec3.
func FromMgl(p mgl64.Vec3) Vector3 {
	return Vector3{X: p[0], Y: p[1], Z: p[2]}
}

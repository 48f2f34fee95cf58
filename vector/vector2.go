// SPDX-License-Identifier: MIT

package vector

import "math"

// Vector2 is a point or direction in the plane.
type Vector2 struct {
	X, Y float64
}

// New2 returns the vector (x, y).
func New2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Zero2 returns the zero vector.
func Zero2() Vector2 { return Vector2{} }

// IHat2 returns the unit vector along X.
func IHat2() Vector2 { return Vector2{X: 1} }

// JHat2 returns the unit vector along Y.
func JHat2() Vector2 { return Vector2{Y: 1} }

// Add returns v + rhs.
func (v Vector2) Add(rhs Vector2) Vector2 {
	return Vector2{X: v.X + rhs.X, Y: v.Y + rhs.Y}
}

// Sub returns v - rhs.
func (v Vector2) Sub(rhs Vector2) Vector2 {
	return Vector2{X: v.X - rhs.X, Y: v.Y - rhs.Y}
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Scale returns v * s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div returns v / s.
func (v Vector2) Div(s float64) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Dot returns v·rhs.
func (v Vector2) Dot(rhs Vector2) float64 {
	return v.X*rhs.X + v.Y*rhs.Y
}

// Cross returns the z component of the 3D cross product of (v, 0) and (rhs, 0).
// Positive when rhs lies counter-clockwise of v.
func (v Vector2) Cross(rhs Vector2) float64 {
	return v.X*rhs.Y - v.Y*rhs.X
}

// MagnitudeSquared returns v·v.
func (v Vector2) MagnitudeSquared() float64 {
	return v.Dot(v)
}

// Magnitude returns the Euclidean norm of v.
func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// Hat returns v normalized; the zero vector is returned unchanged.
func (v Vector2) Hat() Vector2 {
	if v.X == 0 && v.Y == 0 {
		return v
	}

	return v.Div(v.Magnitude())
}

// WithMagnitude returns a vector along v with length m; zero stays zero.
func (v Vector2) WithMagnitude(m float64) Vector2 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector2{}
	}

	return v.Scale(m / mag)
}

// AngleCosine returns cos of the angle between v and rhs, NaN for a zero operand.
func (v Vector2) AngleCosine(rhs Vector2) float64 {
	return v.Dot(rhs) / (v.Magnitude() * rhs.Magnitude())
}

// DistTo returns |v - rhs|.
func (v Vector2) DistTo(rhs Vector2) float64 {
	return v.Sub(rhs).Magnitude()
}

// Equal reports whether v and rhs are closer than Epsilon.
func (v Vector2) Equal(rhs Vector2) bool {
	return v.DistTo(rhs) < Epsilon
}

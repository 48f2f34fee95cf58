// SPDX-License-Identifier: MIT

package plane

import (
	"math"

	"github.com/katalvlaran/lvgeom/vector"
)

// CoordinatePlane is a plane carrying an in-plane 2D frame: local (u, v)
// maps to Origin + u·X + v·Y. X and Y are orthogonal but need not be unit.
type CoordinatePlane struct {
	Origin vector.Vector3
	X      vector.Vector3
	Y      vector.Vector3
}

// NewCoordinatePlane validates the axes and builds the frame.
// Zero axes fail with ErrDegenerateAxis; axes with
// |x·y| > vector.Epsilon·|x|·|y| fail with ErrNonOrthogonal.
func NewCoordinatePlane(origin, x, y vector.Vector3) (CoordinatePlane, error) {
	xm, ym := x.Magnitude(), y.Magnitude()
	if xm == 0 || ym == 0 {
		return CoordinatePlane{}, planeErrorf(opNewCoordinatePlane, ErrDegenerateAxis)
	}
	if math.Abs(x.Dot(y)) > vector.Epsilon*xm*ym {
		return CoordinatePlane{}, planeErrorf(opNewCoordinatePlane, ErrNonOrthogonal)
	}

	return CoordinatePlane{Origin: origin, X: x, Y: y}, nil
}

// Normal returns the unit normal X×Y.
func (c CoordinatePlane) Normal() vector.Vector3 {
	return c.X.Cross(c.Y).Hat()
}

// Simple drops the frame and keeps the plane.
func (c CoordinatePlane) Simple() SimplePlane {
	return New(c.Origin, c.X.Cross(c.Y))
}

// ToLocal projects p into frame coordinates, measured in units of X and Y.
func (c CoordinatePlane) ToLocal(p vector.Vector3) vector.Vector2 {
	d := p.Sub(c.Origin)

	return vector.Vector2{
		X: d.Dot(c.X) / c.X.MagnitudeSquared(),
		Y: d.Dot(c.Y) / c.Y.MagnitudeSquared(),
	}
}

// ToWorld maps frame coordinates back into space.
func (c CoordinatePlane) ToWorld(uv vector.Vector2) vector.Vector3 {
	return c.Origin.Add(c.X.Scale(uv.X)).Add(c.Y.Scale(uv.Y))
}

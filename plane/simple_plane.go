// SPDX-License-Identifier: MIT

package plane

import (
	"github.com/katalvlaran/lvgeom/linear"
	"github.com/katalvlaran/lvgeom/vector"
)

// SimplePlane is the infinite plane through Origin with unit Normal.
type SimplePlane struct {
	Origin vector.Vector3
	Normal vector.Vector3
}

// New returns the plane through origin with the normalized normal.
// A zero normal yields a degenerate plane whose every test reports
// LiesOn or Never.
func New(origin, normal vector.Vector3) SimplePlane {
	return SimplePlane{Origin: origin, Normal: normal.Hat()}
}

// FromMXB returns the plane z = mx·x + my·y + c.
func FromMXB(mx, my, c float64) SimplePlane {
	return New(vector.New3(0, 0, c), vector.New3(mx, my, -1))
}

// PointIntersects reports whether p lies exactly in the plane.
func (p SimplePlane) PointIntersects(point vector.Vector3) bool {
	return p.Normal.Dot(point.Sub(p.Origin)) == 0
}

// SignedDistance returns the distance from the plane to point, positive on
// the side the normal points to.
func (p SimplePlane) SignedDistance(point vector.Vector3) float64 {
	return p.Normal.Dot(point.Sub(p.Origin))
}

// Project returns the orthogonal projection of point onto the plane.
func (p SimplePlane) Project(point vector.Vector3) vector.Vector3 {
	return point.Sub(p.Normal.Scale(p.SignedDistance(point)))
}

// Flip returns the same plane with the normal reversed.
func (p SimplePlane) Flip() SimplePlane {
	return SimplePlane{Origin: p.Origin, Normal: p.Normal.Neg()}
}

// param solves n·(o + t·d − plane.Origin) = 0 for t.
// parallel is true when n·d == 0; lies is then set when o is in the plane.
func (p SimplePlane) param(origin, direction vector.Vector3) (t float64, parallel, lies bool) {
	var (
		nv     = p.Normal.Dot(direction)             // rate of approach along the normal
		offset = p.Normal.Dot(origin.Sub(p.Origin)) // signed height of origin above the plane
	)
	if nv == 0 { // exact: no tolerance on parallelism
		return 0, true, offset == 0
	}

	return -offset / nv, false, false // height reaches zero at t
}

// LineIntersects intersects the plane with an infinite line.
func (p SimplePlane) LineIntersects(l linear.Line) Intersection {
	t, parallel, lies := p.param(l.Origin, l.Direction)
	if parallel {
		return parallelOutcome(lies)
	}

	return OnceAt(l.At(t))
}

// RayIntersects intersects the plane with a ray; hits behind the origin are Never.
func (p SimplePlane) RayIntersects(r linear.Ray) Intersection {
	t, parallel, lies := p.param(r.Origin, r.Direction)
	if parallel {
		return parallelOutcome(lies)
	}
	if t < 0 { // plane is behind the ray origin
		return NeverIntersects()
	}

	return OnceAt(r.At(t))
}

// SegmentIntersects intersects the plane with a segment. Interior crossings
// are Once, crossings exactly at an endpoint are Edge.
func (p SimplePlane) SegmentIntersects(s linear.Segment) Intersection {
	t, parallel, lies := p.param(s.A, s.Direction())
	if parallel {
		return parallelOutcome(lies)
	}
	switch {
	case t == 0: // starts on the plane
		return EdgeAt(s.A)
	case t == 1: // ends on the plane
		return EdgeAt(s.B)
	case t > 0 && t < 1:
		return OnceAt(s.At(t))
	default:
		return NeverIntersects()
	}
}

func parallelOutcome(lies bool) Intersection {
	if lies {
		return LiesOnPlane()
	}

	return NeverIntersects()
}

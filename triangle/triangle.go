// SPDX-License-Identifier: MIT

package triangle

import (
	"math"

	"github.com/katalvlaran/lvgeom/linear"
	"github.com/katalvlaran/lvgeom/plane"
	"github.com/katalvlaran/lvgeom/vector"
)

// CoplanarTolerance bounds |distance| from the triangle's plane for a point
// to count as in-plane.
const CoplanarTolerance = 1e-12

// SimpleTriangle is the triangle A, B, C. Vertex order sets the orientation.
type SimpleTriangle struct {
	A, B, C vector.Vector3
}

// New returns the triangle a, b, c.
func New(a, b, c vector.Vector3) SimpleTriangle {
	return SimpleTriangle{A: a, B: b, C: c}
}

// Points returns the vertices in order.
func (t SimpleTriangle) Points() [3]vector.Vector3 {
	return [3]vector.Vector3{t.A, t.B, t.C}
}

// Normal returns (B−A)×(C−B)/2, whose length is the area.
func (t SimpleTriangle) Normal() vector.Vector3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.B)).Scale(0.5)
}

// Area returns the unsigned area.
func (t SimpleTriangle) Area() float64 {
	return t.Normal().Magnitude()
}

// Center returns the centroid.
func (t SimpleTriangle) Center() vector.Vector3 {
	return t.A.Add(t.B).Add(t.C).Div(3)
}

// NormalRay returns the ray from the centroid along Normal.
func (t SimpleTriangle) NormalRay() linear.Ray {
	return linear.NewRay(t.Center(), t.Normal())
}

// Plane returns the supporting plane through A.
func (t SimpleTriangle) Plane() plane.SimplePlane {
	return plane.New(t.A, t.Normal())
}

// Flip reverses the winding.
func (t SimpleTriangle) Flip() SimpleTriangle {
	return SimpleTriangle{A: t.A, B: t.C, C: t.B}
}

// degenerate reports a zero-area triangle.
func (t SimpleTriangle) degenerate() bool {
	return t.Normal().MagnitudeSquared() == 0
}

// PointIntersects classifies p against the triangle: Never off the plane or
// outside, Edge on the boundary, Once strictly inside.
func (t SimpleTriangle) PointIntersects(p vector.Vector3) plane.Intersection {
	if t.degenerate() {
		return plane.NeverIntersects()
	}
	if math.Abs(t.Plane().SignedDistance(p)) > CoplanarTolerance {
		return plane.NeverIntersects()
	}

	return t.classify(p)
}

// RayIntersects intersects r with the triangle. Rays lying in the plane report
// LiesOn; rays missing the plane report Never; otherwise the hit point is
// classified as in PointIntersects.
func (t SimpleTriangle) RayIntersects(r linear.Ray) plane.Intersection {
	if t.degenerate() {
		return plane.NeverIntersects()
	}
	hit := t.Plane().RayIntersects(r)
	if hit.Kind != plane.Once {
		return hit
	}

	return t.classify(hit.Point)
}

// classify assumes p is in the plane of a non-degenerate triangle.
func (t SimpleTriangle) classify(p vector.Vector3) plane.Intersection {
	e1, e2, w := t.B.Sub(t.A), t.C.Sub(t.A), p.Sub(t.A)
	d11, d12, d22 := e1.Dot(e1), e1.Dot(e2), e2.Dot(e2)
	dw1, dw2 := w.Dot(e1), w.Dot(e2)
	denom := d11*d22 - d12*d12
	if denom == 0 {
		return plane.NeverIntersects()
	}
	u := (d22*dw1 - d12*dw2) / denom
	v := (d11*dw2 - d12*dw1) / denom

	switch {
	case u < 0 || v < 0 || u+v > 1:
		return plane.NeverIntersects()
	case u == 0 || v == 0 || u+v == 1:
		return plane.EdgeAt(p)
	default:
		return plane.OnceAt(p)
	}
}

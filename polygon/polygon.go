// SPDX-License-Identifier: MIT

package polygon

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/lvgeom/vector"
)

// Polygon is an ordered, implicitly closed vertex list.
type Polygon struct {
	points []vector.Vector2
}

// New copies points into a polygon.
func New(points ...vector.Vector2) Polygon {
	return Polygon{points: append([]vector.Vector2(nil), points...)}
}

// Points returns a copy of the vertices.
func (p Polygon) Points() []vector.Vector2 {
	return append([]vector.Vector2(nil), p.points...)
}

// Len returns the vertex count.
func (p Polygon) Len() int { return len(p.points) }

// Triangles fans the polygon from vertex 0. Fewer than three vertices yield none.
func (p Polygon) Triangles() []Triangle2 {
	if len(p.points) < 3 {
		return nil
	}
	tris := make([]Triangle2, 0, len(p.points)-2)
	for i := 1; i+1 < len(p.points); i++ {
		tris = append(tris, Triangle2{A: p.points[0], B: p.points[i], C: p.points[i+1]})
	}

	return tris
}

// Area returns the signed area, positive for CCW order.
func (p Polygon) Area() float64 {
	var area float64
	for _, t := range p.Triangles() {
		area += t.Area()
	}

	return area
}

// Perimeter returns the closed boundary length.
func (p Polygon) Perimeter() float64 {
	var per float64
	for i, pt := range p.points {
		per += pt.DistTo(p.points[(i+1)%len(p.points)])
	}

	return per
}

// Ring returns the boundary as a closed orb.Ring.
func (p Polygon) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(p.points)+1)
	for _, pt := range p.points {
		ring = append(ring, orb.Point{pt.X, pt.Y})
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}

	return ring
}

// FromRing builds a polygon from r, dropping the closing point if present.
func FromRing(r orb.Ring) Polygon {
	if len(r) > 1 && r[0] == r[len(r)-1] {
		r = r[:len(r)-1]
	}
	pts := make([]vector.Vector2, len(r))
	for i, pt := range r {
		pts[i] = vector.New2(pt[0], pt[1])
	}

	return Polygon{points: pts}
}

// Bound returns the axis-aligned bounding box.
func (p Polygon) Bound() orb.Bound {
	return p.Ring().Bound()
}

// Centroid returns the area centroid.
func (p Polygon) Centroid() vector.Vector2 {
	c, _ := planar.CentroidArea(p.Ring())

	return vector.New2(c[0], c[1])
}

// IsCCW reports counter-clockwise vertex order.
func (p Polygon) IsCCW() bool {
	return p.Ring().Orientation() == orb.CCW
}

// Contains reports whether pt lies inside the polygon or on its boundary.
func (p Polygon) Contains(pt vector.Vector2) bool {
	if len(p.points) < 3 {
		return false
	}

	return planar.RingContains(p.Ring(), orb.Point{pt.X, pt.Y})
}

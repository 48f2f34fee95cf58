// SPDX-License-Identifier: MIT

package solid

import (
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/triangle"
	"github.com/katalvlaran/lvgeom/vector"
)

// Tetrahedron is spanned by the edge vectors A, B, C from Origin.
type Tetrahedron struct {
	Origin  vector.Vector3
	A, B, C vector.Vector3
}

// New returns the tetrahedron with the given origin and edge vectors.
func New(origin, a, b, c vector.Vector3) Tetrahedron {
	return Tetrahedron{Origin: origin, A: a, B: b, C: c}
}

// FromPoints returns the tetrahedron with vertices a, b, c, d.
func FromPoints(a, b, c, d vector.Vector3) Tetrahedron {
	return New(a, b.Sub(a), c.Sub(a), d.Sub(a))
}

// Volume returns A·(B×C)/6. The sign encodes handedness of the edge vectors.
func (t Tetrahedron) Volume() float64 {
	return t.A.Dot(t.B.Cross(t.C)) / 6
}

// Points returns the four vertices, origin first.
func (t Tetrahedron) Points() [4]vector.Vector3 {
	return [4]vector.Vector3{t.Origin, t.Origin.Add(t.A), t.Origin.Add(t.B), t.Origin.Add(t.C)}
}

// Contains reports whether p lies inside or on the tetrahedron.
// Degenerate tetrahedra contain nothing.
func (t Tetrahedron) Contains(p vector.Vector3) bool {
	edges := matrix.FromRows(t.A, t.B, t.C).Transpose()
	inv, err := edges.Inverse()
	if err != nil {
		return false
	}
	l := inv.MulVec(p.Sub(t.Origin))

	return l.X >= 0 && l.Y >= 0 && l.Z >= 0 && l.X+l.Y+l.Z <= 1
}

// Surface returns the four faces, outward for positive volume.
func (t Tetrahedron) Surface() [4]triangle.SimpleTriangle {
	p := t.Points()

	return [4]triangle.SimpleTriangle{
		triangle.New(p[0], p[2], p[1]),
		triangle.New(p[0], p[3], p[2]),
		triangle.New(p[0], p[1], p[3]),
		triangle.New(p[1], p[2], p[3]),
	}
}

// SurfaceArea sums the face areas.
func (t Tetrahedron) SurfaceArea() float64 {
	var area float64
	for _, f := range t.Surface() {
		area += f.Area()
	}

	return area
}

// SPDX-License-Identifier: MIT

package solid

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvgeom/triangle"
	"github.com/katalvlaran/lvgeom/vector"
)

// Face indexes three polyhedron vertices; the order sets the winding.
type Face [3]int

// Polyhedron is a triangle mesh over a shared vertex list.
type Polyhedron struct {
	points []vector.Vector3
	faces  []Face
}

// NewPolyhedron copies points and faces and validates them.
//
// Stage 1: reject empty input (ErrEmptyMesh).
// Stage 2: reject out-of-range indices (ErrFaceIndex).
// Stage 3: run the configured MeshValidator (homeomorphism, then normals).
func NewPolyhedron(points []vector.Vector3, faces []Face, opts ...Option) (Polyhedron, error) {
	o := gatherOptions(opts...)

	// Stage 1: non-empty input
	if len(points) == 0 || len(faces) == 0 {
		return Polyhedron{}, solidErrorf(opNewPolyhedron, ErrEmptyMesh)
	}

	// Stage 2: every face index resolves to a point
	for i, f := range faces { // i reported for diagnostics
		for _, idx := range f {
			if idx < 0 || idx >= len(points) { // negative or past the end
				return Polyhedron{}, fmt.Errorf("%s: face %d index %d: %w", opNewPolyhedron, i, idx, ErrFaceIndex)
			}
		}
	}

	// Stage 3: structural validation (AcceptAll unless overridden)
	if err := o.validator.CheckHomeomorphism(points, faces); err != nil { // topology first
		return Polyhedron{}, solidErrorf(opNewPolyhedron, err)
	}
	if err := o.validator.CheckNormals(points, faces); err != nil { // winding needs a valid topology
		return Polyhedron{}, solidErrorf(opNewPolyhedron, err)
	}

	return NewUnchecked(points, faces), nil // copies; caller slices stay theirs
}

// NewAutofix would repair winding and gaps before validation. No repair
// strategy exists, so it always fails with ErrNotImplemented.
func NewAutofix(_ []vector.Vector3, _ []Face) (Polyhedron, error) {
	return Polyhedron{}, solidErrorf(opNewAutofix, ErrNotImplemented)
}

// NewUnchecked copies points and faces without any validation.
func NewUnchecked(points []vector.Vector3, faces []Face) Polyhedron {
	return Polyhedron{
		points: append([]vector.Vector3(nil), points...),
		faces:  append([]Face(nil), faces...),
	}
}

// Cube returns the outward-wound unit cube on [0,1]³.
func Cube() Polyhedron {
	return NewUnchecked(
		[]vector.Vector3{
			vector.Zero3(),
			vector.IHat(),
			vector.JHat(),
			vector.KHat(),
			vector.New3(0, 1, 1),
			vector.New3(1, 0, 1),
			vector.New3(1, 1, 0),
			vector.New3(1, 1, 1),
		},
		[]Face{
			{0, 2, 1}, {0, 1, 3}, {0, 3, 2},
			{6, 1, 2}, {5, 3, 1}, {4, 2, 3},
			{4, 5, 7}, {4, 7, 6}, {5, 6, 7},
			{4, 3, 5}, {4, 6, 2}, {5, 1, 6},
		},
	)
}

// Points returns a copy of the vertex list.
func (p Polyhedron) Points() []vector.Vector3 {
	return append([]vector.Vector3(nil), p.points...)
}

// Faces returns a copy of the face list.
func (p Polyhedron) Faces() []Face {
	return append([]Face(nil), p.faces...)
}

// Triangles resolves faces into triangles.
func (p Polyhedron) Triangles() []triangle.SimpleTriangle {
	tris := make([]triangle.SimpleTriangle, len(p.faces))
	for i, f := range p.faces {
		tris[i] = triangle.New(p.points[f[0]], p.points[f[1]], p.points[f[2]])
	}

	return tris
}

// Volume sums signed tetrahedra fanned from the first vertex.
func (p Polyhedron) Volume() float64 {
	return fanVolume(p.points, p.faces)
}

// SurfaceArea sums the face areas.
func (p Polyhedron) SurfaceArea() float64 {
	var area float64
	for _, t := range p.Triangles() {
		area += t.Area()
	}

	return area
}

// Contains reports whether pt is enclosed, by generalized winding number.
// Each face contributes its signed solid angle (Van Oosterom–Strackee);
// the total over 4π is ±1 inside and 0 outside a closed mesh.
func (p Polyhedron) Contains(pt vector.Vector3) bool {
	var omega float64 // accumulated signed solid angle
	for _, f := range p.faces {
		a := p.points[f[0]].Sub(pt)
		b := p.points[f[1]].Sub(pt)
		c := p.points[f[2]].Sub(pt)
		la, lb, lc := a.Magnitude(), b.Magnitude(), c.Magnitude()
		num := a.Dot(b.Cross(c))
		den := la*lb*lc + a.Dot(b)*lc + a.Dot(c)*lb + b.Dot(c)*la
		omega += 2 * math.Atan2(num, den)
	}

	return math.Abs(omega/(4*math.Pi)) > 0.5
}

// OBJ renders the mesh as Wavefront OBJ text with 1-based face indices.
func (p Polyhedron) OBJ() string {
	var sb strings.Builder
	sb.WriteString("# generated from polyhedron by lvgeom\n")
	for _, v := range p.points {
		fmt.Fprintf(&sb, "v %f %f %f\n", v.X, v.Y, v.Z)
	}
	for _, f := range p.faces {
		fmt.Fprintf(&sb, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1)
	}

	return sb.String()
}

func fanVolume(points []vector.Vector3, faces []Face) float64 {
	if len(points) == 0 {
		return 0
	}
	var vol float64
	for _, f := range faces {
		vol += FromPoints(points[0], points[f[0]], points[f[1]], points[f[2]]).Volume()
	}

	return vol
}

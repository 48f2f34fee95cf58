// SPDX-License-Identifier: MIT

package solid

import "github.com/katalvlaran/lvgeom/vector"

// MeshValidator checks the structure of a triangle mesh whose face indices are
// already known to be in range.
type MeshValidator interface {
	// CheckHomeomorphism verifies the mesh bounds a single closed body.
	CheckHomeomorphism(points []vector.Vector3, faces []Face) error
	// CheckNormals verifies every face is wound outward.
	CheckNormals(points []vector.Vector3, faces []Face) error
}

// AcceptAll trusts the mesh.
type AcceptAll struct{}

// CheckHomeomorphism always succeeds.
func (AcceptAll) CheckHomeomorphism([]vector.Vector3, []Face) error { return nil }

// CheckNormals always succeeds.
func (AcceptAll) CheckNormals([]vector.Vector3, []Face) error { return nil }

// Unimplemented rejects every mesh with ErrNotImplemented.
type Unimplemented struct{}

// CheckHomeomorphism returns ErrNotImplemented.
func (Unimplemented) CheckHomeomorphism([]vector.Vector3, []Face) error { return ErrNotImplemented }

// CheckNormals returns ErrNotImplemented.
func (Unimplemented) CheckNormals([]vector.Vector3, []Face) error { return ErrNotImplemented }

// EdgeManifold validates by edge incidence.
//
// CheckHomeomorphism: no face repeats a vertex, every undirected edge borders
// exactly two faces, and V − E + F == 2 over the referenced vertices.
//
// CheckNormals: every directed edge occurs once with its reverse present, and
// the enclosed volume is positive.
type EdgeManifold struct{}

type edge struct{ from, to int }

// CheckHomeomorphism implements MeshValidator.
func (EdgeManifold) CheckHomeomorphism(_ []vector.Vector3, faces []Face) error {
	undirected := make(map[edge]int, 3*len(faces)/2)
	used := make(map[int]struct{})
	for _, f := range faces {
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			return ErrNotManifold
		}
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			undirected[edge{a, b}]++
			used[f[k]] = struct{}{}
		}
	}
	for _, n := range undirected {
		if n != 2 {
			return ErrNotManifold
		}
	}
	if len(used)-len(undirected)+len(faces) != 2 {
		return ErrNotManifold
	}

	return nil
}

// CheckNormals implements MeshValidator.
func (EdgeManifold) CheckNormals(points []vector.Vector3, faces []Face) error {
	directed := make(map[edge]struct{}, 3*len(faces))
	for _, f := range faces {
		for k := 0; k < 3; k++ {
			e := edge{f[k], f[(k+1)%3]}
			if _, dup := directed[e]; dup {
				return ErrInconsistentNormals
			}
			directed[e] = struct{}{}
		}
	}
	for e := range directed {
		if _, ok := directed[edge{e.to, e.from}]; !ok {
			return ErrInconsistentNormals
		}
	}
	if fanVolume(points, faces) <= 0 {
		return ErrInconsistentNormals
	}

	return nil
}

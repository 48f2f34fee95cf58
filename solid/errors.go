// SPDX-License-Identifier: MIT

package solid

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is returned by construction paths that have no implementation.
	ErrNotImplemented = errors.New("solid: not implemented")

	// ErrEmptyMesh indicates a polyhedron without points or faces.
	ErrEmptyMesh = errors.New("solid: mesh has no points or no faces")

	// ErrFaceIndex indicates a face referencing a vertex outside the point list.
	ErrFaceIndex = errors.New("solid: face index out of range")

	// ErrNotManifold indicates a mesh that is not a closed genus-0 surface.
	ErrNotManifold = errors.New("solid: mesh is not a closed manifold")

	// ErrInconsistentNormals indicates faces that are not uniformly wound outward.
	ErrInconsistentNormals = errors.New("solid: face winding is inconsistent")
)

// Operation tags for error wrapping.
const (
	opNewPolyhedron = "NewPolyhedron"
	opNewAutofix    = "NewAutofix"
)

// solidErrorf wraps err with an operation tag; err must be non-nil.
func solidErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

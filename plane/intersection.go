// SPDX-License-Identifier: MIT

package plane

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/vector"
)

// Kind classifies an intersection.
type Kind int

const (
	// Never: no intersection.
	Never Kind = iota
	// Once: a single interior crossing.
	Once
	// Edge: a crossing exactly on a boundary (segment endpoint, triangle edge).
	Edge
	// LiesOn: the tested primitive lies entirely in the plane.
	LiesOn
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Never:
		return "Never"
	case Once:
		return "Once"
	case Edge:
		return "Edge"
	case LiesOn:
		return "LiesOn"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Intersection is the outcome of an intersection test.
// Point is meaningful only for Once and Edge.
type Intersection struct {
	Kind  Kind
	Point vector.Vector3
}

// NeverIntersects returns the Never outcome.
func NeverIntersects() Intersection { return Intersection{Kind: Never} }

// LiesOnPlane returns the LiesOn outcome.
func LiesOnPlane() Intersection { return Intersection{Kind: LiesOn} }

// OnceAt returns a Once outcome at p.
func OnceAt(p vector.Vector3) Intersection { return Intersection{Kind: Once, Point: p} }

// EdgeAt returns an Edge outcome at p.
func EdgeAt(p vector.Vector3) Intersection { return Intersection{Kind: Edge, Point: p} }

// Hits reports whether the outcome is Once or Edge.
func (i Intersection) Hits() bool {
	return i.Kind == Once || i.Kind == Edge
}

// Equal compares kinds and, for Once and Edge, points within vector.Epsilon.
func (i Intersection) Equal(o Intersection) bool {
	if i.Kind != o.Kind {
		return false
	}
	if i.Hits() {
		return i.Point.Equal(o.Point)
	}

	return true
}

// String renders e.g. "Once((1, 7, 4))" or "Never".
func (i Intersection) String() string {
	if i.Hits() {
		return fmt.Sprintf("%s((%g, %g, %g))", i.Kind, i.Point.X, i.Point.Y, i.Point.Z)
	}

	return i.Kind.String()
}

// SPDX-License-Identifier: MIT

package linear

import "github.com/katalvlaran/lvgeom/vector"

// Line is the infinite line Origin + t·Direction, t ∈ ℝ.
// Direction is unit length when built with NewLine.
type Line struct {
	Origin    vector.Vector3
	Direction vector.Vector3
}

// NewLine normalizes direction. A zero direction stays zero (degenerate line).
func NewLine(origin, direction vector.Vector3) Line {
	return Line{Origin: origin, Direction: direction.Hat()}
}

// At returns Origin + t·Direction.
func (l Line) At(t float64) vector.Vector3 {
	return l.Origin.Add(l.Direction.Scale(t))
}

// Ray is the half-line Origin + t·Direction, t ≥ 0.
// Direction is kept as given so t measures multiples of it.
type Ray struct {
	Origin    vector.Vector3
	Direction vector.Vector3
}

// NewRay returns the ray from origin along direction.
func NewRay(origin, direction vector.Vector3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns Origin + t·Direction.
func (r Ray) At(t float64) vector.Vector3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// PointsAway reports the ray's heading relative to point:
// 1 if it points away, -1 if towards, 0 if perpendicular to the offset.
func (r Ray) PointsAway(point vector.Vector3) int {
	dt := point.Sub(r.Origin).Dot(r.Direction)
	switch {
	case dt == 0:
		return 0
	case dt > 0:
		return -1
	default:
		return 1
	}
}

// Line returns the infinite line carrying r.
func (r Ray) Line() Line {
	return NewLine(r.Origin, r.Direction)
}

// Segment is the bounded segment from A to B.
type Segment struct {
	A, B vector.Vector3
}

// NewSegment returns the segment [a, b].
func NewSegment(a, b vector.Vector3) Segment {
	return Segment{A: a, B: b}
}

// Direction returns B − A (not normalized).
func (s Segment) Direction() vector.Vector3 {
	return s.B.Sub(s.A)
}

// Length returns |B − A|.
func (s Segment) Length() float64 {
	return s.Direction().Magnitude()
}

// At returns A + t·(B − A); t ∈ [0, 1] stays on the segment.
func (s Segment) At(t float64) vector.Vector3 {
	return s.A.Add(s.Direction().Scale(t))
}

// Midpoint returns (A + B) / 2.
func (s Segment) Midpoint() vector.Vector3 {
	return s.A.Add(s.B).Scale(0.5)
}

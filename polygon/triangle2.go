// SPDX-License-Identifier: MIT

package polygon

import "github.com/katalvlaran/lvgeom/vector"

// Triangle2 is a planar triangle.
type Triangle2 struct {
	A, B, C vector.Vector2
}

// Area returns the signed area, positive for CCW order.
func (t Triangle2) Area() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)) / 2
}

// Contains reports whether p lies inside or on the boundary, for either winding.
func (t Triangle2) Contains(p vector.Vector2) bool {
	d1 := t.B.Sub(t.A).Cross(p.Sub(t.A))
	d2 := t.C.Sub(t.B).Cross(p.Sub(t.B))
	d3 := t.A.Sub(t.C).Cross(p.Sub(t.C))
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0

	return !(neg && pos)
}

// SPDX-License-Identifier: MIT

// Package plane implements infinite planes, their intersection tests with
// points, lines, rays and segments, and a least-squares plane regression.
//
// 🚀 Intersection taxonomy
//
//	Every intersection test returns an Intersection value, never an error:
//
//	  Once(p)  — a single crossing at p
//	  Edge(p)  — a boundary touch at p (segment endpoint, triangle edge)
//	  LiesOn   — the whole primitive lies in the plane
//	  Never    — no intersection (parallel and offset, pointing away, or
//	             outside the segment)
//
//	Callers must handle all four kinds.
//
// ⚙️ Decision procedure (line, ray, segment with origin o, direction d):
//
//	nv = n·d
//	nv == 0:  n·(o − plane.Origin) == 0 ? LiesOn : Never
//	else:     t = −n·(o − plane.Origin) / nv
//	          ray:     t < 0 ⇒ Never
//	          segment: t ∈ (0,1) ⇒ Once, t ∈ {0,1} ⇒ Edge, else Never
//
// Comparisons are exact; no tolerance is applied to nv or t.
//
// ✨ Regression
//
//	Regress fits z = mx·x + my·y + c by the normal equations. A degenerate
//	point set (collinear, vertical) yields a singular 3×3 system and the
//	call fails with an error matching matrix.ErrSingular.
//
// CoordinatePlane adds an in-plane 2D frame (origin plus orthogonal axes);
// non-orthogonal axes are rejected with ErrNonOrthogonal.
package plane

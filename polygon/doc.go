// SPDX-License-Identifier: MIT

// Package polygon holds planar polygons over vector.Vector2.
//
// A Polygon is an ordered vertex list; simplicity and counter-clockwise order
// are the caller's responsibility. Area is computed by fanning triangles from
// the first vertex, so it is signed: positive for CCW input.
//
// Interop with github.com/paulmach/orb covers rings, bounds, centroids and
// point containment.
package polygon

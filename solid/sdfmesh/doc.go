// SPDX-License-Identifier: MIT

// Package sdfmesh converts signed distance fields from github.com/deadsy/sdfx
// into solid.Polyhedron meshes.
//
// The field is sampled with uniform marching cubes; the resulting triangle
// soup is welded into a shared vertex list (vertices closer than the weld
// tolerance merge) and faces collapsed by welding are dropped.
//
//	box, _ := sdf.Box3D(v3.Vec{X: 2, Y: 2, Z: 2}, 0)
//	p, err := sdfmesh.FromSDF3(box, sdfmesh.WithCells(32))
package sdfmesh

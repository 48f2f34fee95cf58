// SPDX-License-Identifier: MIT

// Package solid provides closed 3D bodies: the Tetrahedron primitive and the
// triangle-mesh Polyhedron.
//
// 🚀 Tetrahedron
//
//	Stored as an origin plus three edge vectors. Volume is the signed scalar
//	triple product over six; Surface winds its faces outward when the volume
//	is positive and inward when it is negative.
//
// ✨ Polyhedron
//
//	A vertex list plus triangular faces indexing into it. Construction
//	checks indices and then runs a pluggable MeshValidator:
//
//	  AcceptAll      — default; structure is taken on trust
//	  EdgeManifold   — closed, genus-0, consistently and outwardly wound
//	  Unimplemented  — always ErrNotImplemented
//
//	NewUnchecked skips every check. Volume fans signed tetrahedra from the
//	first vertex, so it is exact for any closed, consistently wound mesh.
//	Contains uses the generalized winding number.
//
// ⚙️ Options
//
//	NewPolyhedron(points, faces, WithValidator(EdgeManifold{}))
package solid

// Package lvgeom is a small computational-geometry toolkit: vectors,
// rotations, rigid poses and the intersection tests between them.
//
// 🚀 What is in lvgeom?
//
//	Plain value types with pure methods, no shared state:
//		• Vectors: 2D and 3D, with golang/geo r3 and mathgl interop
//		• Matrix3: determinant, adjugate inverse
//		• Quaternions on gonum num/quat, with exp/log maps
//		• Rotation3 and Pose3 (rigid transforms), dual-quaternion interop
//		• Lines, rays, segments; planes with least-squares regression
//		• Triangles, polygons (paulmach/orb interop)
//		• Tetrahedra, polyhedra, and sdfx signed-distance meshing
//
// ✨ Why lvgeom?
//
//   - Boundary-aware – intersections report Once, Edge, LiesOn or Never
//   - No drift – rotations renormalize after every composition
//   - Explicit failures – singular systems and bad frames return sentinel errors
//
// Packages:
//
//	vector/         — Vector2, Vector3
//	matrix/         — Matrix3
//	quaternion/     — Quaternion, Exp, Log, rotation vectors
//	rotation/       — Rotation3, Pose3
//	linear/         — Line, Ray, Segment
//	plane/          — SimplePlane, CoordinatePlane, Intersection, Regress
//	triangle/       — SimpleTriangle
//	polygon/        — Polygon, Triangle2
//	solid/          — Tetrahedron, Polyhedron, mesh validators
//	solid/sdfmesh/  — marching-cubes meshing of sdfx fields
//
// Quick example:
//
//	p := plane.New(vector.New3(1, 0, 0), vector.IHat())
//	hit := p.RayIntersects(linear.NewRay(vector.New3(0, 2, 1), vector.New3(1, 5, 3)))
//	// hit.String() == "Once((1, 7, 4))"
//
//	go get github.com/katalvlaran/lvgeom
package lvgeom

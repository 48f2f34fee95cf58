// SPDX-License-Identifier: MIT

package sdfmesh

import (
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/katalvlaran/lvgeom/solid"
	"github.com/katalvlaran/lvgeom/vector"
)

const (
	// DefaultCells is the marching-cubes resolution along the longest bounding-box axis.
	DefaultCells = 64

	// DefaultWeldTolerance is the grid step used to merge coincident vertices.
	DefaultWeldTolerance = 1e-9
)

const (
	panicCellsInvalid = "sdfmesh: WithCells: cells must be ≥ 1"
	panicWeldInvalid  = "sdfmesh: WithWeldTolerance: tolerance must be finite and > 0"
)

// Option configures FromSDF3.
type Option func(*Options)

// Options is the resolved meshing policy.
type Options struct {
	cells int
	weld  float64
}

// WithCells sets the marching-cubes resolution. Panics when cells < 1.
func WithCells(cells int) Option {
	if cells < 1 {
		panic(panicCellsInvalid)
	}

	return func(o *Options) { o.cells = cells }
}

// WithWeldTolerance sets the vertex weld grid step. Panics unless tol is finite and positive.
func WithWeldTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicWeldInvalid)
	}

	return func(o *Options) { o.weld = tol }
}

func gatherOptions(opts ...Option) Options {
	o := Options{cells: DefaultCells, weld: DefaultWeldTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

type weldKey [3]int64

// FromSDF3 meshes s into a polyhedron.
//
// Stage 1: render the field to triangles with uniform marching cubes.
// Stage 2: weld vertices on a tolerance grid, dropping collapsed faces.
// Stage 3: hand the indexed mesh to solid.NewPolyhedron with the default validator.
//
// Errors: ErrNilField; solid.ErrEmptyMesh when the field produces no surface.
func FromSDF3(s sdf.SDF3, opts ...Option) (solid.Polyhedron, error) {
	if s == nil {
		return solid.Polyhedron{}, meshErrorf(opFromSDF3, ErrNilField)
	}
	o := gatherOptions(opts...)

	// Stage 1: triangle soup from marching cubes
	tris := render.ToTriangles(s, render.NewMarchingCubesUniform(o.cells)) // bbox padded by sdfx

	// Stage 2: weld onto a shared vertex list
	var (
		index  = make(map[weldKey]int, len(tris))         // grid cell → vertex index
		points = make([]vector.Vector3, 0, len(tris)/2) // closed meshes share ~6 faces per vertex
		faces  = make([]solid.Face, 0, len(tris))       // surviving faces, soup order
	)
	weld := func(v v3.Vec) int {
		k := weldKey{
			int64(math.Round(v.X / o.weld)),
			int64(math.Round(v.Y / o.weld)),
			int64(math.Round(v.Z / o.weld)),
		}
		if i, ok := index[k]; ok {
			return i // already seen within tolerance
		}
		index[k] = len(points)
		points = append(points, vector.New3(v.X, v.Y, v.Z))

		return len(points) - 1
	}
	for _, tri := range tris {
		f := solid.Face{weld(tri[0]), weld(tri[1]), weld(tri[2])}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			continue // sliver collapsed by welding
		}
		faces = append(faces, f)
	}

	// Stage 3: index checks and the default validator
	p, err := solid.NewPolyhedron(points, faces) // empty soup ⇒ solid.ErrEmptyMesh
	if err != nil {
		return solid.Polyhedron{}, meshErrorf(opFromSDF3, err)
	}

	return p, nil
}

package sdfmesh_test

import (
	"math"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/katalvlaran/lvgeom/solid/sdfmesh"
	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromSDF3_Box meshes a 2×2×2 box and checks volume, area and containment.
func TestFromSDF3_Box(t *testing.T) {
	box, err := sdf.Box3D(v3.Vec{X: 2, Y: 2, Z: 2}, 0)
	require.NoError(t, err)

	p, err := sdfmesh.FromSDF3(box, sdfmesh.WithCells(24))
	require.NoError(t, err)

	assert.NotEmpty(t, p.Faces())
	assert.Less(t, len(p.Points()), 3*len(p.Faces()), "vertices are shared")
	assert.InDelta(t, 8.0, math.Abs(p.Volume()), 0.5)
	assert.InDelta(t, 24.0, p.SurfaceArea(), 2.0)
	assert.True(t, p.Contains(vector.Zero3()))
	assert.False(t, p.Contains(vector.New3(3, 0, 0)))
}

// TestFromSDF3_Sphere checks the mesh approximates 4/3·π·r³.
func TestFromSDF3_Sphere(t *testing.T) {
	ball, err := sdf.Sphere3D(1)
	require.NoError(t, err)

	p, err := sdfmesh.FromSDF3(ball, sdfmesh.WithCells(32))
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3*math.Pi, math.Abs(p.Volume()), 0.15)
}

// TestFromSDF3_Nil checks the nil-field guard is reported with the operation tag.
func TestFromSDF3_Nil(t *testing.T) {
	_, err := sdfmesh.FromSDF3(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, sdfmesh.ErrNilField)
	assert.Equal(t, "FromSDF3: sdfmesh: nil signed distance field", err.Error())
}

// TestOptions_Panic checks option validation.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { sdfmesh.WithCells(0) })
	assert.Panics(t, func() { sdfmesh.WithWeldTolerance(0) })
	assert.Panics(t, func() { sdfmesh.WithWeldTolerance(math.NaN()) })
	assert.NotPanics(t, func() { sdfmesh.WithWeldTolerance(1e-6) })
}

package solid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvgeom/solid"
	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCube_Measures checks volume, surface area and face count of the unit cube.
func TestCube_Measures(t *testing.T) {
	c := solid.Cube()

	assert.Len(t, c.Points(), 8)
	assert.Len(t, c.Triangles(), 12)
	assert.InDelta(t, 1.0, c.Volume(), 1e-12)
	assert.InDelta(t, 6.0, c.SurfaceArea(), 1e-12)
}

// TestCube_OutwardNormals checks every face normal points away from the center.
func TestCube_OutwardNormals(t *testing.T) {
	center := vector.New3(0.5, 0.5, 0.5)
	for i, tri := range solid.Cube().Triangles() {
		assert.Positive(t, tri.Normal().Dot(tri.Center().Sub(center)), "face %d", i)
	}
}

// TestPolyhedron_Contains checks the winding-number test on the cube.
func TestPolyhedron_Contains(t *testing.T) {
	c := solid.Cube()

	assert.True(t, c.Contains(vector.New3(0.5, 0.5, 0.5)))
	assert.True(t, c.Contains(vector.New3(0.9, 0.1, 0.5)))
	assert.False(t, c.Contains(vector.New3(2, 2, 2)))
	assert.False(t, c.Contains(vector.New3(-0.1, 0.5, 0.5)))
}

// TestPolyhedron_OBJ checks header, vertex and 1-based face lines.
func TestPolyhedron_OBJ(t *testing.T) {
	obj := solid.Cube().OBJ()
	lines := strings.Split(strings.TrimSuffix(obj, "\n"), "\n")

	require.Len(t, lines, 1+8+12)
	assert.True(t, strings.HasPrefix(lines[0], "# "))
	assert.Equal(t, "v 0.000000 0.000000 0.000000", lines[1])
	assert.Equal(t, "v 1.000000 1.000000 1.000000", lines[8])
	assert.Equal(t, "f 1 3 2", lines[9])
	assert.Equal(t, "f 6 2 7", lines[20])
}

// TestNewPolyhedron_Validation covers input checks and the validators.
func TestNewPolyhedron_Validation(t *testing.T) {
	cube := solid.Cube()
	pts, faces := cube.Points(), cube.Faces()

	_, err := solid.NewPolyhedron(nil, faces)
	assert.ErrorIs(t, err, solid.ErrEmptyMesh)

	_, err = solid.NewPolyhedron(pts, []solid.Face{{0, 1, 8}})
	assert.ErrorIs(t, err, solid.ErrFaceIndex)

	_, err = solid.NewPolyhedron(pts, faces, solid.WithValidator(solid.Unimplemented{}))
	assert.ErrorIs(t, err, solid.ErrNotImplemented)

	got, err := solid.NewPolyhedron(pts, faces)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got.Volume(), 1e-12)

	_, err = solid.NewPolyhedron(pts, faces, solid.WithValidator(solid.EdgeManifold{}))
	assert.NoError(t, err)
}

// TestEdgeManifold_Rejects checks open, inconsistently wound and inside-out meshes.
func TestEdgeManifold_Rejects(t *testing.T) {
	cube := solid.Cube()
	pts, faces := cube.Points(), cube.Faces()
	strict := solid.WithValidator(solid.EdgeManifold{})

	_, err := solid.NewPolyhedron(pts, faces[1:], strict)
	assert.ErrorIs(t, err, solid.ErrNotManifold, "open mesh")

	_, err = solid.NewPolyhedron(pts, []solid.Face{{0, 0, 1}}, strict)
	assert.ErrorIs(t, err, solid.ErrNotManifold, "repeated vertex")

	flippedOne := append([]solid.Face(nil), faces...)
	flippedOne[0] = solid.Face{faces[0][0], faces[0][2], faces[0][1]}
	_, err = solid.NewPolyhedron(pts, flippedOne, strict)
	assert.ErrorIs(t, err, solid.ErrInconsistentNormals, "one face flipped")

	insideOut := make([]solid.Face, len(faces))
	for i, f := range faces {
		insideOut[i] = solid.Face{f[0], f[2], f[1]}
	}
	_, err = solid.NewPolyhedron(pts, insideOut, strict)
	assert.ErrorIs(t, err, solid.ErrInconsistentNormals, "inside out")
}

// TestNewPolyhedron_TetrahedronSurface checks a tetrahedron surface validates as a mesh.
func TestNewPolyhedron_TetrahedronSurface(t *testing.T) {
	pts := []vector.Vector3{vector.Zero3(), vector.IHat(), vector.JHat(), vector.KHat()}
	faces := []solid.Face{{0, 2, 1}, {0, 3, 2}, {0, 1, 3}, {1, 2, 3}}

	p, err := solid.NewPolyhedron(pts, faces, solid.WithValidator(solid.EdgeManifold{}))
	require.NoError(t, err)
	assert.InDelta(t, unitTetra.Volume(), p.Volume(), 1e-15)
	assert.InDelta(t, unitTetra.SurfaceArea(), p.SurfaceArea(), 1e-12)
}

// TestNewAutofix checks the repair path reports not implemented.
func TestNewAutofix(t *testing.T) {
	_, err := solid.NewAutofix(solid.Cube().Points(), solid.Cube().Faces())
	assert.ErrorIs(t, err, solid.ErrNotImplemented)
}

// TestPolyhedron_CopiesInput checks construction and accessors do not alias.
func TestPolyhedron_CopiesInput(t *testing.T) {
	pts := []vector.Vector3{vector.Zero3(), vector.IHat(), vector.JHat(), vector.KHat()}
	faces := []solid.Face{{0, 2, 1}, {0, 3, 2}, {0, 1, 3}, {1, 2, 3}}
	p := solid.NewUnchecked(pts, faces)

	pts[1] = vector.New3(9, 9, 9)
	faces[0] = solid.Face{3, 3, 3}
	assert.Equal(t, vector.IHat(), p.Points()[1])
	assert.Equal(t, solid.Face{0, 2, 1}, p.Faces()[0])
}

// TestWithValidator_PanicsOnNil checks the option rejects nil.
func TestWithValidator_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { solid.WithValidator(nil) })
}

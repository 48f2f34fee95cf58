package vector_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/assert"
)

// TestVector3_Arithmetic checks sums, differences and the unit basis products.
func TestVector3_Arithmetic(t *testing.T) {
	i, j, k := vector.IHat(), vector.JHat(), vector.KHat()

	assert.True(t, i.Add(j).Equal(vector.New3(1, 1, 0)), "i+j")
	assert.True(t, i.Sub(j).Equal(vector.New3(1, -1, 0)), "i-j")
	assert.Equal(t, 0.0, i.Dot(j), "orthogonal units have zero dot")
	assert.Equal(t, 0.0, j.Dot(k), "orthogonal units have zero dot")
	assert.True(t, i.Cross(j).Equal(k), "i×j == k")
	assert.True(t, j.Cross(i).Equal(k.Neg()), "j×i == -k")
	assert.True(t, i.Cross(j.Scale(2)).Equal(k.Scale(2)), "cross is linear in each operand")
	assert.True(t, vector.New3(2, 4, 6).Div(2).Equal(vector.New3(1, 2, 3)))
}

// TestVector3_Hat verifies normalization and the zero-vector policy.
func TestVector3_Hat(t *testing.T) {
	assert.True(t, vector.New3(2, 3, 6).Hat().Equal(vector.New3(2.0/7, 3.0/7, 6.0/7)))
	assert.Equal(t, vector.Zero3(), vector.Zero3().Hat(), "hat(zero) == zero")
	assert.InDelta(t, 1.0, vector.New3(-4, 0.5, 9).Hat().Magnitude(), 1e-15)
}

// TestVector3_WithMagnitude verifies |WithMagnitude(m)| == |m| and the zero policy.
func TestVector3_WithMagnitude(t *testing.T) {
	v := vector.New3(2, 3, 6)
	assert.True(t, v.WithMagnitude(70).Equal(vector.New3(20, 30, 60)))

	for _, m := range []float64{0, 1, 2.5, -3, 1e6} {
		assert.InDelta(t, math.Abs(m), v.WithMagnitude(m).Magnitude(), 1e-9, "m=%v", m)
		assert.Equal(t, vector.Zero3(), vector.Zero3().WithMagnitude(m), "zero stays zero for m=%v", m)
	}
	assert.True(t, vector.IHat().WithMagnitude(0).Equal(vector.Zero3()))
}

// TestVector3_AngleCosine covers the orthogonal, parallel, 45° and zero cases.
func TestVector3_AngleCosine(t *testing.T) {
	x, y := vector.IHat(), vector.JHat()
	xy := x.Add(y)

	assert.Equal(t, 0.0, x.AngleCosine(y))
	assert.Equal(t, 1.0, x.AngleCosine(x))
	assert.InDelta(t, math.Sqrt2/2, x.AngleCosine(xy), 1e-12)
	assert.True(t, math.IsNaN(x.AngleCosine(vector.Zero3())), "zero operand yields NaN")
	assert.True(t, math.IsNaN(vector.Zero3().AngleCosine(x)), "zero operand yields NaN")
}

// TestVector3_Angle checks the r3-backed angle against known values.
func TestVector3_Angle(t *testing.T) {
	assert.InDelta(t, math.Pi/2, vector.IHat().Angle(vector.JHat()), 1e-15)
	assert.InDelta(t, math.Pi, vector.IHat().Angle(vector.IHat().Neg()), 1e-15)
	assert.InDelta(t, math.Pi/4, vector.IHat().Angle(vector.New3(1, 1, 0)), 1e-15)
	assert.Equal(t, 0.0, vector.IHat().Angle(vector.Zero3()))
}

// TestVector3_Equal verifies epsilon equality.
func TestVector3_Equal(t *testing.T) {
	v := vector.New3(1, 2, 3)
	assert.True(t, v.Equal(v.Add(vector.New3(1e-13, 0, 0))))
	assert.False(t, v.Equal(v.Add(vector.New3(1e-11, 0, 0))))
	assert.InDelta(t, 5.0, vector.Zero3().DistTo(vector.New3(3, 4, 0)), 0)
}

// TestVector3_Interop round-trips through r3 and mgl64.
func TestVector3_Interop(t *testing.T) {
	v := vector.New3(1.5, -2, 7)

	assert.Equal(t, r3.Vector{X: 1.5, Y: -2, Z: 7}, v.R3())
	assert.Equal(t, v, vector.FromR3(v.R3()))
	assert.Equal(t, mgl64.Vec3{1.5, -2, 7}, v.Mgl())
	assert.Equal(t, v, vector.FromMgl(v.Mgl()))
	assert.Equal(t, [3]float64{1.5, -2, 7}, v.Array())
}

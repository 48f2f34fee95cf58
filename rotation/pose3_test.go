package rotation_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/lvgeom/rotation"
	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/dualquat"
)

// fixtures: translation i_hat with a quarter turn about k, and
// translation j_hat with a quarter turn about i.
var (
	poseP = rotation.NewPose(vector.IHat(), rotation.FromAxisAngle(vector.KHat().Scale(math.Pi/2)))
	poseQ = rotation.NewPose(vector.JHat(), rotation.FromAxisAngle(vector.IHat().Scale(math.Pi/2)))
)

// TestPose3_InverseLaws checks p∘p⁻¹ == p⁻¹∘p == identity.
func TestPose3_InverseLaws(t *testing.T) {
	id := rotation.IdentityPose()

	for _, p := range []rotation.Pose3{poseP, poseQ, poseP.Compose(poseQ)} {
		assert.True(t, p.Compose(p.Inverse()).Equal(id), "p + (-p) == identity for %v", p)
		assert.True(t, p.Inverse().Compose(p).Equal(id), "(-p) + p == identity for %v", p)
	}
}

// TestPose3_NotCommutative checks p∘q != q∘p for the fixtures.
func TestPose3_NotCommutative(t *testing.T) {
	pq := poseP.Compose(poseQ)
	qp := poseQ.Compose(poseP)

	assert.False(t, pq.Equal(qp))
	assert.True(t, pq.Position.Equal(vector.Zero3()), "i + Rz(90°)·j == 0")
	assert.True(t, qp.Position.Equal(vector.New3(1, 1, 0)), "j + Rx(90°)·i == i + j")
}

// TestPose3_ScaleIsNotRepeatedComposition checks p·1.5 != p∘p.
func TestPose3_ScaleIsNotRepeatedComposition(t *testing.T) {
	pp := poseP.Compose(poseP)
	assert.True(t, pp.Position.Equal(vector.New3(1, 1, 0)))
	assert.True(t, pp.Orientation.EqualWithin(rotation.FromAxisAngle(vector.KHat().Scale(math.Pi)), 1e-12))

	scaled := poseP.Scale(1.5)
	assert.False(t, scaled.Equal(pp))
	assert.True(t, scaled.Position.Equal(vector.New3(1.5, 0, 0)))
	assert.InDelta(t, 3*math.Pi/4, scaled.Orientation.Angle(), 1e-12)

	half := poseP.Scale(0.5)
	assert.True(t, half.Position.Equal(vector.New3(0.5, 0, 0)))
	assert.InDelta(t, math.Pi/4, half.Orientation.Angle(), 1e-12)
}

// TestPose3_SubAndRelativeTo verifies (a−b)+b == a and b∘(a rel b) == a.
func TestPose3_SubAndRelativeTo(t *testing.T) {
	assert.True(t, poseP.Sub(poseQ).Compose(poseQ).Equal(poseP))
	assert.True(t, poseQ.Sub(poseP).Compose(poseP).Equal(poseQ))
	assert.True(t, poseQ.Compose(poseP.RelativeTo(poseQ)).Equal(poseP))
	assert.True(t, poseP.Sub(poseP).Equal(rotation.IdentityPose()))
}

// TestPose3_Associative checks (a∘b)∘c == a∘(b∘c).
func TestPose3_Associative(t *testing.T) {
	c := rotation.NewPose(vector.New3(-1, 2, 0.5), rotation.FromAxisAngle(vector.New3(0.2, -0.3, 0.9)))

	assert.True(t, poseP.Compose(poseQ).Compose(c).EqualWithin(poseP.Compose(poseQ.Compose(c)), 1e-12))
}

// TestPose3_TransformPoint checks composition acts as function composition.
func TestPose3_TransformPoint(t *testing.T) {
	x := vector.New3(0.5, -1, 2)

	got := poseP.Compose(poseQ).TransformPoint(x)
	want := poseP.TransformPoint(poseQ.TransformPoint(x))
	assert.InDelta(t, 0, got.DistTo(want), 1e-12)

	back := poseP.Inverse().TransformPoint(poseP.TransformPoint(x))
	assert.InDelta(t, 0, back.DistTo(x), 1e-12)
}

// TestPose3_Mat4 compares the homogeneous matrix with TransformPoint.
func TestPose3_Mat4(t *testing.T) {
	p := poseP.Compose(poseQ)
	x := vector.New3(3, 1, -2)

	h := p.Mat4().Mul4x1(mgl64.Vec4{x.X, x.Y, x.Z, 1})
	assert.InDelta(t, 0, vector.FromMgl(h.Vec3()).DistTo(p.TransformPoint(x)), 1e-12)
	assert.Equal(t, 1.0, h.W())
}

// TestPose3_DualQuaternion checks the round trip and that the dual quaternion
// product matches Compose.
func TestPose3_DualQuaternion(t *testing.T) {
	for _, p := range []rotation.Pose3{poseP, poseQ, rotation.IdentityPose()} {
		assert.True(t, rotation.PoseFromDualQuaternion(p.DualQuaternion()).EqualWithin(p, 1e-12))
	}

	dq := dualquat.Mul(poseP.DualQuaternion(), poseQ.DualQuaternion())
	assert.True(t, rotation.PoseFromDualQuaternion(dq).EqualWithin(poseP.Compose(poseQ), 1e-12))
}

// TestPose3_ComposeOrientationOrder checks the composed orientation is the
// quaternion q_p·q_b, not the reversed q_b·q_p.
func TestPose3_ComposeOrientationOrder(t *testing.T) {
	qp := poseP.Orientation.Quaternion()
	qq := poseQ.Orientation.Quaternion()
	got := poseP.Compose(poseQ).Orientation.Quaternion()

	assert.True(t, got.SameRotation(qp.Mul(qq), 1e-12))
	assert.False(t, got.SameRotation(qq.Mul(qp), 1e-6))
}

// TestPose3_ZeroValue checks the zero pose is unusable while IdentityPose is neutral.
func TestPose3_ZeroValue(t *testing.T) {
	x := vector.New3(1, 2, 3)

	assert.True(t, rotation.IdentityPose().TransformPoint(x).Equal(x))
	assert.True(t, math.IsNaN(rotation.Pose3{}.TransformPoint(x).X))
}

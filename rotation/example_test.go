package rotation_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgeom/rotation"
	"github.com/katalvlaran/lvgeom/vector"
)

// ExampleRotation3_Scale shows the shorter-arc rule: half of a 270° turn
// about +Z is a 45° turn about -Z.
func ExampleRotation3_Scale() {
	r := rotation.FromAxisAngle(vector.KHat().Scale(3 * math.Pi / 2))
	half := r.Scale(0.5).AxisAngle()
	fmt.Printf("angle=%.4f axis.z=%.1f\n", half.Magnitude(), half.Hat().Z)
	// Output:
	// angle=0.7854 axis.z=-1.0
}

// ExamplePose3_Compose walks one unit along X and turns left, twice.
func ExamplePose3_Compose() {
	step := rotation.NewPose(vector.IHat(), rotation.FromAxisAngle(vector.KHat().Scale(math.Pi/2)))
	p := step.Compose(step)
	fmt.Printf("x=%.1f y=%.1f angle=%.4f\n", p.Position.X, p.Position.Y, p.Orientation.Angle())
	// Output:
	// x=1.0 y=1.0 angle=3.1416
}

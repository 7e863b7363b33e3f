package camera

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/terragen/pkg/math"
)

func near(a, b float32) bool {
	return math32.Abs(a-b) < 0.001
}

func nearVec(a, b math.Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestFlyCameraDefaultsLookDownNegativeZ(t *testing.T) {
	c := NewFlyCamera(math.Vec3{}, 12, 0.003)
	if got := c.Forward(); !nearVec(got, math.Vec3{Z: -1}) {
		t.Errorf("Forward = %v, want (0, 0, -1)", got)
	}
	if got := c.Right(); !nearVec(got, math.Vec3{X: 1}) {
		t.Errorf("Right = %v, want (1, 0, 0)", got)
	}
}

func TestFlyCameraPitchClamp(t *testing.T) {
	c := NewFlyCamera(math.Vec3{}, 12, 0.01)

	c.HandleLook(0, -10000)
	if c.Pitch != DefaultMaxPitch {
		t.Errorf("pitch = %v, want %v", c.Pitch, DefaultMaxPitch)
	}
	c.HandleLook(0, 10000)
	if c.Pitch != -DefaultMaxPitch {
		t.Errorf("pitch = %v, want %v", c.Pitch, -DefaultMaxPitch)
	}
}

func TestFlyCameraRightStaysLevel(t *testing.T) {
	c := NewFlyCamera(math.Vec3{}, 12, 0.01)
	c.HandleLook(37, -80)
	if r := c.Right(); !near(r.Y, 0) {
		t.Errorf("Right = %v, want zero Y component", r)
	}
}

func TestFlyCameraLookAt(t *testing.T) {
	tests := []struct {
		name   string
		target math.Vec3
	}{
		{"ahead", math.Vec3{Z: -5}},
		{"left", math.Vec3{X: -3}},
		{"behind and below", math.Vec3{X: 1, Y: -2, Z: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFlyCamera(math.Vec3{}, 12, 0.003)
			c.LookAt(tt.target)
			if got, want := c.Forward(), tt.target.Normalize(); !nearVec(got, want) {
				t.Errorf("Forward = %v, want %v", got, want)
			}
		})
	}
}

func TestFlyCameraMovement(t *testing.T) {
	c := NewFlyCamera(math.Vec3{}, 10, 0.003)

	c.HandleMovement(1, 0, 0, 0.5)
	if !nearVec(c.Position, math.Vec3{Z: -5}) {
		t.Errorf("after forward: %v, want (0, 0, -5)", c.Position)
	}

	// Diagonal input is normalized so speed stays constant.
	c.Position = math.Vec3{}
	c.HandleMovement(1, 1, 0, 1)
	if d := c.Position.Length(); !near(d, 10) {
		t.Errorf("diagonal distance = %v, want 10", d)
	}

	c.Position = math.Vec3{}
	c.HandleMovement(0, 0, 0, 1)
	if c.Position != (math.Vec3{}) {
		t.Errorf("no input moved camera to %v", c.Position)
	}
}

func TestFlyCameraViewMatrixMovesEyeToOrigin(t *testing.T) {
	c := NewFlyCamera(math.Vec3{X: 4, Y: 2, Z: -1}, 12, 0.003)
	c.HandleLook(100, 40)
	view := c.ViewMatrix()
	if got := view.TransformPoint(c.Position); !nearVec(got, math.Vec3{}) {
		t.Errorf("eye in view space = %v, want origin", got)
	}
}

func TestOrbitCameraClamps(t *testing.T) {
	c := NewOrbitCamera()

	c.HandleDrag(0, 100000)
	if c.RotationX != c.MaxPitch {
		t.Errorf("pitch = %v, want %v", c.RotationX, c.MaxPitch)
	}
	c.HandleZoom(-1000)
	if c.Distance != c.MaxDistance {
		t.Errorf("distance = %v, want %v", c.Distance, c.MaxDistance)
	}
	c.HandleZoom(1000)
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %v, want %v", c.Distance, c.MinDistance)
	}
}

func TestOrbitCameraFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds(math.Vec3{X: 0, Y: -1, Z: 0}, math.Vec3{X: 10, Y: 3, Z: 10})

	if !nearVec(c.Center, math.Vec3{X: 5, Y: 1, Z: 5}) {
		t.Errorf("center = %v, want (5, 1, 5)", c.Center)
	}
	if !near(c.Position().Distance(c.Center), c.Distance) {
		t.Errorf("position is %v from center, want %v", c.Position().Distance(c.Center), c.Distance)
	}

	before := c.RotationY
	c.Advance(2)
	if c.RotationY <= before {
		t.Error("Advance should spin the camera")
	}
}

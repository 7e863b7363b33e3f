package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestQuatNormalize(t *testing.T) {
	n := Quat{X: 1, Y: 2, Z: 3, W: 4}.Normalize()
	l := math32.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)
	if !near(l, 1) {
		t.Errorf("normalized length = %v, want 1", l)
	}
	if got := (Quat{}).Normalize(); got != QuatIdentity() {
		t.Errorf("zero quaternion should normalize to identity, got %v", got)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(Up, math32.Pi/2)
	if !near(q.W, math32.Cos(math32.Pi/4)) || !near(q.Y, math32.Sin(math32.Pi/4)) {
		t.Errorf("unexpected quaternion %v", q)
	}
}

func TestQuatRotate(t *testing.T) {
	tests := []struct {
		name string
		q    Quat
		in   Vec3
		want Vec3
	}{
		{"identity", QuatIdentity(), Vec3{1, 2, 3}, Vec3{1, 2, 3}},
		{"yaw left", QuatFromAxisAngle(Up, math32.Pi/2), Vec3{0, 0, -1}, Vec3{-1, 0, 0}},
		{"pitch up", QuatFromAxisAngle(Vec3{1, 0, 0}, math32.Pi/2), Vec3{0, 0, -1}, Vec3{0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Rotate(tt.in); !nearVec(got, tt.want) {
				t.Errorf("Rotate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuatMulOrder(t *testing.T) {
	yaw := QuatFromAxisAngle(Up, math32.Pi/2)
	pitch := QuatFromAxisAngle(Vec3{1, 0, 0}, math32.Pi/4)
	q := yaw.Mul(pitch)

	want := yaw.Rotate(pitch.Rotate(Vec3{0, 0, -1}))
	if got := q.Rotate(Vec3{0, 0, -1}); !nearVec(got, want) {
		t.Errorf("(yaw*pitch).Rotate = %v, want %v", got, want)
	}
}

func TestQuatToMat4MatchesRotate(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{1, 1, 0}.Normalize(), 1.1)
	v := Vec3{0.3, -2, 5}
	if got, want := q.ToMat4().TransformPoint(v), q.Rotate(v); !nearVec(got, want) {
		t.Errorf("ToMat4 = %v, Rotate = %v", got, want)
	}
	if QuatIdentity().ToMat4() != Identity() {
		t.Error("identity quaternion should produce identity matrix")
	}
}

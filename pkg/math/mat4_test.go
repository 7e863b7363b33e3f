package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	if got := m.Mul(Identity()); got != m {
		t.Errorf("M * I = %v, want %v", got, m)
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		want Vec3
	}{
		{"translate", Translate(10, 20, 30), Vec3{11, 22, 33}},
		{"scale", Scale(2, 2, 2), Vec3{2, 4, 6}},
		{"scale then translate", Translate(1, 0, 0).Mul(Scale(2, 2, 2)), Vec3{3, 4, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(Vec3{1, 2, 3}); got != tt.want {
				t.Errorf("TransformPoint = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(math32.Pi/4, 1, 0.1, 100)
	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero scale elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestOrthoMapsCorners(t *testing.T) {
	m := Ortho(0, 800, 600, 0, -1, 1)
	if got := m.TransformPoint(Vec3{0, 0, 0}); !nearVec(got, Vec3{-1, 1, 0}) {
		t.Errorf("top-left = %v, want (-1, 1, 0)", got)
	}
	if got := m.TransformPoint(Vec3{800, 600, 0}); !nearVec(got, Vec3{1, -1, 0}) {
		t.Errorf("bottom-right = %v, want (1, -1, 0)", got)
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{3, 4, 5}
	m := LookAt(eye, Vec3{}, Up)

	if got := m.TransformPoint(eye); !nearVec(got, Vec3{}) {
		t.Errorf("eye in view space = %v, want origin", got)
	}
	// The target lies straight down -Z.
	got := m.TransformPoint(Vec3{})
	if !near(got.X, 0) || !near(got.Y, 0) || got.Z >= 0 {
		t.Errorf("target in view space = %v, want (0, 0, -d)", got)
	}
}

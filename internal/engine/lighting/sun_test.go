package lighting

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/terragen/pkg/math"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float32
		want     math.Vec3
	}{
		{"overhead", 0, 90, math.Vec3{Y: 1}},
		{"horizon south", 0, 0, math.Vec3{Z: 1}},
		{"horizon east", 90, 0, math.Vec3{X: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.lon, tt.lat)
			if got.Distance(tt.want) > 0.001 {
				t.Errorf("SunDirection(%v, %v) = %v, want %v", tt.lon, tt.lat, got, tt.want)
			}
			if l := got.Length(); math32.Abs(l-1) > 0.001 {
				t.Errorf("length = %v, want 1", l)
			}
		})
	}
}

func TestLightDirectionPointsDown(t *testing.T) {
	if d := LightDirection(30, 45); d.Y >= 0 {
		t.Errorf("light from above should travel down, got %v", d)
	}
}

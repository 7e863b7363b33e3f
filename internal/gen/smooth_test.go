package gen

import (
	"errors"
	"testing"

	"github.com/Faultbox/terragen/internal/heightmap"
)

func TestSmoothIsDoubleBuffered(t *testing.T) {
	hf := heightmap.New(4)
	hf.PointSet(2, 2, 8)

	if err := Smooth(hf, Full(hf)); err != nil {
		t.Fatalf("Smooth: %v", err)
	}

	tests := []struct {
		x, y int
		want float32
	}{
		{2, 2, 0}, // the spike only sees its zero neighbours
		{1, 1, 1},
		{3, 3, 1},
		{1, 3, 1},
		{3, 1, 1},
		{2, 1, 1},
		{0, 0, 0},
		{4, 4, 0},
	}
	for _, tt := range tests {
		if v, _ := hf.Get(tt.x, tt.y); v != tt.want {
			t.Errorf("(%d,%d) = %f, want %f", tt.x, tt.y, v, tt.want)
		}
	}
}

func TestSmoothEdgeAverage(t *testing.T) {
	hf := heightmap.New(2)
	hf.PointSet(1, 0, 3)
	hf.PointSet(0, 1, 6)
	hf.PointSet(1, 1, 9)

	if err := Smooth(hf, Rect{Right: 0, Bottom: 0}); err != nil {
		t.Fatalf("Smooth: %v", err)
	}
	// Clamped at the origin: (0,0) three times, (1,0) and (0,1) twice, (1,1)
	// once, so (0 + 6 + 12 + 9) / 8.
	if v, _ := hf.Get(0, 0); v != 3.375 {
		t.Errorf("corner should average its clamped neighbours to 3.375, got %f", v)
	}
	if v, _ := hf.Get(1, 1); v != 9 {
		t.Errorf("cells outside the region must not change, got %f", v)
	}
}

func TestSmoothRegionOutside(t *testing.T) {
	hf := heightmap.New(2)
	if err := Smooth(hf, Rect{Left: -1, Right: 2, Bottom: 2}); !errors.Is(err, ErrRegion) {
		t.Errorf("expected ErrRegion, got %v", err)
	}
}

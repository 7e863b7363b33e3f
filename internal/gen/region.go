package gen

import (
	"errors"
	"fmt"

	"github.com/Faultbox/terragen/internal/heightmap"
)

// ErrRegion is returned when a region does not fit inside the field.
var ErrRegion = errors.New("region outside heightmap")

// Rect is an inclusive rectangle of grid coordinates.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Full returns the rectangle covering every sample of hf.
func Full(hf *heightmap.HeightField) Rect {
	last := hf.Edge() - 1
	return Rect{Right: last, Bottom: last}
}

// Width is the span in cells, not samples.
func (r Rect) Width() int { return r.Right - r.Left }

// Height is the span in cells, not samples.
func (r Rect) Height() int { return r.Bottom - r.Top }

func (r Rect) check(hf *heightmap.HeightField) error {
	if r.Width() < 0 || r.Height() < 0 ||
		!hf.InBounds(r.Left, r.Top) || !hf.InBounds(r.Right, r.Bottom) {
		return fmt.Errorf("%w: %+v on edge %d", ErrRegion, r, hf.Edge())
	}
	return nil
}

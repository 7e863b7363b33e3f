// Package heightmap provides the square elevation grid that generation stages
// mutate and the mesh builder consumes.
package heightmap

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is matched (via errors.Is) by every coordinate error.
var ErrOutOfBounds = errors.New("out of bounds")

// OutOfBoundsError describes a rejected coordinate.
type OutOfBoundsError struct {
	X, Y int
	Edge int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("out of bounds: (%d, %d) outside edge %d", e.X, e.Y, e.Edge)
}

// Unwrap lets errors.Is match ErrOutOfBounds.
func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// Coord is a grid coordinate.
type Coord struct {
	X, Y int
}

// HeightField is a row-major (edge x edge) grid of elevations with running
// min/max bounds. The bounds start at 0 and only ever widen.
type HeightField struct {
	data []float32
	edge int
	max  float32
	min  float32
}

// New creates a zeroed field for a grid of unitCount cells per side, which
// has unitCount+1 samples per side.
func New(unitCount int) *HeightField {
	if unitCount < 0 {
		unitCount = 0
	}
	edge := unitCount + 1
	return &HeightField{
		data: make([]float32, edge*edge),
		edge: edge,
	}
}

// Edge returns the number of samples per side.
func (h *HeightField) Edge() int { return h.edge }

// Len returns the number of samples.
func (h *HeightField) Len() int { return len(h.data) }

// Max returns the running maximum.
func (h *HeightField) Max() float32 { return h.max }

// Min returns the running minimum.
func (h *HeightField) Min() float32 { return h.min }

// InBounds reports whether (x, y) addresses a sample.
func (h *HeightField) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < h.edge && y < h.edge
}

func (h *HeightField) check(x, y int) error {
	if !h.InBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y, Edge: h.edge}
	}
	return nil
}

func (h *HeightField) index(x, y int) int {
	return y*h.edge + x
}

// Get returns the value at (x, y).
func (h *HeightField) Get(x, y int) (float32, error) {
	if err := h.check(x, y); err != nil {
		return 0, err
	}
	return h.data[h.index(x, y)], nil
}

// GetIgnore is Get with out-of-bounds reads returning 0.
func (h *HeightField) GetIgnore(x, y int) float32 {
	if !h.InBounds(x, y) {
		return 0
	}
	return h.data[h.index(x, y)]
}

// GetNormalized maps the value at (x, y) into [0, 1] using the running bounds.
// A flat field (max == min) normalizes to 0 rather than NaN.
func (h *HeightField) GetNormalized(x, y int) (float32, error) {
	v, err := h.Get(x, y)
	if err != nil {
		return 0, err
	}
	return h.normalize(v), nil
}

func (h *HeightField) normalize(v float32) float32 {
	span := h.max - h.min
	if span == 0 {
		return 0
	}
	return (v - h.min) / span
}

// PointSet overwrites the value at (x, y).
func (h *HeightField) PointSet(x, y int, v float32) error {
	if err := h.check(x, y); err != nil {
		return err
	}
	h.store(h.index(x, y), v)
	return nil
}

// PointRaise adds delta to the value at (x, y). Out-of-bounds coordinates are
// ignored; use PointRaiseStrict to surface them.
func (h *HeightField) PointRaise(x, y int, delta float32) {
	if !h.InBounds(x, y) {
		return
	}
	i := h.index(x, y)
	h.store(i, h.data[i]+delta)
}

// PointRaiseStrict is PointRaise that reports out-of-bounds coordinates.
func (h *HeightField) PointRaiseStrict(x, y int, delta float32) error {
	if err := h.check(x, y); err != nil {
		return err
	}
	i := h.index(x, y)
	h.store(i, h.data[i]+delta)
	return nil
}

func (h *HeightField) store(i int, v float32) {
	if v > h.max {
		h.max = v
	}
	if v < h.min {
		h.min = v
	}
	h.data[i] = v
}

// Snapshot returns a deep copy.
func (h *HeightField) Snapshot() *HeightField {
	c := *h
	c.data = make([]float32, len(h.data))
	copy(c.data, h.data)
	return &c
}

// Package terrain turns a finished heightmap into a renderable triangle mesh.
package terrain

import "errors"

// ErrInvalidSize is returned for a non-positive grid size or negative spacing.
var ErrInvalidSize = errors.New("invalid terrain size")

// Settings fixes the mesh dimensions. They must match the heightmap the mesh
// is built from.
type Settings struct {
	Size        int     // Grid edge cell count; the mesh has Size+1 vertices per side
	UnitSize    float32 // World spacing between neighbouring vertices
	HeightScale float32 // Multiplier applied to heights on top of UnitSize
}

// Mesh holds the terrain mesh data ready for GPU upload. Positions, Normals
// and UVs share one row-major index: vertex (cx, cy) is at cy*(Size+1)+cx.
type Mesh struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Indices   []uint32
	Bounds    Bounds

	Size     int
	UnitSize float32

	// Degenerate counts triangles whose face normal was too short to
	// normalize and fell back to straight up.
	Degenerate int
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the midpoint of the box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Positions) }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Interleaved packs position, normal and UV per vertex, eight floats each,
// in the layout the terrain shader expects.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Positions)*8)
	for i, p := range m.Positions {
		n := m.Normals[i]
		uv := m.UVs[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
	}
	return out
}

package terrain

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/terragen/internal/heightmap"
)

// DegenerateEpsilon is the shortest face normal that is still normalized.
// Anything shorter is replaced by (0, 1, 0) and counted in Mesh.Degenerate.
const DegenerateEpsilon = 0.0001

// BuildMesh creates a terrain mesh from a heightmap with s.Size+1 samples
// per side.
//
// Every cell is split along the same diagonal, top-right to bottom-left,
// into triangles (tl, bl, tr) and (tr, bl, br). Both wind counter-clockwise
// seen from +Y. Vertex normals take the face normal of the last triangle
// that touches them; they are not averaged.
func BuildMesh(hf *heightmap.HeightField, s Settings) (*Mesh, error) {
	if s.Size <= 0 || s.UnitSize < 0 {
		return nil, fmt.Errorf("%w: size %d, unit size %v", ErrInvalidSize, s.Size, s.UnitSize)
	}

	edge := s.Size + 1
	count := edge * edge
	m := &Mesh{
		Positions: make([][3]float32, count),
		Normals:   make([][3]float32, count),
		UVs:       make([][2]float32, count),
		Indices:   make([]uint32, 0, s.Size*s.Size*6),
		Size:      s.Size,
		UnitSize:  s.UnitSize,
		Bounds: Bounds{
			Min: [3]float32{1e10, 1e10, 1e10},
			Max: [3]float32{-1e10, -1e10, -1e10},
		},
	}

	for cy := range edge {
		for cx := range edge {
			h, err := hf.Get(cx, cy)
			if err != nil {
				return nil, fmt.Errorf("vertex (%d, %d): %w", cx, cy, err)
			}
			i := cy*edge + cx
			m.Positions[i] = [3]float32{
				float32(cx) * s.UnitSize,
				h * s.UnitSize * s.HeightScale,
				float32(cy) * s.UnitSize,
			}
			m.UVs[i] = [2]float32{float32(cx) / float32(s.Size), float32(cy) / float32(s.Size)}
			updateBounds(&m.Bounds, m.Positions[i])
		}
	}

	for cy := range s.Size {
		for cx := range s.Size {
			tl := uint32(cy*edge + cx)
			tr := tl + 1
			bl := tl + uint32(edge)
			br := bl + 1
			m.addTriangle(tl, bl, tr)
			m.addTriangle(tr, bl, br)
		}
	}

	return m, nil
}

func (m *Mesh) addTriangle(a, b, c uint32) {
	n, ok := faceNormal(m.Positions[a], m.Positions[b], m.Positions[c])
	if !ok {
		m.Degenerate++
	}
	m.Normals[a] = n
	m.Normals[b] = n
	m.Normals[c] = n
	m.Indices = append(m.Indices, a, b, c)
}

// faceNormal returns the unit normal of triangle (p0, p1, p2), or (0, 1, 0)
// and false when the triangle has no usable area.
func faceNormal(p0, p1, p2 [3]float32) ([3]float32, bool) {
	edge1 := sub(p1, p0)
	edge2 := sub(p2, p0)
	return normalize(cross(edge1, edge2))
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		b.Min[i] = math32.Min(b.Min[i], p[i])
		b.Max[i] = math32.Max(b.Max[i], p[i])
	}
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v [3]float32) ([3]float32, bool) {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l < DegenerateEpsilon {
		return [3]float32{0, 1, 0}, false
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}, true
}

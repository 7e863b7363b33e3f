package terrain

// HeightAt returns the bilinearly interpolated surface height at a world
// position. Positions outside the mesh are clamped to its border.
func (m *Mesh) HeightAt(worldX, worldZ float32) float32 {
	if len(m.Positions) == 0 {
		return 0
	}
	if m.UnitSize == 0 {
		return m.Positions[0][1]
	}

	fx := clampf(worldX/m.UnitSize, 0, float32(m.Size))
	fz := clampf(worldZ/m.UnitSize, 0, float32(m.Size))

	cx := min(int(fx), m.Size-1)
	cz := min(int(fz), m.Size-1)
	fracX := fx - float32(cx)
	fracZ := fz - float32(cz)

	edge := m.Size + 1
	tl := m.Positions[cz*edge+cx][1]
	tr := m.Positions[cz*edge+cx+1][1]
	bl := m.Positions[(cz+1)*edge+cx][1]
	br := m.Positions[(cz+1)*edge+cx+1][1]

	near := tl*(1-fracX) + tr*fracX
	far := bl*(1-fracX) + br*fracX
	return near*(1-fracZ) + far*fracZ
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

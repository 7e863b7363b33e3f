// Package water provides water plane geometry.
package water

// DefaultPadding extends the plane past the terrain edge, as a fraction of
// the terrain's larger side.
const DefaultPadding = 0.25

// Level places the water line at fraction of the height range [minY, maxY].
func Level(minY, maxY, fraction float32) float32 {
	return minY + (maxY-minY)*fraction
}

// Plane returns two triangles (x, y, z per vertex) covering the XZ rectangle
// grown by padding times its larger side, at height y. Both triangles wind
// counter-clockwise seen from above.
func Plane(minX, maxX, minZ, maxZ, y, padding float32) []float32 {
	pad := max(maxX-minX, maxZ-minZ) * padding
	minX, maxX = minX-pad, maxX+pad
	minZ, maxZ = minZ-pad, maxZ+pad

	return []float32{
		minX, y, minZ,
		minX, y, maxZ,
		maxX, y, minZ,
		maxX, y, minZ,
		minX, y, maxZ,
		maxX, y, maxZ,
	}
}

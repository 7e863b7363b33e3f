// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/terragen/pkg/math"
)

// SunDirection converts a sun position to a unit vector pointing towards the
// sun. Longitude rotates about Y from +Z; latitude is elevation above the
// horizon. Both are in degrees.
func SunDirection(longitude, latitude float32) math.Vec3 {
	lon := longitude * math32.Pi / 180
	lat := latitude * math32.Pi / 180

	sinLon, cosLon := math32.Sincos(lon)
	sinLat, cosLat := math32.Sincos(lat)
	return math.Vec3{X: cosLat * sinLon, Y: sinLat, Z: cosLat * cosLon}
}

// LightDirection is the direction sunlight travels, as the terrain shader
// expects it.
func LightDirection(longitude, latitude float32) math.Vec3 {
	return SunDirection(longitude, latitude).Scale(-1)
}

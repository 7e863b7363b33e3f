package heightmap

import (
	"image"

	"github.com/chewxy/math32"
)

// Water tint applied to cells at or below the water line. Grey is scaled into
// the low half of each channel so deeper cells stay darker.
const (
	waterR = 0.15
	waterG = 0.35
	waterB = 0.85
)

// ConvertToRGBA renders the field as a row-major RGBA buffer, four bytes per
// sample. Land is a grey ramp of normalized height. Samples whose world height
// (value * heightScale) is at or below waterHeight get a blue tint that keeps
// the same ramp.
func (h *HeightField) ConvertToRGBA(heightScale, waterHeight float32) []byte {
	out := make([]byte, 4*len(h.data))
	for i, v := range h.data {
		g := h.normalize(v)
		o := out[i*4 : i*4+4 : i*4+4]
		if v*heightScale <= waterHeight {
			o[0] = channel(g * waterR)
			o[1] = channel(g * waterG)
			o[2] = channel(0.25 + g*waterB*0.75)
		} else {
			c := channel(g)
			o[0], o[1], o[2] = c, c, c
		}
		o[3] = 0xff
	}
	return out
}

// ToImage wraps ConvertToRGBA in an image for texture upload.
func (h *HeightField) ToImage(heightScale, waterHeight float32) *image.RGBA {
	return &image.RGBA{
		Pix:    h.ConvertToRGBA(heightScale, waterHeight),
		Stride: 4 * h.edge,
		Rect:   image.Rect(0, 0, h.edge, h.edge),
	}
}

func channel(f float32) byte {
	return byte(math32.Floor(clamp01(f)*255 + 0.5))
}

func clamp01(f float32) float32 {
	return math32.Max(0, math32.Min(1, f))
}

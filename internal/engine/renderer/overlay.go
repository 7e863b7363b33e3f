package renderer

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/terragen/internal/engine/shader"
	"github.com/Faultbox/terragen/pkg/math"
)

// Rect is a screen rectangle in pixels, origin top-left.
type Rect struct {
	X, Y, W, H float32
}

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

var (
	ColorBarBackground = Color{0.1, 0.1, 0.12, 0.85}
	ColorBarFill       = Color{0.35, 0.75, 0.4, 1}
	ColorWhite         = Color{1, 1, 1, 1}
)

type overlayPass struct {
	program uint32

	locProjection int32
	locRect       int32
	locColor      int32
	locUseTexture int32
	locTexture    int32

	vao, vbo uint32
	preview  uint32
	hasImage bool
}

func (p *overlayPass) init() {
	p.locProjection = shader.GetUniform(p.program, "uProjection")
	p.locRect = shader.GetUniform(p.program, "uRect")
	p.locColor = shader.GetUniform(p.program, "uColor")
	p.locUseTexture = shader.GetUniform(p.program, "uUseTexture")
	p.locTexture = shader.GetUniform(p.program, "uTexture")

	// Unit quad: position, uv
	vertices := []float32{
		0, 0, 0, 0,
		0, 1, 0, 1,
		1, 0, 1, 0,
		1, 0, 1, 0,
		0, 1, 0, 1,
		1, 1, 1, 1,
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// UploadPreview replaces the overlay preview texture.
func (r *Renderer) UploadPreview(img *image.RGBA) {
	p := &r.overlay
	if img == nil || len(img.Pix) == 0 {
		return
	}
	if p.preview == 0 {
		gl.GenTextures(1, &p.preview)
	}

	gl.BindTexture(gl.TEXTURE_2D, p.preview)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	p.hasImage = true
}

// DrawRect fills a screen rectangle.
func (r *Renderer) DrawRect(rect Rect, color Color) {
	r.drawQuad(rect, color, false)
}

// DrawPreview draws the last uploaded preview image into rect.
func (r *Renderer) DrawPreview(rect Rect) {
	if !r.overlay.hasImage {
		return
	}
	r.drawQuad(rect, ColorWhite, true)
}

// DrawProgress draws a horizontal progress bar for fraction in [0, 1].
func (r *Renderer) DrawProgress(fraction float32) {
	bg, fill := progressRects(r.config.Width, r.config.Height, fraction)
	r.DrawRect(bg, ColorBarBackground)
	if fill.W > 0 {
		r.DrawRect(fill, ColorBarFill)
	}
}

func (r *Renderer) drawQuad(rect Rect, color Color, textured bool) {
	p := &r.overlay

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(p.program)
	proj := math.Ortho(0, float32(r.config.Width), float32(r.config.Height), 0, -1, 1)
	gl.UniformMatrix4fv(p.locProjection, 1, false, proj.Ptr())
	gl.Uniform4f(p.locRect, rect.X, rect.Y, rect.W, rect.H)
	gl.Uniform4f(p.locColor, color[0], color[1], color[2], color[3])

	if textured {
		gl.Uniform1i(p.locUseTexture, 1)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, p.preview)
		gl.Uniform1i(p.locTexture, 0)
	} else {
		gl.Uniform1i(p.locUseTexture, 0)
	}

	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func (p *overlayPass) destroy() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
		p.vbo = 0
	}
	if p.preview != 0 {
		gl.DeleteTextures(1, &p.preview)
		p.preview = 0
	}
	p.hasImage = false
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}

// progressRects lays out a bar across the middle of the lower third of the
// viewport and its fill for fraction, clamped to [0, 1].
func progressRects(width, height int, fraction float32) (bg, fill Rect) {
	w := float32(width) * 0.6
	h := max(float32(height)*0.03, 8)
	bg = Rect{
		X: (float32(width) - w) / 2,
		Y: float32(height) * 0.75,
		W: w,
		H: h,
	}

	const inset = 2
	fraction = min(max(fraction, 0), 1)
	fill = Rect{
		X: bg.X + inset,
		Y: bg.Y + inset,
		W: (bg.W - 2*inset) * fraction,
		H: bg.H - 2*inset,
	}
	return bg, fill
}

// PreviewRect returns a centered square for the heightmap preview above the
// progress bar.
func PreviewRect(width, height int) Rect {
	side := min(float32(width), float32(height)) * 0.5
	return Rect{
		X: (float32(width) - side) / 2,
		Y: float32(height)*0.7 - side,
		W: side,
		H: side,
	}
}

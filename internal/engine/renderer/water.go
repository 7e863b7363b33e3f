package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/terragen/internal/engine/shader"
	"github.com/Faultbox/terragen/internal/engine/water"
	"github.com/Faultbox/terragen/internal/terrain"
	"github.com/Faultbox/terragen/pkg/math"
)

type waterPass struct {
	program uint32

	locViewProj   int32
	locWaterColor int32

	vao, vbo uint32
}

func (p *waterPass) locate() {
	p.locViewProj = shader.GetUniform(p.program, "uViewProj")
	p.locWaterColor = shader.GetUniform(p.program, "uWaterColor")
}

func (p *waterPass) upload(b terrain.Bounds, y float32) {
	p.destroyBuffers()

	vertices := water.Plane(b.Min[0], b.Max[0], b.Min[2], b.Max[2], y, water.DefaultPadding)

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
}

func (p *waterPass) draw(viewProj math.Mat4, color [4]float32) {
	if p.vao == 0 {
		return
	}

	gl.UseProgram(p.program)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)

	gl.UniformMatrix4fv(p.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform4f(p.locWaterColor, color[0], color[1], color[2], color[3])

	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

func (p *waterPass) destroyBuffers() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
		p.vbo = 0
	}
}

func (p *waterPass) destroy() {
	p.destroyBuffers()
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}

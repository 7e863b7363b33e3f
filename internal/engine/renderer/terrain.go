package renderer

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/engine/shader"
	"github.com/Faultbox/terragen/internal/engine/water"
	"github.com/Faultbox/terragen/internal/logger"
	"github.com/Faultbox/terragen/internal/terrain"
	"github.com/Faultbox/terragen/pkg/math"
)

// ErrEmptyMesh is returned when uploading a mesh with no triangles.
var ErrEmptyMesh = errors.New("mesh has no triangles")

// vertexStride is the byte size of one interleaved vertex: position, normal, uv.
const vertexStride = 8 * 4

type terrainPass struct {
	program uint32

	locViewProj   int32
	locLightDir   int32
	locMinHeight  int32
	locMaxHeight  int32
	locWaterLevel int32
	locWireframe  int32

	vao, vbo, ebo uint32
	indexCount    int32

	minHeight  float32
	maxHeight  float32
	waterLevel float32
}

func (p *terrainPass) locate() {
	p.locViewProj = shader.GetUniform(p.program, "uViewProj")
	p.locLightDir = shader.GetUniform(p.program, "uLightDir")
	p.locMinHeight = shader.GetUniform(p.program, "uMinHeight")
	p.locMaxHeight = shader.GetUniform(p.program, "uMaxHeight")
	p.locWaterLevel = shader.GetUniform(p.program, "uWaterLevel")
	p.locWireframe = shader.GetUniform(p.program, "uWireframe")
}

// UploadTerrain replaces the GPU copy of the terrain mesh. waterFraction is
// the water line as a fraction of the mesh's height range.
func (r *Renderer) UploadTerrain(mesh *terrain.Mesh, waterFraction float32) error {
	if mesh == nil || len(mesh.Indices) == 0 {
		return ErrEmptyMesh
	}

	p := &r.terrain
	p.destroyBuffers()

	vertices := mesh.Interleaved()

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &p.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	p.indexCount = int32(len(mesh.Indices))
	p.minHeight = mesh.Bounds.Min[1]
	p.maxHeight = mesh.Bounds.Max[1]
	p.waterLevel = water.Level(mesh.Bounds.Min[1], mesh.Bounds.Max[1], waterFraction)

	r.water.upload(mesh.Bounds, p.waterLevel)

	logger.Debug("terrain uploaded",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Float32("water_y", p.waterLevel),
	)
	return nil
}

// HasTerrain reports whether a mesh is uploaded.
func (r *Renderer) HasTerrain() bool {
	return r.terrain.vao != 0
}

// DrawTerrain draws the uploaded mesh and its water plane.
func (r *Renderer) DrawTerrain(viewProj math.Mat4, wireframe bool) {
	p := &r.terrain
	if p.vao == 0 {
		return
	}

	gl.UseProgram(p.program)
	gl.UniformMatrix4fv(p.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform3f(p.locLightDir, r.LightDir.X, r.LightDir.Y, r.LightDir.Z)
	gl.Uniform1f(p.locMinHeight, p.minHeight)
	gl.Uniform1f(p.locMaxHeight, p.maxHeight)
	gl.Uniform1f(p.locWaterLevel, p.waterLevel)

	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		gl.Uniform1i(p.locWireframe, 1)
	} else {
		gl.Uniform1i(p.locWireframe, 0)
	}

	gl.BindVertexArray(p.vao)
	gl.DrawElements(gl.TRIANGLES, p.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		return
	}
	r.water.draw(viewProj, r.WaterColor)
}

// ClearTerrain drops the uploaded mesh.
func (r *Renderer) ClearTerrain() {
	r.terrain.destroyBuffers()
	r.water.destroyBuffers()
}

func (p *terrainPass) destroyBuffers() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
		p.vbo = 0
	}
	if p.ebo != 0 {
		gl.DeleteBuffers(1, &p.ebo)
		p.ebo = 0
	}
	p.indexCount = 0
}

func (p *terrainPass) destroy() {
	p.destroyBuffers()
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}

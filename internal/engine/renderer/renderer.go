// Package renderer draws the generated terrain, its water plane and the
// screen-space overlay (progress bar, heightmap preview) with OpenGL 4.1.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/engine/renderer/shaders"
	"github.com/Faultbox/terragen/internal/engine/shader"
	"github.com/Faultbox/terragen/internal/logger"
	"github.com/Faultbox/terragen/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	FovY   float32 // Vertical field of view in radians
	Near   float32
	Far    float32
}

// DefaultConfig returns a renderer configuration for the given viewport.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:  width,
		Height: height,
		FovY:   1.0,
		Near:   0.1,
		Far:    2000,
	}
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	LightDir   math.Vec3
	WaterColor [4]float32

	terrain terrainPass
	water   waterPass
	overlay overlayPass
}

// New creates a new renderer.
// It must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:     cfg,
		LightDir:   math.Vec3{X: -0.4, Y: -1, Z: -0.3}.Normalize(),
		WaterColor: [4]float32{0.2, 0.4, 0.6, 0.7},
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.53, 0.68, 0.85, 1.0)

	var err error
	if r.terrain.program, err = shader.CompileProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader); err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	r.terrain.locate()

	if r.water.program, err = shader.CompileProgram(shaders.WaterVertexShader, shaders.WaterFragmentShader); err != nil {
		r.Close()
		return nil, fmt.Errorf("water shader: %w", err)
	}
	r.water.locate()

	if r.overlay.program, err = shader.CompileProgram(shaders.OverlayVertexShader, shaders.OverlayFragmentShader); err != nil {
		r.Close()
		return nil, fmt.Errorf("overlay shader: %w", err)
	}
	r.overlay.init()

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close releases all GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.terrain.destroy()
	r.water.destroy()
	r.overlay.destroy()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Projection returns the perspective projection for the current viewport.
func (r *Renderer) Projection() math.Mat4 {
	return math.Perspective(r.config.FovY, aspect(r.config.Width, r.config.Height), r.config.Near, r.config.Far)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// ReadPixels returns the back buffer as RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

func aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

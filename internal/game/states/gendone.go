package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/engine/camera"
	"github.com/Faultbox/terragen/internal/logger"
	"github.com/Faultbox/terragen/internal/terrain"
	"github.com/Faultbox/terragen/pkg/math"
)

// GenDoneState shows the finished terrain from a slowly orbiting camera.
type GenDoneState struct {
	ctx *Context

	Orbit *camera.OrbitCamera
}

// NewGenDoneState creates the generation-done state.
func NewGenDoneState(ctx *Context) *GenDoneState {
	return &GenDoneState{ctx: ctx, Orbit: camera.NewOrbitCamera()}
}

// Enter is called when entering this state.
func (s *GenDoneState) Enter() error {
	mesh := s.ctx.Pipeline.Mesh()
	if mesh == nil {
		return ErrNoMesh
	}
	s.Orbit.FitToBounds(math.V3(mesh.Bounds.Min), math.V3(mesh.Bounds.Max))
	logger.Info("entering GenDoneState",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("degenerate", mesh.Degenerate))
	return nil
}

// Exit is called when leaving this state.
func (s *GenDoneState) Exit() error { return nil }

// Update spins the preview camera.
func (s *GenDoneState) Update(dt float64) error {
	s.Orbit.Advance(float32(dt))
	return nil
}

// Render is called every frame.
func (s *GenDoneState) Render() error { return nil }

// HandleInput processes input events.
func (s *GenDoneState) HandleInput(event any) error {
	switch event {
	case ActionConfirm:
		s.Play()
	case ActionNewSeed:
		s.NewSeed()
	case ActionBack:
		s.ctx.Manager.Change(NewMenuState(s.ctx))
	case ActionToggleWireframe:
		s.ctx.Wireframe = !s.ctx.Wireframe
	}
	return nil
}

// Percent is always 100 once generation is done.
func (s *GenDoneState) Percent() float32 {
	return s.ctx.Pipeline.Percent()
}

// Mesh returns the finished mesh.
func (s *GenDoneState) Mesh() *terrain.Mesh {
	return s.ctx.Pipeline.Mesh()
}

// Play enters the in-game fly-through.
func (s *GenDoneState) Play() {
	s.ctx.Manager.Change(NewInGameState(s.ctx))
}

// NewSeed discards the terrain and returns to the menu on a fresh seed.
func (s *GenDoneState) NewSeed() {
	s.ctx.Pipeline.NewSeed()
	s.ctx.Manager.Change(NewMenuState(s.ctx))
}

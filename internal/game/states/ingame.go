package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/engine/camera"
	"github.com/Faultbox/terragen/internal/logger"
	"github.com/Faultbox/terragen/internal/terrain"
	"github.com/Faultbox/terragen/pkg/math"
)

// EyeHeight is the minimum distance kept between the camera and the ground.
const EyeHeight = 0.5

// InGameState flies a free camera over the finished terrain.
type InGameState struct {
	ctx *Context

	Camera       *camera.FlyCamera
	CursorLocked bool

	mesh     *terrain.Mesh
	controls Controls
}

// NewInGameState creates the in-game state.
func NewInGameState(ctx *Context) *InGameState {
	return &InGameState{ctx: ctx}
}

// Enter places the camera off the terrain's corner looking at its center.
func (s *InGameState) Enter() error {
	s.mesh = s.ctx.Pipeline.Mesh()
	if s.mesh == nil {
		return ErrNoMesh
	}

	minB, maxB := math.V3(s.mesh.Bounds.Min), math.V3(s.mesh.Bounds.Max)
	center := minB.Lerp(maxB, 0.5)
	size := max(maxB.X-minB.X, maxB.Z-minB.Z)

	start := math.Vec3{X: minB.X - size*0.1, Y: maxB.Y + size*0.1, Z: maxB.Z + size*0.1}
	s.Camera = camera.NewFlyCamera(start, s.ctx.Camera.MoveSpeed, s.ctx.Camera.MouseSensitivity)
	s.Camera.LookAt(center)
	s.keepAboveGround()

	s.CursorLocked = true
	logger.Info("entering InGameState", zap.Float32("x", start.X), zap.Float32("y", start.Y), zap.Float32("z", start.Z))
	return nil
}

// Exit releases the cursor.
func (s *InGameState) Exit() error {
	s.CursorLocked = false
	return nil
}

// Update applies this frame's controls to the camera.
func (s *InGameState) Update(dt float64) error {
	c := s.controls
	s.controls = Controls{}

	if s.CursorLocked {
		s.Camera.HandleLook(c.LookX, c.LookY)
	}
	s.Camera.HandleMovement(c.Forward, c.Right, c.Up, float32(dt))
	s.keepAboveGround()
	return nil
}

func (s *InGameState) keepAboveGround() {
	p := &s.Camera.Position
	if floor := s.mesh.HeightAt(p.X, p.Z) + EyeHeight; p.Y < floor {
		p.Y = floor
	}
}

// Render is called every frame.
func (s *InGameState) Render() error { return nil }

// HandleInput processes input events. Back first releases a grabbed cursor,
// then leaves.
func (s *InGameState) HandleInput(event any) error {
	switch e := event.(type) {
	case Controls:
		s.controls.Forward = e.Forward
		s.controls.Right = e.Right
		s.controls.Up = e.Up
		s.controls.LookX += e.LookX
		s.controls.LookY += e.LookY
	case Action:
		switch e {
		case ActionBack:
			if s.CursorLocked {
				s.CursorLocked = false
				return nil
			}
			s.Leave()
		case ActionGrabCursor:
			s.CursorLocked = true
		case ActionToggleWireframe:
			s.ctx.Wireframe = !s.ctx.Wireframe
		}
	}
	return nil
}

// Mesh returns the terrain being flown over.
func (s *InGameState) Mesh() *terrain.Mesh {
	return s.mesh
}

// Leave returns to the generation-done preview.
func (s *InGameState) Leave() {
	s.ctx.Manager.Change(NewGenDoneState(s.ctx))
}

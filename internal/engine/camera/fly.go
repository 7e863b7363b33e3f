package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/terragen/pkg/math"
)

// DefaultMaxPitch keeps the fly camera just short of straight up or down.
const DefaultMaxPitch = 1.54

// FlyCamera is a free-look camera. Its orientation is yaw about world Y
// followed by pitch about the local X axis, so it never rolls.
type FlyCamera struct {
	Position math.Vec3
	Yaw      float32
	Pitch    float32

	Speed       float32 // World units per second
	Sensitivity float32 // Radians per pixel of mouse motion
	MaxPitch    float32
}

// NewFlyCamera creates a fly camera at pos looking down -Z.
func NewFlyCamera(pos math.Vec3, speed, sensitivity float32) *FlyCamera {
	return &FlyCamera{
		Position:    pos,
		Speed:       speed,
		Sensitivity: sensitivity,
		MaxPitch:    DefaultMaxPitch,
	}
}

// Orientation returns the camera rotation.
func (c *FlyCamera) Orientation() math.Quat {
	yaw := math.QuatFromAxisAngle(math.Up, c.Yaw)
	pitch := math.QuatFromAxisAngle(math.Vec3{X: 1}, c.Pitch)
	return yaw.Mul(pitch)
}

// Forward returns the unit view direction.
func (c *FlyCamera) Forward() math.Vec3 {
	return c.Orientation().Rotate(math.Vec3{Z: -1})
}

// Right returns the unit right vector. It stays horizontal.
func (c *FlyCamera) Right() math.Vec3 {
	return c.Orientation().Rotate(math.Vec3{X: 1})
}

// HandleLook turns the camera by a relative mouse motion.
func (c *FlyCamera) HandleLook(dx, dy float32) {
	c.Yaw -= dx * c.Sensitivity
	c.Pitch = clamp(c.Pitch-dy*c.Sensitivity, -c.MaxPitch, c.MaxPitch)
}

// HandleMovement moves along the view direction, the right vector and world
// up. Each axis is in [-1, 1]; dt is in seconds.
func (c *FlyCamera) HandleMovement(forward, right, up, dt float32) {
	dir := c.Forward().Scale(forward).
		Add(c.Right().Scale(right)).
		Add(math.Up.Scale(up))
	if dir.Length() == 0 {
		return
	}
	c.Position = c.Position.Add(dir.Normalize().Scale(c.Speed * dt))
}

// LookAt points the camera at target.
func (c *FlyCamera) LookAt(target math.Vec3) {
	d := target.Sub(c.Position).Normalize()
	if d.Length() == 0 {
		return
	}
	c.Pitch = clamp(math32.Asin(d.Y), -c.MaxPitch, c.MaxPitch)
	c.Yaw = math32.Atan2(-d.X, -d.Z)
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Forward()), math.Up)
}

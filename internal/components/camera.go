package components

import (
	"math"

	"rigforge/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV  float32
	Near float32
	Far  float32
}

func NewCamera() *Camera {
	return &Camera{
		FOV:  60.0,
		Near: 0.1,
		Far:  1000.0,
	}
}

// GetCamera3D builds the raylib camera for this frame. If a LookProvider
// sits on the same object (the test-mode controller), the camera follows
// its look direction and eye height; otherwise it looks down the object's
// yaw.
func (c *Camera) GetCamera3D() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.Transform.Position
	var target rl.Vector3

	if lp := engine.FindComponent[engine.LookProvider](g); lp != nil {
		eyePos.Y += lp.GetEyeHeight()
		x, y, z := lp.GetLookDirection()
		target = rl.Vector3Add(eyePos, rl.Vector3{X: x, Y: y, Z: z})
	} else {
		yawRad := float64(g.Transform.Rotation.Y) * math.Pi / 180
		forward := rl.Vector3{
			X: float32(-math.Sin(yawRad)),
			Y: 0,
			Z: float32(-math.Cos(yawRad)),
		}
		target = rl.Vector3Add(eyePos, forward)
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}

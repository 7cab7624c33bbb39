package components

import (
	"math"

	"rigforge/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MotionState describes what the test-mode player is currently doing, so
// the animator can pick the clip bound to the matching gameplay action.
type MotionState int

const (
	MotionIdle MotionState = iota
	MotionWalk
	MotionRun
	MotionJump
)

// Action returns the gameplay action name this state maps to.
func (m MotionState) Action() string {
	switch m {
	case MotionWalk:
		return "walk"
	case MotionRun:
		return "run"
	case MotionJump:
		return "jump"
	}
	return "idle"
}

// FPSController drives first-person test-mode locomotion: WASD on the
// ground plane, shift to run, space to jump, mouse look.
type FPSController struct {
	engine.BaseComponent
	Yaw          float32
	Pitch        float32
	WalkSpeed    float32
	RunSpeed     float32
	LookSpeed    float32
	Velocity     rl.Vector3
	Gravity      float32
	JumpStrength float32
	Grounded     bool
	EyeHeight    float32
	FloorY       float32

	state MotionState
}

func NewFPSController() *FPSController {
	return &FPSController{
		WalkSpeed:    3.0,
		RunSpeed:     7.5,
		LookSpeed:    0.1,
		Gravity:      20.0,
		JumpStrength: 7.0,
		EyeHeight:    1.7,
	}
}

func (f *FPSController) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil {
		return
	}

	// Mouse look
	mouseDelta := rl.GetMouseDelta()
	f.Yaw += mouseDelta.X * f.LookSpeed
	f.Pitch -= mouseDelta.Y * f.LookSpeed
	if f.Pitch > 89 {
		f.Pitch = 89
	}
	if f.Pitch < -89 {
		f.Pitch = -89
	}

	forward, right := f.getDirections()

	var moveDir rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		moveDir.X += forward.X
		moveDir.Z += forward.Z
	}
	if rl.IsKeyDown(rl.KeyS) {
		moveDir.X -= forward.X
		moveDir.Z -= forward.Z
	}
	if rl.IsKeyDown(rl.KeyA) {
		moveDir.X += right.X
		moveDir.Z += right.Z
	}
	if rl.IsKeyDown(rl.KeyD) {
		moveDir.X -= right.X
		moveDir.Z -= right.Z
	}

	// Normalize diagonal movement
	moveLen := float32(math.Sqrt(float64(moveDir.X*moveDir.X + moveDir.Z*moveDir.Z)))
	if moveLen > 0 {
		moveDir.X /= moveLen
		moveDir.Z /= moveLen
	}

	speed := f.WalkSpeed
	running := rl.IsKeyDown(rl.KeyLeftShift)
	if running {
		speed = f.RunSpeed
	}
	f.Velocity.X = moveDir.X * speed
	f.Velocity.Z = moveDir.Z * speed

	if rl.IsKeyPressed(rl.KeySpace) && f.Grounded {
		f.Velocity.Y = f.JumpStrength
		f.Grounded = false
	}
	if !f.Grounded {
		f.Velocity.Y -= f.Gravity * deltaTime
	}

	g.Transform.Position.X += f.Velocity.X * deltaTime
	g.Transform.Position.Y += f.Velocity.Y * deltaTime
	g.Transform.Position.Z += f.Velocity.Z * deltaTime

	// Flat-floor ground check. The test map is a plane; nothing fancier
	// is needed to exercise the rig's locomotion clips.
	if g.Transform.Position.Y <= f.FloorY {
		g.Transform.Position.Y = f.FloorY
		f.Velocity.Y = 0
		f.Grounded = true
	}

	switch {
	case !f.Grounded:
		f.state = MotionJump
	case moveLen == 0:
		f.state = MotionIdle
	case running:
		f.state = MotionRun
	default:
		f.state = MotionWalk
	}

	// Face the move direction so the rig turns with the player.
	if moveLen > 0 {
		g.Transform.Rotation.Y = float32(math.Atan2(float64(-moveDir.X), float64(-moveDir.Z))) * 180 / math.Pi
	}
}

func (f *FPSController) State() MotionState {
	return f.state
}

func (f *FPSController) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(f.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

// GetLookDirection implements engine.LookProvider.
func (f *FPSController) GetLookDirection() (x, y, z float32) {
	yawRad := float64(f.Yaw) * math.Pi / 180
	pitchRad := float64(f.Pitch) * math.Pi / 180
	return float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad))
}

// GetEyeHeight implements engine.LookProvider.
func (f *FPSController) GetEyeHeight() float32 {
	return f.EyeHeight
}

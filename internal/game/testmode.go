package game

import (
	"rigforge/internal/components"
	"rigforge/internal/engine"
	"rigforge/internal/rig"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TestMode walks the rig around the map: first-person controls drive
// the character, and whichever clip is bound to the current motion
// action plays on the skeleton.
type TestMode struct {
	Active  bool
	Player  *engine.GameObject
	session *Session
}

func NewTestMode(s *Session) *TestMode {
	return &TestMode{session: s}
}

func (t *TestMode) Enter(spawn rl.Vector3, yaw float32) {
	t.Active = true
	rl.DisableCursor()

	t.Player = engine.NewGameObject("Player")

	fps := components.NewFPSController()
	fps.Yaw = -yaw - 90
	t.Player.AddComponent(fps)
	t.Player.AddComponent(components.NewCamera())

	t.Player.Transform.Position = rl.Vector3{X: spawn.X, Y: spawn.Y, Z: spawn.Z}
	t.Player.Start()

	if t.session.RigObject != nil {
		t.session.RigObject.Transform.Position = t.Player.Transform.Position
	}
}

func (t *TestMode) Exit() {
	t.Active = false
	t.Player = nil

	if t.session.RigObject != nil {
		t.session.RigObject.Transform.Position = rl.Vector3{}
		t.session.RigObject.Transform.Rotation = rl.Vector3{}
	}
}

func (t *TestMode) Update(deltaTime float32) {
	if t.Player == nil {
		return
	}
	t.Player.Update(deltaTime)

	fps := engine.GetComponent[*components.FPSController](t.Player)
	if fps == nil {
		return
	}

	// The rig is the player avatar: it follows the controller's position
	// and heading, playing whatever clip the motion state is bound to.
	if t.session.RigObject != nil {
		t.session.RigObject.Transform.Position = t.Player.Transform.Position
		t.session.RigObject.Transform.Rotation.Y = t.Player.Transform.Rotation.Y

		if animator := engine.GetComponent[*components.Animator](t.session.RigObject); animator != nil {
			animator.Play(t.clipForState(fps.State()))
		}
	}
}

// clipForState resolves the clip for the current motion, falling back
// to idle and then to the bind pose when nothing is bound.
func (t *TestMode) clipForState(state components.MotionState) *rig.Clip {
	if clip := t.session.ActionClip(state.Action()); clip != nil {
		return clip
	}
	return t.session.ActionClip("idle")
}

func (t *TestMode) GetRaylibCamera() rl.Camera3D {
	if t.Player != nil {
		if cam := engine.GetComponent[*components.Camera](t.Player); cam != nil {
			return cam.GetCamera3D()
		}
	}
	return rl.Camera3D{Up: rl.Vector3{Y: 1}, Fovy: 60, Projection: rl.CameraPerspective}
}

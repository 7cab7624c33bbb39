package game

import (
	"fmt"
	"math"

	"rigforge/internal/components"
	"rigforge/internal/engine"
	"rigforge/internal/export"
	"rigforge/internal/preview"
	"rigforge/internal/rig"
	"rigforge/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type EditorCamera struct {
	Position  rl.Vector3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
}

// Editor is the rig editing mode: fly camera, mapping table panel,
// clips panel, action bindings, and the toolbar.
type Editor struct {
	Active  bool
	camera  EditorCamera
	session *Session
	world   *world.World

	// Mapping panel
	mappingScroll  int32
	selectedSource string

	// Clips panel
	clipsScroll  int32
	previewClip  string
	showSkeleton bool
	playbackFPS  float32

	// Save feedback
	saveMsg     string
	saveMsgTime float64

	// Undo stack
	undoStack []UndoState

	// Pending screenshot, taken after EndDrawing
	screenshotPath string
}

func NewEditor(w *world.World, s *Session) *Editor {
	return &Editor{
		world:   w,
		session: s,
		camera: EditorCamera{
			Position:  rl.Vector3{X: 3, Y: 2, Z: 3},
			Yaw:       -135,
			MoveSpeed: 10.0,
		},
		showSkeleton: true,
		playbackFPS:  30,
		undoStack:    make([]UndoState, 0, maxUndoStack),
	}
}

func (e *Editor) Enter() {
	e.Active = true
	rl.EnableCursor()
	initRayguiStyle()
}

func (e *Editor) Exit() {
	e.Active = false
	rl.DisableCursor()
}

func (e *Editor) Update(deltaTime float32) {
	// Ctrl+Z or Cmd+Z: undo
	if (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyLeftSuper)) && rl.IsKeyPressed(rl.KeyZ) {
		e.undo()
	}

	// Ctrl+S: save project
	if (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyLeftSuper)) && rl.IsKeyPressed(rl.KeyS) {
		e.saveProject()
	}

	// Ctrl+M / Ctrl+L: share the mapping table between projects as a
	// standalone file.
	if (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyLeftSuper)) && rl.IsKeyPressed(rl.KeyM) {
		if err := e.session.Mapping.Save(mappingTableFile); err != nil {
			e.setMsg("Save failed: %v", err)
		} else {
			e.setMsg("Saved %s", mappingTableFile)
		}
	}
	if (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyLeftSuper)) && rl.IsKeyPressed(rl.KeyL) {
		if table, err := rig.LoadMappingTable(mappingTableFile); err != nil {
			e.setMsg("Load failed: %v", err)
		} else {
			e.session.Mapping = table
			e.undoStack = e.undoStack[:0]
			e.session.MappingChanged.Invoke()
			e.setMsg("Loaded %s", mappingTableFile)
		}
	}

	// Middle-click on the floor places the spawn point, facing the camera
	// heading.
	if rl.IsMouseButtonPressed(rl.MouseMiddleButton) {
		e.placeSpawn()
	}

	// Camera: right-click + drag to look, right-click + WASD to fly
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		mouseDelta := rl.GetMouseDelta()
		e.camera.Yaw += mouseDelta.X * 0.1
		e.camera.Pitch -= mouseDelta.Y * 0.1
		if e.camera.Pitch > 89 {
			e.camera.Pitch = 89
		}
		if e.camera.Pitch < -89 {
			e.camera.Pitch = -89
		}

		forward, right := e.getDirections()
		speed := e.camera.MoveSpeed * deltaTime

		if rl.IsKeyDown(rl.KeyW) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(forward, speed))
		}
		if rl.IsKeyDown(rl.KeyS) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(forward, -speed))
		}
		if rl.IsKeyDown(rl.KeyA) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(right, speed))
		}
		if rl.IsKeyDown(rl.KeyD) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(right, -speed))
		}
		if rl.IsKeyDown(rl.KeyE) {
			e.camera.Position.Y += speed
		}
		if rl.IsKeyDown(rl.KeyQ) {
			e.camera.Position.Y -= speed
		}
	}

	// Scroll wheel + Shift adjusts fly speed
	scroll := rl.GetMouseWheelMove()
	if scroll != 0 && (rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)) {
		e.camera.MoveSpeed += scroll * 2.0
		if e.camera.MoveSpeed < 1.0 {
			e.camera.MoveSpeed = 1.0
		}
		if e.camera.MoveSpeed > 100.0 {
			e.camera.MoveSpeed = 100.0
		}
	}

	e.syncPreview()
}

// syncPreview keeps the rig's animator playing the selected clip and
// the skeleton overlay toggled the way the panel says.
func (e *Editor) syncPreview() {
	if e.session.RigObject == nil {
		return
	}
	if animator := engine.GetComponent[*components.Animator](e.session.RigObject); animator != nil {
		animator.Speed = e.playbackFPS
		animator.Play(e.session.RetargetedClip(e.previewClip))
	}
	if renderer := engine.GetComponent[*components.RigRenderer](e.session.RigObject); renderer != nil {
		renderer.ShowSkeleton = e.showSkeleton
	}
}

func (e *Editor) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(e.camera.Yaw) * math.Pi / 180
	pitchRad := float64(e.camera.Pitch) * math.Pi / 180

	forward = rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

func (e *Editor) GetRaylibCamera() rl.Camera3D {
	forward, _ := e.getDirections()
	return rl.Camera3D{
		Position:   e.camera.Position,
		Target:     rl.Vector3Add(e.camera.Position, forward),
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
}

const mappingTableFile = "mapping.json"

// placeSpawn intersects the mouse ray with the floor plane and moves the
// spawn marker there. Yaw follows the editor camera so the rig starts
// facing the way the user is looking.
func (e *Editor) placeSpawn() {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), e.GetRaylibCamera())
	if ray.Direction.Y >= 0 {
		return
	}
	t := -ray.Position.Y / ray.Direction.Y
	hit := rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t))

	half := float32(world.FloorSize) / 2
	if hit.X < -half || hit.X > half || hit.Z < -half || hit.Z > half {
		return
	}

	e.world.Spawn.Position = rl.Vector3{X: hit.X, Z: hit.Z}
	e.world.Spawn.Yaw = -e.camera.Yaw - 90
	e.setMsg("Spawn set to (%.1f, %.1f)", hit.X, hit.Z)
}

func (e *Editor) setMsg(format string, args ...any) {
	e.saveMsg = fmt.Sprintf(format, args...)
	e.saveMsgTime = rl.GetTime()
}

func (e *Editor) saveProject() {
	path := e.session.ProjectPath
	if path == "" {
		path = "project.rigproj"
	}
	if err := e.session.SaveProject(e.world, path); err != nil {
		e.setMsg("Save failed: %v", err)
	} else {
		e.setMsg("Saved %s", path)
	}
}

func (e *Editor) exportRig() {
	if len(e.session.Bones) == 0 {
		e.setMsg("Nothing to export")
		return
	}
	if len(e.session.Retargeted) == 0 {
		e.session.RetargetAll()
	}
	if err := export.WriteRig("rig.glb", e.session.Bones, e.session.Retargeted); err != nil {
		e.setMsg("Export failed: %v", err)
		return
	}
	e.setMsg("Exported rig.glb")
}

func (e *Editor) exportMap() {
	def := export.MapDef{
		FloorSize: world.FloorSize,
		Spawn:     [3]float32{e.world.Spawn.Position.X, e.world.Spawn.Position.Y, e.world.Spawn.Position.Z},
		SpawnYaw:  e.world.Spawn.Yaw,
	}
	if err := export.WriteMap("map.glb", def); err != nil {
		e.setMsg("Export failed: %v", err)
		return
	}
	e.setMsg("Exported map.glb")
}

// TakePendingScreenshot runs after EndDrawing so the captured frame is
// complete.
func (e *Editor) TakePendingScreenshot() {
	if e.screenshotPath == "" {
		return
	}
	path := e.screenshotPath
	e.screenshotPath = ""

	if err := preview.CaptureScreen(path); err != nil {
		e.setMsg("Screenshot failed: %v", err)
		return
	}
	e.setMsg("Saved %s", path)
}

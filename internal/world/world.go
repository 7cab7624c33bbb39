package world

import (
	"rigforge/internal/components"
	"rigforge/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const FloorSize = 40.0

// SpawnPoint is where the rig appears when test mode starts.
type SpawnPoint struct {
	Position rl.Vector3
	Yaw      float32
}

// World owns the test map: a flat floor, a grid, and a spawn marker,
// plus the scene holding the rig under edit.
type World struct {
	Scene      *engine.Scene
	FloorModel rl.Model
	FloorColor rl.Color
	Spawn      SpawnPoint
	ShowSpawn  bool
}

func New() *World {
	return &World{
		Scene:      engine.NewScene("Main"),
		FloorColor: rl.LightGray,
		Spawn:      SpawnPoint{Position: rl.Vector3{}, Yaw: 0},
		ShowSpawn:  true,
	}
}

func (w *World) Initialize() {
	floorMesh := rl.GenMeshPlane(FloorSize, FloorSize, 1, 1)
	w.FloorModel = rl.LoadModelFromMesh(floorMesh)
	w.FloorModel.Materials.Maps.Color = w.FloorColor

	w.Scene.Start()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Draw renders the map and every object carrying a RigRenderer. The
// caller is already inside BeginMode3D.
func (w *World) Draw() {
	rl.DrawModel(w.FloorModel, rl.Vector3Zero(), 1.0, w.FloorColor)
	rl.DrawGrid(int32(FloorSize), 1.0)

	if w.ShowSpawn {
		w.drawSpawnMarker()
	}

	for _, g := range w.Scene.GameObjects {
		if renderer := engine.GetComponent[*components.RigRenderer](g); renderer != nil {
			renderer.Draw()
		}
	}
}

func (w *World) drawSpawnMarker() {
	p := w.Spawn.Position
	rl.DrawCylinderWires(p, 0.4, 0.4, 0.05, 16, rl.Green)
	// Yaw arrow
	dir := rl.Vector3RotateByQuaternion(rl.Vector3{Z: -1}, rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, w.Spawn.Yaw*rl.Deg2rad))
	tip := rl.Vector3Add(p, rl.Vector3Scale(dir, 0.7))
	rl.DrawLine3D(p, tip, rl.Green)
	rl.DrawSphere(tip, 0.05, rl.Green)
}

func (w *World) Unload() {
	rl.UnloadModel(w.FloorModel)

	for _, g := range w.Scene.GameObjects {
		if renderer := engine.GetComponent[*components.RigRenderer](g); renderer != nil {
			renderer.Unload()
		}
	}
}

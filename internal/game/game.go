package game

import (
	"fmt"

	"rigforge/internal/assets"
	"rigforge/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	World    *world.World
	Session  *Session
	Editor   *Editor
	TestMode *TestMode
}

func New() *Game {
	w := world.New()
	s := NewSession()
	return &Game{
		World:    w,
		Session:  s,
		Editor:   NewEditor(w, s),
		TestMode: NewTestMode(s),
	}
}

// Run opens the window and drives the editor until it closes. An
// optional project path is loaded at startup; otherwise the last
// project from the prefs file is reopened.
func (g *Game) Run(projectPath string) {
	prefs := LoadEditorPrefs()

	width, height := int32(1280), int32(720)
	if prefs != nil && prefs.WindowWidth > 0 && prefs.WindowHeight > 0 {
		width, height = int32(prefs.WindowWidth), int32(prefs.WindowHeight)
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(width, height, "Rigforge")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.SetExitKey(rl.KeyNull)

	// Initialize world after OpenGL context is created
	g.World.Initialize()
	defer g.World.Unload()
	defer assets.Unload()

	if projectPath == "" && prefs != nil {
		projectPath = prefs.ProjectPath
	}
	if projectPath != "" {
		if err := g.Session.LoadProject(g.World, projectPath); err != nil {
			fmt.Printf("Failed to open project %s: %v\n", projectPath, err)
		}
	}

	g.Editor.ApplyPrefs(prefs)
	g.Editor.Enter()
	defer g.Editor.SavePrefs()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
		g.Editor.TakePendingScreenshot()
	}
}

func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()

	if requestTest {
		requestTest = false
		g.enterTestMode()
	}

	// Escape leaves test mode back to the editor
	if g.TestMode.Active && rl.IsKeyPressed(rl.KeyEscape) {
		g.TestMode.Exit()
		g.Editor.Enter()
	}

	if g.TestMode.Active {
		g.TestMode.Update(deltaTime)
	} else {
		g.Editor.Update(deltaTime)
	}

	g.World.Update(deltaTime)
}

func (g *Game) enterTestMode() {
	if g.Session.RigObject == nil {
		g.Editor.setMsg("Load a model before testing")
		return
	}
	if len(g.Session.Retargeted) == 0 {
		g.Session.RetargetAll()
	}
	g.Editor.Exit()
	g.TestMode.Enter(g.World.Spawn.Position, g.World.Spawn.Yaw)
}

func (g *Game) Draw() {
	var camera rl.Camera3D
	if g.TestMode.Active {
		camera = g.TestMode.GetRaylibCamera()
	} else {
		camera = g.Editor.GetRaylibCamera()
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(16, 18, 22, 255))

	rl.BeginMode3D(camera)
	g.World.Draw()
	rl.EndMode3D()

	if g.TestMode.Active {
		g.drawTestHUD()
	} else {
		g.Editor.DrawUI()
	}

	rl.EndDrawing()
}

func (g *Game) drawTestHUD() {
	rl.DrawText("WASD to move, Shift to run, Space to jump", 10, 10, 20, rl.DarkGray)
	rl.DrawText("Esc to return to editor", 10, 35, 20, rl.DarkGray)
	rl.DrawFPS(10, 60)
}

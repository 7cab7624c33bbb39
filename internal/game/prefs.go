package game

import (
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// EditorPrefs holds persistent editor preferences saved between sessions
type EditorPrefs struct {
	WindowWidth     int        `json:"windowWidth"`
	WindowHeight    int        `json:"windowHeight"`
	CameraPosition  rl.Vector3 `json:"cameraPosition"`
	CameraYaw       float32    `json:"cameraYaw"`
	CameraPitch     float32    `json:"cameraPitch"`
	CameraMoveSpeed float32    `json:"cameraMoveSpeed"`
	ProjectPath     string     `json:"projectPath"`
	ShowSkeleton    bool       `json:"showSkeleton"`
}

const editorPrefsFile = ".rigforge_prefs.json"

// LoadEditorPrefs loads editor preferences from disk
func LoadEditorPrefs() *EditorPrefs {
	data, err := os.ReadFile(editorPrefsFile)
	if err != nil {
		return nil
	}

	var prefs EditorPrefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		fmt.Printf("Failed to parse editor prefs: %v\n", err)
		return nil
	}

	return &prefs
}

// SavePrefs saves the current editor state to disk
func (e *Editor) SavePrefs() {
	prefs := EditorPrefs{
		WindowWidth:     rl.GetScreenWidth(),
		WindowHeight:    rl.GetScreenHeight(),
		CameraPosition:  e.camera.Position,
		CameraYaw:       e.camera.Yaw,
		CameraPitch:     e.camera.Pitch,
		CameraMoveSpeed: e.camera.MoveSpeed,
		ProjectPath:     e.session.ProjectPath,
		ShowSkeleton:    e.showSkeleton,
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		fmt.Printf("Failed to marshal editor prefs: %v\n", err)
		return
	}

	if err := os.WriteFile(editorPrefsFile, data, 0644); err != nil {
		fmt.Printf("Failed to save editor prefs: %v\n", err)
	}
}

// ApplyPrefs applies loaded preferences to the editor
func (e *Editor) ApplyPrefs(prefs *EditorPrefs) {
	if prefs == nil {
		return
	}

	e.camera.Position = prefs.CameraPosition
	e.camera.Yaw = prefs.CameraYaw
	e.camera.Pitch = prefs.CameraPitch
	if prefs.CameraMoveSpeed > 0 {
		e.camera.MoveSpeed = prefs.CameraMoveSpeed
	}
	e.showSkeleton = prefs.ShowSkeleton
}

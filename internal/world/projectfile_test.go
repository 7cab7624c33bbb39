package world

import (
	"path/filepath"
	"testing"

	"rigforge/internal/rig"
)

func TestProjectFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hero.rigproj")

	pf := &ProjectFile{
		ModelPath:     "assets/models/hero.glb",
		AnimationPath: "assets/models/mocap.glb",
		Mapping:       rig.MappingTable{"mixamorig:Hips": "Hips"},
		Actions:       map[string]string{"walk": "Walking", "idle": "Idle"},
	}
	pf.SetSpawnPoint(SpawnPoint{Yaw: 90})

	if err := pf.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if loaded.ModelPath != pf.ModelPath {
		t.Errorf("model path = %q, want %q", loaded.ModelPath, pf.ModelPath)
	}
	if got, ok := loaded.Mapping.Resolve("mixamorig:Hips"); !ok || got != "Hips" {
		t.Errorf("mapping lost in round trip: got %q, %v", got, ok)
	}
	if loaded.Actions["walk"] != "Walking" {
		t.Errorf("actions lost in round trip: %v", loaded.Actions)
	}
	if loaded.SpawnPoint().Yaw != 90 {
		t.Errorf("spawn yaw = %v, want 90", loaded.SpawnPoint().Yaw)
	}
}

func TestLoadProjectMissingFile(t *testing.T) {
	if _, err := LoadProject(filepath.Join(t.TempDir(), "nope.rigproj")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadProjectDefaultsMaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.rigproj")
	pf := &ProjectFile{ModelPath: "m.glb"}
	if err := pf.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if loaded.Mapping == nil || loaded.Actions == nil {
		t.Error("expected empty maps, got nil")
	}
}

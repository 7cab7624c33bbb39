package game

import (
	"testing"

	"rigforge/internal/rig"
)

func testSession() *Session {
	s := NewSession()
	s.Bones = []rig.Bone{
		{Name: "Hips", Parent: -1},
		{Name: "Spine", Parent: 0},
		{Name: "LeftArm", Parent: 1},
	}
	s.SourceClips = []rig.Clip{
		{
			Name: "walk",
			From: 0,
			To:   10,
			Tracks: []rig.Track{
				{BoneName: "mixamorig:Hips", Keys: []rig.Keyframe{{Frame: 0}}},
				{BoneName: "mixamorig:LeftArm", Keys: []rig.Keyframe{{Frame: 0}}},
			},
		},
		{
			Name: "idle",
			From: 0,
			To:   5,
			Tracks: []rig.Track{
				{BoneName: "mixamorig:Hips", Keys: []rig.Keyframe{{Frame: 0}}},
			},
		},
	}
	return s
}

func TestSourceBoneNamesFirstSeenOrder(t *testing.T) {
	s := testSession()

	names := s.SourceBoneNames()
	want := []string{"mixamorig:Hips", "mixamorig:LeftArm"}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestAutoMapFillsMapping(t *testing.T) {
	s := testSession()

	s.AutoMap()

	if got, _ := s.Mapping.Resolve("mixamorig:Hips"); got != "Hips" {
		t.Errorf("Hips mapped to %q", got)
	}
	if got, _ := s.Mapping.Resolve("mixamorig:LeftArm"); got != "LeftArm" {
		t.Errorf("LeftArm mapped to %q", got)
	}
}

func TestRetargetAllProducesOneClipPerSource(t *testing.T) {
	s := testSession()
	s.AutoMap()

	s.RetargetAll()

	if len(s.Retargeted) != len(s.SourceClips) {
		t.Fatalf("retargeted %d clips, want %d", len(s.Retargeted), len(s.SourceClips))
	}
	walk := s.RetargetedClip("walk")
	if walk == nil {
		t.Fatal("walk clip missing after retarget")
	}
	if walk.TrackFor("Hips") == nil {
		t.Error("walk clip lost the Hips track")
	}
}

func TestRetargetAllRunsTwiceWithoutDuplicates(t *testing.T) {
	s := testSession()
	s.AutoMap()

	s.RetargetAll()
	s.RetargetAll()

	if len(s.Retargeted) != len(s.SourceClips) {
		t.Errorf("retargeted %d clips after two runs, want %d", len(s.Retargeted), len(s.SourceClips))
	}
}

func TestActionClipResolution(t *testing.T) {
	s := testSession()
	s.AutoMap()
	s.RetargetAll()

	s.Actions["walk"] = "walk"

	if clip := s.ActionClip("walk"); clip == nil || clip.Name != "walk" {
		t.Errorf("ActionClip(walk) = %v", clip)
	}
	if clip := s.ActionClip("jump"); clip != nil {
		t.Errorf("unbound action returned clip %q", clip.Name)
	}

	s.Actions["run"] = "no-such-clip"
	if clip := s.ActionClip("run"); clip != nil {
		t.Errorf("dangling action binding returned clip %q", clip.Name)
	}
}

func TestSessionClipsChangedFires(t *testing.T) {
	s := testSession()
	s.AutoMap()

	fired := 0
	s.ClipsChanged.AddListener(func() { fired++ })

	s.RetargetAll()
	if fired != 1 {
		t.Errorf("ClipsChanged fired %d times, want 1", fired)
	}
}

func TestUndoRestoresMappingEdit(t *testing.T) {
	s := testSession()
	s.Mapping.Set("mixamorig:Hips", "Hips")

	e := &Editor{session: s}

	e.pushUndo("mixamorig:Hips")
	s.Mapping.Set("mixamorig:Hips", "LeftArm")

	e.pushUndo("mixamorig:LeftArm")
	s.Mapping.Set("mixamorig:LeftArm", "Spine")

	e.undo()
	if _, had := s.Mapping.Resolve("mixamorig:LeftArm"); had {
		t.Error("undo did not remove the new binding")
	}

	e.undo()
	if got, _ := s.Mapping.Resolve("mixamorig:Hips"); got != "Hips" {
		t.Errorf("undo restored %q, want Hips", got)
	}

	// Empty stack is a no-op
	e.undo()
}

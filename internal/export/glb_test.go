package export

import (
	"path/filepath"
	"testing"

	"rigforge/internal/rig"

	"github.com/qmuntal/gltf"
)

func testSkeleton() []rig.Bone {
	return []rig.Bone{
		{Name: "Hips", Parent: -1},
		{Name: "Spine", Parent: 0, Position: [3]float32{0, 0.2, 0}},
		{Name: "Head", Parent: 1, Position: [3]float32{0, 0.5, 0}},
	}
}

func testWalkClip() rig.Clip {
	return rig.Clip{
		Name: "walk",
		From: 0,
		To:   1,
		Tracks: []rig.Track{
			{
				BoneName: "Hips",
				Keys: []rig.Keyframe{
					{Frame: 0, Rotation: [4]float32{0, 0, 0, 1}, Scale: [3]float32{1, 1, 1}},
					{Frame: 1, Translation: [3]float32{0, 0.1, 0}, Rotation: [4]float32{0, 0, 0, 1}, Scale: [3]float32{1, 1, 1}},
				},
			},
			{
				BoneName: "NoSuchBone",
				Keys: []rig.Keyframe{
					{Frame: 0, Rotation: [4]float32{0, 0, 0, 1}, Scale: [3]float32{1, 1, 1}},
				},
			},
		},
	}
}

func TestWriteRigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rig.glb")

	if err := WriteRig(path, testSkeleton(), []rig.Clip{testWalkClip()}); err != nil {
		t.Fatalf("WriteRig failed: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("reopening exported file failed: %v", err)
	}

	// Armature root plus one node per bone
	if len(doc.Nodes) != 4 {
		t.Fatalf("node count = %d, want 4", len(doc.Nodes))
	}
	if doc.Nodes[0].Name != "Armature" {
		t.Errorf("root node = %q, want Armature", doc.Nodes[0].Name)
	}

	names := map[string]bool{}
	for _, n := range doc.Nodes {
		names[n.Name] = true
	}
	for _, want := range []string{"Hips", "Spine", "Head"} {
		if !names[want] {
			t.Errorf("missing bone node %q", want)
		}
	}

	if len(doc.Animations) != 1 {
		t.Fatalf("animation count = %d, want 1", len(doc.Animations))
	}
	anim := doc.Animations[0]
	if anim.Name != "walk" {
		t.Errorf("animation name = %q, want walk", anim.Name)
	}
	// Only the Hips track survives: rotation plus translation channels
	if len(anim.Channels) != 2 {
		t.Errorf("channel count = %d, want 2", len(anim.Channels))
	}
}

func TestWriteRigHierarchy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rig.glb")

	if err := WriteRig(path, testSkeleton(), nil); err != nil {
		t.Fatalf("WriteRig failed: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("reopening exported file failed: %v", err)
	}

	byName := map[string]*gltf.Node{}
	for _, n := range doc.Nodes {
		byName[n.Name] = n
	}

	spine := byName["Spine"]
	if len(spine.Children) != 1 || doc.Nodes[spine.Children[0]].Name != "Head" {
		t.Errorf("Spine children wrong: %v", spine.Children)
	}
	armature := byName["Armature"]
	if len(armature.Children) != 1 || doc.Nodes[armature.Children[0]].Name != "Hips" {
		t.Errorf("Armature children wrong: %v", armature.Children)
	}
}

func TestWriteRigRejectsEmptySkeleton(t *testing.T) {
	if err := WriteRig(filepath.Join(t.TempDir(), "rig.glb"), nil, nil); err == nil {
		t.Error("expected error for empty skeleton")
	}
}

func TestWriteMapRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.glb")

	def := MapDef{FloorSize: 40, Spawn: [3]float32{1, 0, 2}, SpawnYaw: 90}
	if err := WriteMap(path, def); err != nil {
		t.Fatalf("WriteMap failed: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("reopening exported file failed: %v", err)
	}

	var foundFloor, foundSpawn bool
	for _, n := range doc.Nodes {
		switch n.Name {
		case "Floor":
			foundFloor = true
			if n.Mesh == nil {
				t.Error("floor node has no mesh")
			}
		case "SpawnPoint":
			foundSpawn = true
			if n.Translation != def.Spawn {
				t.Errorf("spawn translation = %v, want %v", n.Translation, def.Spawn)
			}
		}
	}
	if !foundFloor || !foundSpawn {
		t.Errorf("missing nodes: floor=%v spawn=%v", foundFloor, foundSpawn)
	}
}

func TestWriteMapRejectsBadFloor(t *testing.T) {
	if err := WriteMap(filepath.Join(t.TempDir(), "map.glb"), MapDef{}); err == nil {
		t.Error("expected error for zero floor size")
	}
}

package rig

import "testing"

func testClip() Clip {
	return Clip{
		Name: "walk",
		From: 10,
		To:   40,
		Tracks: []Track{
			{BoneName: "A", Keys: []Keyframe{{Frame: 10}, {Frame: 40}}},
			{BoneName: "B", Keys: []Keyframe{{Frame: 10}, {Frame: 25}, {Frame: 40}}},
		},
	}
}

func TestRetargetDropsUnmappedTracks(t *testing.T) {
	// Empty string and missing key both mean "drop this track".
	mapping := MappingTable{"A": "", "B": "B"}
	targets := bonesFromNames("A", "B")

	out := Retarget(testClip(), targets, mapping)

	if len(out.Tracks) != 1 {
		t.Fatalf("expected 1 surviving track, got %d", len(out.Tracks))
	}
	if out.Tracks[0].BoneName != "B" {
		t.Errorf("surviving track bound to %q, want B", out.Tracks[0].BoneName)
	}
}

func TestRetargetDropsDanglingTargets(t *testing.T) {
	// "Z" is not in the target skeleton; the track is dropped, no panic.
	mapping := MappingTable{"A": "Z", "B": "B"}
	targets := bonesFromNames("A", "B")

	out := Retarget(testClip(), targets, mapping)

	if len(out.Tracks) != 1 {
		t.Fatalf("expected 1 surviving track, got %d", len(out.Tracks))
	}
}

func TestRetargetPreservesRange(t *testing.T) {
	mapping := MappingTable{} // everything dropped
	out := Retarget(testClip(), bonesFromNames("A", "B"), mapping)

	if len(out.Tracks) != 0 {
		t.Errorf("expected all tracks dropped, got %d", len(out.Tracks))
	}
	if out.From != 10 || out.To != 40 {
		t.Errorf("range [%v,%v], want [10,40]", out.From, out.To)
	}
	if out.Name != "walk" {
		t.Errorf("clip name %q, want walk", out.Name)
	}
}

func TestRetargetTrackCountBound(t *testing.T) {
	clip := testClip()
	full := MappingTable{"A": "A", "B": "B"}
	targets := bonesFromNames("A", "B")

	out := Retarget(clip, targets, full)
	if len(out.Tracks) != len(clip.Tracks) {
		t.Errorf("full mapping should keep every track: %d vs %d", len(out.Tracks), len(clip.Tracks))
	}

	partial := MappingTable{"A": "A"}
	out = Retarget(clip, targets, partial)
	if len(out.Tracks) >= len(clip.Tracks) {
		t.Errorf("partial mapping must drop tracks: got %d of %d", len(out.Tracks), len(clip.Tracks))
	}
}

func TestRetargetRebindsAndClonesKeys(t *testing.T) {
	clip := Clip{
		Name: "idle",
		From: 0,
		To:   1,
		Tracks: []Track{
			{BoneName: "src_hips", Keys: []Keyframe{{Frame: 0, Translation: [3]float32{1, 2, 3}}}},
		},
	}
	mapping := MappingTable{"src_hips": "pelvis"}
	targets := bonesFromNames("pelvis")

	out := Retarget(clip, targets, mapping)

	if len(out.Tracks) != 1 || out.Tracks[0].BoneName != "pelvis" {
		t.Fatalf("track not rebound: %+v", out.Tracks)
	}

	// The output owns its keyframes; mutating it must not touch the source.
	out.Tracks[0].Keys[0].Translation[0] = 99
	if clip.Tracks[0].Keys[0].Translation[0] != 1 {
		t.Error("retarget aliased the source clip's keyframes")
	}
}

func TestRetargetNeverMutatesMapping(t *testing.T) {
	mapping := MappingTable{"A": "A", "B": ""}
	Retarget(testClip(), bonesFromNames("A"), mapping)

	if len(mapping) != 2 || mapping["A"] != "A" || mapping["B"] != "" {
		t.Errorf("mapping mutated by retarget: %v", mapping)
	}
}

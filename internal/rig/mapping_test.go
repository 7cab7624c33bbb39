package rig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestMappingTableResolve(t *testing.T) {
	m := MappingTable{"A": "X", "B": ""}

	if dst, ok := m.Resolve("A"); !ok || dst != "X" {
		t.Errorf("Resolve(A) = %q,%v", dst, ok)
	}
	if _, ok := m.Resolve("B"); ok {
		t.Error("empty value must resolve as unmapped")
	}
	if _, ok := m.Resolve("missing"); ok {
		t.Error("missing key must resolve as unmapped")
	}
}

func TestMappingTableRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.json")
	m := MappingTable{"mixamorig:Hips": "Hips", "mixamorig:Tail": ""}

	if err := m.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	// The persisted shape is a flat object literal, nothing else.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("saved file is not a flat object: %v", err)
	}

	loaded, err := LoadMappingTable(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != len(m) {
		t.Fatalf("round trip size %d, want %d", len(loaded), len(m))
	}
	for k, v := range m {
		if loaded[k] != v {
			t.Errorf("loaded[%q] = %q, want %q", k, loaded[k], v)
		}
	}
}

func TestLoadMappingTableMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadMappingTable(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if table != nil {
		t.Error("no table should be produced on parse failure")
	}
}

func TestMappingTableSortedSources(t *testing.T) {
	m := MappingTable{"c": "1", "a": "2", "stale": "3"}
	order := []string{"a", "b", "c"}

	got := m.SortedSources(order)

	want := []string{"a", "c", "stale"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSampleTrackInterpolation(t *testing.T) {
	track := &Track{BoneName: "A", Keys: []Keyframe{
		{Frame: 0, Translation: [3]float32{0, 0, 0}, Rotation: [4]float32{0, 0, 0, 1}, Scale: [3]float32{1, 1, 1}},
		{Frame: 10, Translation: [3]float32{10, 0, 0}, Rotation: [4]float32{0, 0, 0, 1}, Scale: [3]float32{1, 1, 1}},
	}}

	key, ok := SampleTrack(track, 5)
	if !ok {
		t.Fatal("sample failed")
	}
	if key.Translation[0] != 5 {
		t.Errorf("midpoint X = %v, want 5", key.Translation[0])
	}

	// Clamping at both ends.
	if key, _ := SampleTrack(track, -3); key.Translation[0] != 0 {
		t.Errorf("before-range sample should clamp to first key")
	}
	if key, _ := SampleTrack(track, 100); key.Translation[0] != 10 {
		t.Errorf("after-range sample should clamp to last key")
	}

	if _, ok := SampleTrack(&Track{BoneName: "empty"}, 0); ok {
		t.Error("empty track must not sample")
	}
}

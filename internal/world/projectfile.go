package world

import (
	"encoding/json"
	"fmt"
	"os"

	"rigforge/internal/rig"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ProjectFile is the on-disk format for a rig project: which files are
// loaded, how source bones map to target bones, and which clip plays
// for each gameplay action.
type ProjectFile struct {
	ModelPath     string            `json:"model"`
	AnimationPath string            `json:"animations,omitempty"`
	Mapping       rig.MappingTable  `json:"mapping,omitempty"`
	Actions       map[string]string `json:"actions,omitempty"`
	Spawn         spawnDef          `json:"spawn"`
}

type spawnDef struct {
	Position [3]float32 `json:"position"`
	Yaw      float32    `json:"yaw"`
}

func LoadProject(path string) (*ProjectFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}

	var pf ProjectFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse project: %w", err)
	}

	if pf.Mapping == nil {
		pf.Mapping = rig.MappingTable{}
	}
	if pf.Actions == nil {
		pf.Actions = map[string]string{}
	}
	return &pf, nil
}

func (pf *ProjectFile) Save(path string) error {
	data, err := json.MarshalIndent(pf, "", "  ")
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write project: %w", err)
	}
	return nil
}

func (pf *ProjectFile) SpawnPoint() SpawnPoint {
	return SpawnPoint{
		Position: rl.Vector3{X: pf.Spawn.Position[0], Y: pf.Spawn.Position[1], Z: pf.Spawn.Position[2]},
		Yaw:      pf.Spawn.Yaw,
	}
}

func (pf *ProjectFile) SetSpawnPoint(sp SpawnPoint) {
	pf.Spawn = spawnDef{
		Position: [3]float32{sp.Position.X, sp.Position.Y, sp.Position.Z},
		Yaw:      sp.Yaw,
	}
}

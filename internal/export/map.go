package export

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// MapDef describes the test map: a square floor and the spawn point.
type MapDef struct {
	FloorSize float32
	Spawn     [3]float32
	SpawnYaw  float32
}

// WriteMap saves the test map as a .glb file: a floor plane mesh plus
// an empty node marking the spawn point, yaw encoded as a rotation
// around Y.
func WriteMap(path string, def MapDef) error {
	if def.FloorSize <= 0 {
		return fmt.Errorf("export map: floor size must be positive")
	}

	doc := newDocument()

	half := def.FloorSize / 2
	positions := [][3]float32{
		{-half, 0, -half},
		{half, 0, -half},
		{half, 0, half},
		{-half, 0, half},
	}
	normals := [][3]float32{
		{0, 1, 0}, {0, 1, 0}, {0, 1, 0}, {0, 1, 0},
	}
	indices := []uint16{0, 2, 1, 0, 3, 2}

	posAcc := modeler.WritePosition(doc, positions)
	normAcc := modeler.WriteNormal(doc, normals)
	idxAcc := modeler.WriteIndices(doc, indices)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "Floor",
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(idxAcc),
			Attributes: map[string]uint32{
				"POSITION": posAcc,
				"NORMAL":   normAcc,
			},
		}},
	})

	floorNode := uint32(len(doc.Nodes))
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name:     "Floor",
		Mesh:     gltf.Index(0),
		Rotation: [4]float32{0, 0, 0, 1},
		Scale:    [3]float32{1, 1, 1},
	})

	halfYaw := float64(def.SpawnYaw) * math.Pi / 180 / 2
	spawnNode := uint32(len(doc.Nodes))
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name:        "SpawnPoint",
		Translation: def.Spawn,
		Rotation:    [4]float32{0, float32(math.Sin(halfYaw)), 0, float32(math.Cos(halfYaw))},
		Scale:       [3]float32{1, 1, 1},
	})

	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, floorNode, spawnNode)

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("export map: %w", err)
	}
	return nil
}

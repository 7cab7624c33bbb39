// Package export writes rigs, clips and test maps as binary glTF so the
// results can be checked in any external viewer.
package export

import (
	"fmt"

	"rigforge/internal/rig"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

const framesPerSecond = 30.0

// WriteRig saves the skeleton and its clips as a .glb file. Bone nodes
// keep their hierarchy, and each clip becomes a glTF animation with one
// rotation and one translation channel per track.
func WriteRig(path string, bones []rig.Bone, clips []rig.Clip) error {
	if len(bones) == 0 {
		return fmt.Errorf("export rig: no bones")
	}

	doc := newDocument()
	nodeByBone := addSkeletonNodes(doc, bones)

	for _, clip := range clips {
		addClipAnimation(doc, clip, nodeByBone)
	}

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("export rig: %w", err)
	}
	return nil
}

func newDocument() *gltf.Document {
	return &gltf.Document{
		Asset:  gltf.Asset{Version: "2.0", Generator: "rigforge"},
		Scene:  gltf.Index(0),
		Scenes: []*gltf.Scene{{Name: "Scene"}},
	}
}

// addSkeletonNodes appends one node per bone, parented the way the rig
// is, all hanging off an Armature root in the document scene.
func addSkeletonNodes(doc *gltf.Document, bones []rig.Bone) map[string]uint32 {
	root := uint32(len(doc.Nodes))
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name:     "Armature",
		Rotation: [4]float32{0, 0, 0, 1},
		Scale:    [3]float32{1, 1, 1},
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, root)

	nodeByBone := make(map[string]uint32, len(bones))
	indices := make([]uint32, len(bones))
	for i, bone := range bones {
		idx := uint32(len(doc.Nodes))
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:        bone.Name,
			Translation: bone.Position,
			Rotation:    [4]float32{0, 0, 0, 1},
			Scale:       [3]float32{1, 1, 1},
		})
		indices[i] = idx
		nodeByBone[bone.Name] = idx

		parent := root
		if bone.Parent >= 0 && bone.Parent < i {
			parent = indices[bone.Parent]
		}
		doc.Nodes[parent].Children = append(doc.Nodes[parent].Children, idx)
	}
	return nodeByBone
}

func addClipAnimation(doc *gltf.Document, clip rig.Clip, nodeByBone map[string]uint32) {
	a := gltf.Animation{Name: clip.Name}

	for _, track := range clip.Tracks {
		n, ok := nodeByBone[track.BoneName]
		if !ok || len(track.Keys) == 0 {
			continue
		}

		keys := make([]float32, len(track.Keys))
		rotations := make([][4]float32, len(track.Keys))
		translations := make([][3]float32, len(track.Keys))
		for i, key := range track.Keys {
			keys[i] = (key.Frame - clip.From) / framesPerSecond
			rotations[i] = key.Rotation
			translations[i] = key.Translation
		}
		keysAcc := modeler.WriteAccessor(doc, gltf.TargetArrayBuffer, keys)

		rotAcc := modeler.WriteTangent(doc, rotations)
		a.Samplers = append(a.Samplers, &gltf.AnimationSampler{
			Input:         keysAcc,
			Output:        rotAcc,
			Interpolation: gltf.InterpolationLinear,
		})
		a.Channels = append(a.Channels, &gltf.Channel{
			Sampler: gltf.Index(uint32(len(a.Samplers) - 1)),
			Target: gltf.ChannelTarget{
				Node: gltf.Index(n),
				Path: gltf.TRSRotation,
			},
		})

		posAcc := modeler.WritePosition(doc, translations)
		a.Samplers = append(a.Samplers, &gltf.AnimationSampler{
			Input:         keysAcc,
			Output:        posAcc,
			Interpolation: gltf.InterpolationLinear,
		})
		a.Channels = append(a.Channels, &gltf.Channel{
			Sampler: gltf.Index(uint32(len(a.Samplers) - 1)),
			Target: gltf.ChannelTarget{
				Node: gltf.Index(n),
				Path: gltf.TRSTranslation,
			},
		})
	}

	if len(a.Channels) > 0 {
		doc.Animations = append(doc.Animations, &a)
	}
}

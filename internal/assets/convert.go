package assets

import (
	"fmt"
	"unsafe"

	"rigforge/internal/rig"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Skeleton extracts the bone hierarchy from a loaded model. Bind-pose
// offsets are rebased from raylib's model-space transforms to
// parent-relative ones, which is what the rig sampler expects.
func Skeleton(model rl.Model) []rig.Bone {
	bones, bind := modelBones(model)
	if bones == nil {
		return nil
	}

	out := make([]rig.Bone, len(bones))
	for i, info := range bones {
		local := bind[i].Translation
		if p := int(info.Parent); p >= 0 && p < len(bones) {
			invParent := rl.QuaternionInvert(bind[p].Rotation)
			local = rl.Vector3RotateByQuaternion(rl.Vector3Subtract(bind[i].Translation, bind[p].Translation), invParent)
		}
		out[i] = rig.Bone{
			Name:     boneName(info.Name),
			Parent:   int(info.Parent),
			Position: [3]float32{local.X, local.Y, local.Z},
		}
	}
	return out
}

// ClipFromAnimation converts a raylib animation into a rig clip with one
// track per bone. Frame poses come out of raylib in model space, so each
// pose is rebased against its parent's pose for the same frame.
func ClipFromAnimation(anim rl.ModelAnimation, name string) rig.Clip {
	clip := rig.Clip{
		Name: name,
		From: 0,
		To:   float32(anim.FrameCount - 1),
	}
	if anim.BoneCount == 0 || anim.FrameCount == 0 {
		return clip
	}

	bones := unsafe.Slice(anim.Bones, anim.BoneCount)
	framePtrs := unsafe.Slice(anim.FramePoses, anim.FrameCount)

	clip.Tracks = make([]rig.Track, anim.BoneCount)
	for b := range bones {
		clip.Tracks[b] = rig.Track{
			BoneName: boneName(bones[b].Name),
			Keys:     make([]rig.Keyframe, anim.FrameCount),
		}
	}

	for f := int32(0); f < anim.FrameCount; f++ {
		poses := unsafe.Slice(framePtrs[f], anim.BoneCount)
		for b := range bones {
			pose := poses[b]
			localPos := pose.Translation
			localRot := pose.Rotation
			if p := int(bones[b].Parent); p >= 0 && p < len(bones) {
				invParent := rl.QuaternionInvert(poses[p].Rotation)
				localPos = rl.Vector3RotateByQuaternion(rl.Vector3Subtract(pose.Translation, poses[p].Translation), invParent)
				localRot = rl.QuaternionMultiply(invParent, pose.Rotation)
			}
			clip.Tracks[b].Keys[f] = rig.Keyframe{
				Frame:       float32(f),
				Translation: [3]float32{localPos.X, localPos.Y, localPos.Z},
				Rotation:    [4]float32{localRot.X, localRot.Y, localRot.Z, localRot.W},
				Scale:       [3]float32{pose.Scale.X, pose.Scale.Y, pose.Scale.Z},
			}
		}
	}
	return clip
}

// AnimationName reads the clip name baked into the animation data,
// falling back to a numbered name when the file carries none.
func AnimationName(anim rl.ModelAnimation, index int) string {
	var rawName [32]int8
	for i, c := range anim.Name {
		rawName[i] = int8(c)
	}
	if name := boneName(rawName); name != "" {
		return name
	}
	return fmt.Sprintf("clip_%d", index)
}

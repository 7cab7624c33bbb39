package components

import (
	"rigforge/internal/engine"
	"rigforge/internal/rig"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Animator plays a rig clip over a skeleton and keeps the posed bone
// positions around for drawing. Sampling is done in Go so retargeted
// clips play without round-tripping through raylib animation data.
type Animator struct {
	engine.BaseComponent
	Bones []rig.Bone
	Speed float32

	clip      *rig.Clip
	frame     float32
	positions []rl.Vector3
	rotations []rl.Quaternion
}

func NewAnimator(bones []rig.Bone) *Animator {
	return &Animator{
		Bones: bones,
		Speed: 30.0,
	}
}

// Play switches to a clip and restarts it from its first frame. A nil
// clip freezes the skeleton in its bind pose.
func (a *Animator) Play(clip *rig.Clip) {
	if a.clip == clip {
		return
	}
	a.clip = clip
	if clip != nil {
		a.frame = clip.From
	}
}

func (a *Animator) Clip() *rig.Clip {
	return a.clip
}

func (a *Animator) Frame() float32 {
	return a.frame
}

func (a *Animator) Update(deltaTime float32) {
	if a.clip != nil {
		a.frame += deltaTime * a.Speed
		if a.frame > a.clip.To {
			span := a.clip.To - a.clip.From
			if span <= 0 {
				a.frame = a.clip.From
			} else {
				for a.frame > a.clip.To {
					a.frame -= span
				}
			}
		}
	}
	a.pose()
}

// pose runs forward kinematics over the skeleton, applying sampled
// track transforms where the clip has them and bind-pose offsets
// elsewhere. Bones are stored parent-first, so one pass suffices.
func (a *Animator) pose() {
	n := len(a.Bones)
	if cap(a.positions) < n {
		a.positions = make([]rl.Vector3, n)
		a.rotations = make([]rl.Quaternion, n)
	}
	a.positions = a.positions[:n]
	a.rotations = a.rotations[:n]

	for i, bone := range a.Bones {
		localPos := rl.Vector3{X: bone.Position[0], Y: bone.Position[1], Z: bone.Position[2]}
		localRot := rl.QuaternionIdentity()

		if a.clip != nil {
			if track := a.clip.TrackFor(bone.Name); track != nil {
				if key, ok := rig.SampleTrack(track, a.frame); ok {
					localPos = rl.Vector3{X: key.Translation[0], Y: key.Translation[1], Z: key.Translation[2]}
					localRot = rl.Quaternion{X: key.Rotation[0], Y: key.Rotation[1], Z: key.Rotation[2], W: key.Rotation[3]}
				}
			}
		}

		if bone.Parent >= 0 && bone.Parent < i {
			parentRot := a.rotations[bone.Parent]
			a.rotations[i] = rl.QuaternionMultiply(parentRot, localRot)
			a.positions[i] = rl.Vector3Add(a.positions[bone.Parent], rl.Vector3RotateByQuaternion(localPos, parentRot))
		} else {
			a.rotations[i] = localRot
			a.positions[i] = localPos
		}
	}
}

// BonePositions returns the posed global bone positions from the last
// Update. The slice is reused between frames.
func (a *Animator) BonePositions() []rl.Vector3 {
	return a.positions
}

package components

import (
	"rigforge/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RigRenderer draws the character model and, optionally, the posed
// skeleton from a sibling Animator as a line overlay.
type RigRenderer struct {
	engine.BaseComponent
	Model        rl.Model
	Tint         rl.Color
	ShowSkeleton bool
	BoneColor    rl.Color
	JointColor   rl.Color
}

func NewRigRenderer(model rl.Model) *RigRenderer {
	return &RigRenderer{
		Model:      model,
		Tint:       rl.White,
		BoneColor:  rl.Orange,
		JointColor: rl.Yellow,
	}
}

func (r *RigRenderer) Draw() {
	g := r.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	// Build scale matrix
	scale := g.Transform.Scale
	scaleMatrix := rl.MatrixScale(scale.X, scale.Y, scale.Z)

	// Build rotation matrix from Euler angles
	rot := g.Transform.Rotation
	rotX := rl.MatrixRotateX(rot.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(rot.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(rot.Z * rl.Deg2rad)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	// Build translation matrix
	pos := g.Transform.Position
	transMatrix := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)

	// Combine: scale -> rotate -> translate
	modelMatrix := rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)
	r.Model.Transform = modelMatrix

	rl.DrawModel(r.Model, rl.Vector3Zero(), 1.0, r.Tint)

	if r.ShowSkeleton {
		r.drawSkeleton(g, modelMatrix)
	}
}

func (r *RigRenderer) drawSkeleton(g *engine.GameObject, modelMatrix rl.Matrix) {
	animator := engine.GetComponent[*Animator](g)
	if animator == nil {
		return
	}
	positions := animator.BonePositions()
	if len(positions) == 0 {
		return
	}

	for i, bone := range animator.Bones {
		p := rl.Vector3Transform(positions[i], modelMatrix)
		rl.DrawSphere(p, 0.015, r.JointColor)
		if bone.Parent >= 0 && bone.Parent < len(positions) {
			parent := rl.Vector3Transform(positions[bone.Parent], modelMatrix)
			rl.DrawLine3D(parent, p, r.BoneColor)
		}
	}
}

func (r *RigRenderer) Unload() {
	rl.UnloadModel(r.Model)
}

package game

import (
	"fmt"

	"rigforge/internal/assets"
	"rigforge/internal/components"
	"rigforge/internal/engine"
	"rigforge/internal/rig"
	"rigforge/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Session is the editing state for one rig project: the loaded model
// and its skeleton, the source clips, the bone mapping, and the clips
// produced by retargeting through that mapping.
type Session struct {
	ProjectPath   string
	ModelPath     string
	AnimationPath string

	Model       rl.Model
	Bones       []rig.Bone
	SourceClips []rig.Clip
	Mapping     rig.MappingTable
	Retargeted  []rig.Clip
	Actions     map[string]string

	RigObject *engine.GameObject

	MappingChanged engine.Event
	ClipsChanged   engine.Event
}

func NewSession() *Session {
	return &Session{
		Mapping: rig.MappingTable{},
		Actions: map[string]string{},
	}
}

// LoadModel loads the character model and pulls its skeleton out. The
// rig object in the scene is rebuilt around the new model.
func (s *Session) LoadModel(w *world.World, path string) error {
	model := assets.LoadModel(path)
	bones := assets.Skeleton(model)
	if len(bones) == 0 {
		return fmt.Errorf("load model %s: no skeleton", path)
	}

	s.ModelPath = path
	s.Model = model
	s.Bones = bones

	if s.RigObject != nil {
		w.Scene.RemoveGameObject(s.RigObject)
	}
	s.RigObject = engine.NewGameObject("Rig")
	renderer := components.NewRigRenderer(model)
	renderer.ShowSkeleton = true
	s.RigObject.AddComponent(renderer)
	s.RigObject.AddComponent(components.NewAnimator(bones))
	w.Scene.AddGameObject(s.RigObject)
	s.RigObject.Start()

	return nil
}

// LoadAnimations loads source clips from a motion file. Clip names that
// collide with already loaded ones get replaced.
func (s *Session) LoadAnimations(path string) error {
	anims := assets.LoadAnimations(path)
	if len(anims) == 0 {
		return fmt.Errorf("load animations %s: no clips", path)
	}

	s.AnimationPath = path
	for i, anim := range anims {
		clip := assets.ClipFromAnimation(anim, assets.AnimationName(anim, i))
		if existing := s.sourceClipIndex(clip.Name); existing >= 0 {
			s.SourceClips[existing] = clip
		} else {
			s.SourceClips = append(s.SourceClips, clip)
		}
	}
	s.ClipsChanged.Invoke()
	return nil
}

func (s *Session) sourceClipIndex(name string) int {
	for i := range s.SourceClips {
		if s.SourceClips[i].Name == name {
			return i
		}
	}
	return -1
}

// SourceBoneNames collects every bone name the source clips animate, in
// first-seen order.
func (s *Session) SourceBoneNames() []string {
	seen := map[string]bool{}
	var names []string
	for _, clip := range s.SourceClips {
		for _, track := range clip.Tracks {
			if !seen[track.BoneName] {
				seen[track.BoneName] = true
				names = append(names, track.BoneName)
			}
		}
	}
	return names
}

// AutoMap replaces the mapping table with a generated one.
func (s *Session) AutoMap() {
	sources := s.SourceBoneNames()
	if len(sources) == 0 {
		return
	}
	s.Mapping = rig.AutoMap(sources, s.Bones)
	s.MappingChanged.Invoke()
}

// RetargetAll rebinds every source clip onto the skeleton through the
// current mapping.
func (s *Session) RetargetAll() {
	s.Retargeted = s.Retargeted[:0]
	for _, clip := range s.SourceClips {
		s.Retargeted = append(s.Retargeted, rig.Retarget(clip, s.Bones, s.Mapping))
	}
	s.ClipsChanged.Invoke()
}

// RetargetedClip finds a retargeted clip by name.
func (s *Session) RetargetedClip(name string) *rig.Clip {
	for i := range s.Retargeted {
		if s.Retargeted[i].Name == name {
			return &s.Retargeted[i]
		}
	}
	return nil
}

// ActionClip resolves a gameplay action to its bound retargeted clip.
func (s *Session) ActionClip(action string) *rig.Clip {
	name, ok := s.Actions[action]
	if !ok || name == "" {
		return nil
	}
	return s.RetargetedClip(name)
}

// SaveProject writes the session to a project file.
func (s *Session) SaveProject(w *world.World, path string) error {
	pf := &world.ProjectFile{
		ModelPath:     s.ModelPath,
		AnimationPath: s.AnimationPath,
		Mapping:       s.Mapping,
		Actions:       s.Actions,
	}
	pf.SetSpawnPoint(w.Spawn)

	if err := pf.Save(path); err != nil {
		return err
	}
	s.ProjectPath = path
	return nil
}

// LoadProject restores a session from a project file.
func (s *Session) LoadProject(w *world.World, path string) error {
	pf, err := world.LoadProject(path)
	if err != nil {
		return err
	}

	if pf.ModelPath != "" {
		if err := s.LoadModel(w, pf.ModelPath); err != nil {
			return err
		}
	}
	if pf.AnimationPath != "" {
		if err := s.LoadAnimations(pf.AnimationPath); err != nil {
			return err
		}
	}

	s.ProjectPath = path
	s.Mapping = pf.Mapping
	s.Actions = pf.Actions
	w.Spawn = pf.SpawnPoint()

	s.RetargetAll()
	s.MappingChanged.Invoke()
	return nil
}

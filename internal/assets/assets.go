package assets

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var manager *Manager

type Manager struct {
	models     map[string]rl.Model
	animations map[string][]rl.ModelAnimation
	textures   map[string]rl.Texture2D
}

func Init() {
	manager = &Manager{
		models:     make(map[string]rl.Model),
		animations: make(map[string][]rl.ModelAnimation),
		textures:   make(map[string]rl.Texture2D),
	}
}

func LoadModel(path string) rl.Model {
	if manager == nil {
		Init()
	}

	if model, exists := manager.models[path]; exists {
		return model
	}

	model := rl.LoadModel(path)
	manager.models[path] = model
	return model
}

func LoadAnimations(path string) []rl.ModelAnimation {
	if manager == nil {
		Init()
	}

	if anims, exists := manager.animations[path]; exists {
		return anims
	}

	anims := rl.LoadModelAnimations(path)
	manager.animations[path] = anims
	return anims
}

func LoadTexture(path string) rl.Texture2D {
	if manager == nil {
		Init()
	}

	if texture, exists := manager.textures[path]; exists {
		return texture
	}

	texture := rl.LoadTexture(path)
	manager.textures[path] = texture
	return texture
}

func Unload() {
	if manager == nil {
		return
	}

	for _, model := range manager.models {
		rl.UnloadModel(model)
	}

	for _, anims := range manager.animations {
		rl.UnloadModelAnimations(anims)
	}

	for _, texture := range manager.textures {
		rl.UnloadTexture(texture)
	}

	manager.models = make(map[string]rl.Model)
	manager.animations = make(map[string][]rl.ModelAnimation)
	manager.textures = make(map[string]rl.Texture2D)
}

// boneName converts raylib's fixed-size C name buffer to a Go string.
func boneName(raw [32]int8) string {
	buf := make([]byte, 0, len(raw))
	for _, c := range raw {
		if c == 0 {
			break
		}
		buf = append(buf, byte(c))
	}
	return string(buf)
}

func modelBones(model rl.Model) ([]rl.BoneInfo, []rl.Transform) {
	if model.BoneCount == 0 || model.Bones == nil {
		return nil, nil
	}
	bones := unsafe.Slice(model.Bones, model.BoneCount)
	bind := unsafe.Slice(model.BindPose, model.BoneCount)
	return bones, bind
}

package rig

// Bone is a plain value record for one joint of a skeleton. Parent is an
// index into the same skeleton's bone slice, -1 for roots. Position is the
// bind translation relative to the parent bone, used for skeleton drawing
// and export.
type Bone struct {
	Name     string
	Parent   int
	Position [3]float32
}

// FindBone returns the index of the bone with the given name, or -1.
func FindBone(bones []Bone, name string) int {
	for i, b := range bones {
		if b.Name == name {
			return i
		}
	}
	return -1
}

// BoneNames returns the names of a skeleton's bones in skeleton order.
func BoneNames(bones []Bone) []string {
	names := make([]string, len(bones))
	for i, b := range bones {
		names[i] = b.Name
	}
	return names
}

// Keyframe is one sampled parent-relative pose for a single bone.
type Keyframe struct {
	Frame       float32
	Translation [3]float32
	Rotation    [4]float32 // quaternion x, y, z, w
	Scale       [3]float32
}

// Track carries every keyframe of one bone within a clip.
type Track struct {
	BoneName string
	Keys     []Keyframe
}

// Clip bundles per-bone tracks with a playback frame range.
type Clip struct {
	Name   string
	From   float32
	To     float32
	Tracks []Track
}

// TrackFor returns the clip's track bound to the named bone, or nil.
func (c *Clip) TrackFor(boneName string) *Track {
	for i := range c.Tracks {
		if c.Tracks[i].BoneName == boneName {
			return &c.Tracks[i]
		}
	}
	return nil
}

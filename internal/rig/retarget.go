package rig

// Retarget rebuilds a clip's tracks against a different skeleton using the
// mapping table. Tracks whose source bone is unmapped are dropped: that is
// the supported way to exclude a bone's motion, not an error. Tracks whose
// mapped target no longer exists in the skeleton are dropped silently too,
// since a saved table may reference bones that were later removed.
//
// The playback range always carries over from the source clip, and the
// result never has more tracks than the input. A clip with zero surviving
// tracks is a valid result; it tells the caller to check the mapping.
func Retarget(clip Clip, targetBones []Bone, mapping MappingTable) Clip {
	out := Clip{
		Name: clip.Name,
		From: clip.From,
		To:   clip.To,
	}
	for _, track := range clip.Tracks {
		targetName, mapped := mapping.Resolve(track.BoneName)
		if !mapped {
			continue
		}
		if FindBone(targetBones, targetName) < 0 {
			continue
		}
		keys := make([]Keyframe, len(track.Keys))
		copy(keys, track.Keys)
		out.Tracks = append(out.Tracks, Track{BoneName: targetName, Keys: keys})
	}
	return out
}

package rig

import "math"

// SampleTrack evaluates a track at an arbitrary frame. Frames outside the
// keyed range clamp to the first or last key; frames between keys are
// linearly interpolated (normalized lerp for rotations, shortest path).
// Returns false when the track has no keys.
func SampleTrack(track *Track, frame float32) (Keyframe, bool) {
	if track == nil || len(track.Keys) == 0 {
		return Keyframe{}, false
	}
	keys := track.Keys
	if frame <= keys[0].Frame {
		return keys[0], true
	}
	last := keys[len(keys)-1]
	if frame >= last.Frame {
		return last, true
	}

	hi := 1
	for hi < len(keys) && keys[hi].Frame < frame {
		hi++
	}
	a, b := keys[hi-1], keys[hi]
	span := b.Frame - a.Frame
	if span <= 0 {
		return b, true
	}
	t := (frame - a.Frame) / span

	out := Keyframe{Frame: frame}
	for i := 0; i < 3; i++ {
		out.Translation[i] = a.Translation[i] + (b.Translation[i]-a.Translation[i])*t
		out.Scale[i] = a.Scale[i] + (b.Scale[i]-a.Scale[i])*t
	}
	out.Rotation = nlerp(a.Rotation, b.Rotation, t)
	return out, true
}

func nlerp(a, b [4]float32, t float32) [4]float32 {
	// Shortest path: flip one endpoint when the quaternions oppose.
	dot := a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
	sign := float32(1)
	if dot < 0 {
		sign = -1
	}
	var q [4]float32
	var lenSq float32
	for i := 0; i < 4; i++ {
		q[i] = a[i] + (sign*b[i]-a[i])*t
		lenSq += q[i] * q[i]
	}
	if lenSq == 0 {
		return [4]float32{0, 0, 0, 1}
	}
	inv := float32(1 / math.Sqrt(float64(lenSq)))
	for i := 0; i < 4; i++ {
		q[i] *= inv
	}
	return q
}

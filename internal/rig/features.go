package rig

import "strings"

// Side classifies which half of the body a bone name refers to.
type Side int

const (
	SideCenter Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "center"
}

// KeywordTag names a body part recognized inside a bone name.
type KeywordTag string

const (
	TagHead     KeywordTag = "head"
	TagNeck     KeywordTag = "neck"
	TagSpine    KeywordTag = "spine"
	TagHips     KeywordTag = "hips"
	TagLeg      KeywordTag = "leg"
	TagKnee     KeywordTag = "knee"
	TagFoot     KeywordTag = "foot"
	TagToes     KeywordTag = "toes"
	TagShoulder KeywordTag = "shoulder"
	TagArm      KeywordTag = "arm"
	TagElbow    KeywordTag = "elbow"
	TagHand     KeywordTag = "hand"
	TagFinger   KeywordTag = "finger"
	TagThumb    KeywordTag = "thumb"
	TagIndex    KeywordTag = "index"
	TagMiddle   KeywordTag = "middle"
	TagRing     KeywordTag = "ring"
	TagPinky    KeywordTag = "pinky"
)

// keywordVariants lists the substrings that mark each tag. Matching runs on
// normalized names, so every variant is lower-case with no separators.
// A name can match several tags ("leftForearmRoll" hits both arm and elbow).
var keywordVariants = map[KeywordTag][]string{
	TagHead:     {"head"},
	TagNeck:     {"neck"},
	TagSpine:    {"spine", "chest", "upperbody", "torso"},
	TagHips:     {"hip", "pelvis", "waist", "root"},
	TagLeg:      {"leg", "thigh", "upleg"},
	TagKnee:     {"knee", "calf", "shin", "lowerleg"},
	TagFoot:     {"foot", "ankle"},
	TagToes:     {"toe"},
	TagShoulder: {"shoulder", "clavicle", "collar"},
	TagArm:      {"arm", "upperarm"},
	TagElbow:    {"elbow", "forearm", "lowerarm"},
	TagHand:     {"hand", "wrist"},
	TagFinger:   {"finger"},
	TagThumb:    {"thumb"},
	TagIndex:    {"index"},
	TagMiddle:   {"middle"},
	TagRing:     {"ring"},
	TagPinky:    {"pinky", "little"},
}

var (
	leftMarkers  = []string{"l", "left"}
	rightMarkers = []string{"r", "right"}
)

// Features holds the name-derived traits used to score bone pairs.
type Features struct {
	Side     Side
	Keywords map[KeywordTag]bool
}

// Normalize lower-cases a bone name and strips separators so that
// "mixamorig:LeftArm" and "left_arm" compare on equal footing.
// Idempotent: normalizing twice gives the same string.
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch r {
		case '-', '_', '.', ':':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ExtractFeatures derives side and body-part keywords from a normalized
// bone name. Left markers are checked before right markers, so a name
// containing both resolves to left. Always returns a value; a name that
// matches nothing is center with an empty keyword set.
func ExtractFeatures(normalized string) Features {
	f := Features{Side: SideCenter, Keywords: map[KeywordTag]bool{}}

	for _, m := range leftMarkers {
		if strings.Contains(normalized, m) {
			f.Side = SideLeft
			break
		}
	}
	if f.Side == SideCenter {
		for _, m := range rightMarkers {
			if strings.Contains(normalized, m) {
				f.Side = SideRight
				break
			}
		}
	}

	for tag, variants := range keywordVariants {
		for _, v := range variants {
			if strings.Contains(normalized, v) {
				f.Keywords[tag] = true
				break
			}
		}
	}
	return f
}

package rig

// Scoring constants. The exact values only matter relative to each other:
// a shared non-center side outweighs any single keyword, and keyword
// overlap accumulates per matched tag.
const (
	sideMatchBonus  = 50 // both bones on the same non-center side
	sideCenterBonus = 25 // one of the two is center
	keywordBonus    = 20 // per keyword tag present in both names
	bothMeaningful  = 1  // both have keywords but none in common
	minViableScore  = 1  // pairs at or below this carry no evidence

	// scoreInvalid marks a pair that must never be matched, regardless of
	// any keyword evidence: a left bone cannot drive a right bone.
	scoreInvalid = -1
)

// scorePair rates how plausible it is that two bones correspond, based only
// on their name features. Returns scoreInvalid for opposite sides.
func scorePair(src, dst Features) int {
	score := 0
	switch {
	case src.Side == dst.Side && src.Side != SideCenter:
		score += sideMatchBonus
	case src.Side == SideCenter || dst.Side == SideCenter:
		score += sideCenterBonus
	default:
		return scoreInvalid
	}

	overlap := 0
	for tag := range src.Keywords {
		if dst.Keywords[tag] {
			overlap++
		}
	}
	if overlap > 0 {
		score += overlap * keywordBonus
	} else if len(src.Keywords) > 0 && len(dst.Keywords) > 0 {
		score += bothMeaningful
	}
	return score
}

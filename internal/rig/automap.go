package rig

import "sort"

type scoredPair struct {
	source string
	target string
	score  int
	ord    int // enumeration order: source outer, target inner
}

// AutoMap infers a source-to-target bone correspondence from name features
// alone. It is total: every source name receives an entry. Pairs are scored,
// sorted best-first, and committed greedily with no bone reused; sources
// left over fall back to an identical-name match, then to themselves.
// Pure and deterministic for a given input ordering.
func AutoMap(sourceNames []string, targetBones []Bone) MappingTable {
	return autoMapNames(sourceNames, BoneNames(targetBones))
}

func autoMapNames(sourceNames, targetNames []string) MappingTable {
	features := make(map[string]Features, len(sourceNames)+len(targetNames))
	for _, n := range sourceNames {
		if _, ok := features[n]; !ok {
			features[n] = ExtractFeatures(Normalize(n))
		}
	}
	for _, n := range targetNames {
		if _, ok := features[n]; !ok {
			features[n] = ExtractFeatures(Normalize(n))
		}
	}

	pairs := make([]scoredPair, 0, len(sourceNames)*len(targetNames))
	for _, s := range sourceNames {
		for _, t := range targetNames {
			score := scorePair(features[s], features[t])
			if score <= minViableScore {
				continue
			}
			pairs = append(pairs, scoredPair{source: s, target: t, score: score, ord: len(pairs)})
		}
	}

	// Best score first; equal scores keep enumeration order so the result
	// does not depend on map iteration.
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].score != pairs[j].score {
			return pairs[i].score > pairs[j].score
		}
		return pairs[i].ord < pairs[j].ord
	})

	mapping := MappingTable{}
	usedTargets := make(map[string]bool, len(targetNames))
	for _, p := range pairs {
		if _, done := mapping[p.source]; done {
			continue
		}
		if usedTargets[p.target] {
			continue
		}
		mapping[p.source] = p.target
		usedTargets[p.target] = true
	}

	// Fallback: exact-name match if that target is still free, otherwise a
	// self-mapping the user can fix by hand. Never leave a source absent.
	targetSet := make(map[string]bool, len(targetNames))
	for _, t := range targetNames {
		targetSet[t] = true
	}
	for _, s := range sourceNames {
		if _, done := mapping[s]; done {
			continue
		}
		if targetSet[s] && !usedTargets[s] {
			usedTargets[s] = true
		}
		mapping[s] = s
	}
	return mapping
}

// CandidateTargets lists the viable targets for one source bone, best score
// first. The mapping panel uses this to cycle a row through plausible
// alternatives instead of the full skeleton.
func CandidateTargets(sourceName string, targetBones []Bone) []string {
	src := ExtractFeatures(Normalize(sourceName))
	type cand struct {
		name  string
		score int
		ord   int
	}
	cands := make([]cand, 0, len(targetBones))
	for i, b := range targetBones {
		score := scorePair(src, ExtractFeatures(Normalize(b.Name)))
		if score <= minViableScore {
			continue
		}
		cands = append(cands, cand{name: b.Name, score: score, ord: i})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		return cands[i].ord < cands[j].ord
	})
	names := make([]string, len(cands))
	for i, c := range cands {
		names[i] = c.name
	}
	return names
}

package leads

import (
	"sort"

	"github.com/prospekt/leadrank/core"
	"github.com/prospekt/leadrank/dedup"
)

// resolveIdentities is the post-scoring identity pass: candidates are
// grouped by their identity key and only the highest-scoring entry per
// group survives. Scoring can reveal collisions the fingerprint pass
// missed, so this runs after ScoreAll even though both passes share the
// same grouping key. Output is sorted by final score, best first.
func resolveIdentities(candidates []*core.ScoredCandidate) []*core.ScoredCandidate {
	best := make(map[string]*core.ScoredCandidate, len(candidates))
	order := make([]string, 0, len(candidates))

	for _, candidate := range candidates {
		key := dedup.GroupKey(candidate.Record)
		current, ok := best[key]
		if !ok {
			best[key] = candidate
			order = append(order, key)
			continue
		}
		if candidate.FinalScore > current.FinalScore {
			best[key] = candidate
		}
	}

	resolved := make([]*core.ScoredCandidate, 0, len(order))
	for _, key := range order {
		resolved = append(resolved, best[key])
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].FinalScore > resolved[j].FinalScore
	})
	return resolved
}

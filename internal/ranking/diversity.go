package ranking

import (
	"strings"

	"github.com/jonathan/candidate-matcher/internal/types"
)

// Diversity bonuses per under-represented attribute. Scores stay in [0,1].
const (
	institutionBonus = 0.5
	experienceBonus  = 0.5
)

// diversityScores computes a [0,1] diversity bonus per candidate, rewarding
// under-represented institution and experience-level categories within the
// ranked pool. The computation depends only on the pool itself, so rankings
// remain fully deterministic for fixed inputs.
func diversityScores(results []types.MatchResult, profiles map[string]*types.CandidateProfile) map[string]float64 {
	n := len(results)
	scores := make(map[string]float64, n)
	if n == 0 {
		return scores
	}

	institutionCounts := make(map[string]int)
	levelCounts := make(map[string]int)
	for _, r := range results {
		p := profiles[r.CandidateID]
		institutionCounts[institutionKey(p)]++
		levelCounts[experienceLevel(p)]++
	}

	for _, r := range results {
		p := profiles[r.CandidateID]
		score := 0.0
		// Fewer than a third of the pool from the same institution group.
		if institutionCounts[institutionKey(p)]*3 < n {
			score += institutionBonus
		}
		// Fewer than half of the pool at the same experience level.
		if levelCounts[experienceLevel(p)]*2 < n {
			score += experienceBonus
		}
		scores[r.CandidateID] = score
	}
	return scores
}

func institutionKey(p *types.CandidateProfile) string {
	if p == nil || strings.TrimSpace(p.Institution) == "" {
		return "unknown"
	}
	return strings.ToLower(strings.TrimSpace(p.Institution))
}

// experienceLevel buckets candidates into junior/mid/senior bands.
func experienceLevel(p *types.CandidateProfile) string {
	if p == nil {
		return "unknown"
	}
	switch {
	case p.TotalExperienceYears >= 7:
		return "senior"
	case p.TotalExperienceYears >= 3:
		return "mid"
	default:
		return "junior"
	}
}

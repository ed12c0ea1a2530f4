package matching

import (
	"strings"

	"github.com/jonathan/candidate-matcher/internal/types"
)

// tierRank orders institution tier buckets; higher is better. Tier keys
// follow the tier1/tier2/tier3 convention of the job requirements payload.
func tierRank(tier string) int {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case "tier1":
		return 3
	case "tier2":
		return 2
	case "tier3":
		return 1
	default:
		return 0
	}
}

// ScoreEducation scores a candidate's highest degree and institution against
// the job's requirements. The degree sets the base: meeting or exceeding the
// required level earns DegreeMetBase, with lowered bases by ordinal distance
// below it (never zero here; a hard degree requirement belongs in the
// mandatory gate). Preferred or top-tier institutions add TopTierBonus,
// middle-tier institutions MiddleTierBonus.
func ScoreEducation(job *types.JobRequirements, candidate *types.CandidateProfile, params ScoringParams) float64 {
	base := params.DegreeMetBase
	if job.RequiredDegree != types.DegreeNone {
		gap := job.RequiredDegree.Rank() - candidate.HighestDegree.Rank()
		switch {
		case gap <= 0:
			base = params.DegreeMetBase
		case gap == 1:
			base = params.DegreeOneBelowBase
		default:
			base = params.DegreeFarBelowBase
		}
	}

	return clamp01(base + institutionBonus(job, candidate.Institution, params))
}

// institutionBonus looks the candidate's institution up in the preferred list
// and the tier buckets. Matching is case-insensitive substring containment in
// either direction, so "MIT" matches "Massachusetts Institute of Technology
// (MIT)".
func institutionBonus(job *types.JobRequirements, institution string, params ScoringParams) float64 {
	inst := strings.ToLower(strings.TrimSpace(institution))
	if inst == "" {
		return 0
	}

	for _, preferred := range job.PreferredInstitutions {
		if institutionMatches(inst, preferred) {
			return params.TopTierBonus
		}
	}

	bestRank := 0
	for tier, institutions := range job.InstitutionTiers {
		rank := tierRank(tier)
		if rank <= bestRank {
			continue
		}
		for _, candidate := range institutions {
			if institutionMatches(inst, candidate) {
				bestRank = rank
				break
			}
		}
	}

	switch bestRank {
	case 3:
		return params.TopTierBonus
	case 2:
		return params.MiddleTierBonus
	default:
		return 0
	}
}

func institutionMatches(normalized, listed string) bool {
	l := strings.ToLower(strings.TrimSpace(listed))
	if l == "" {
		return false
	}
	return strings.Contains(normalized, l) || strings.Contains(l, normalized)
}

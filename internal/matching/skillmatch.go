package matching

import (
	"github.com/jonathan/candidate-matcher/internal/skills"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// SkillMatch is the skill component outcome for one candidate.
type SkillMatch struct {
	Score         float64
	MatchedSkills []string // job skills matched at partial credit or better
	MissingSkills []string // required skills with no match at all
}

// ScoreSkills compares candidate skills against the job's required and
// preferred skill lists. Each job skill earns exact, partial (synonym), or
// related (shared category) credit. Required and preferred lists are scored
// separately and blended; a job with no preferred skills scores the preferred
// component as 1.0 so the absence of a preference never penalizes.
func ScoreSkills(job *types.JobRequirements, candidate *types.CandidateProfile, dict *skills.Dictionary, params ScoringParams) SkillMatch {
	candidateSkills := skills.NormalizeAll(candidate.SkillNames())
	required := skills.NormalizeAll(job.RequiredSkills)
	preferred := skills.NormalizeAll(job.PreferredSkills)

	match := SkillMatch{}
	if len(required) == 0 && len(preferred) == 0 {
		match.Score = 1.0
		return match
	}

	requiredScore := 1.0
	if len(required) > 0 {
		sum := 0.0
		for _, jobSkill := range required {
			credit := bestCredit(jobSkill, candidateSkills, dict, params)
			sum += credit
			switch {
			case credit >= params.PartialCredit:
				match.MatchedSkills = append(match.MatchedSkills, jobSkill)
			case credit == 0:
				match.MissingSkills = append(match.MissingSkills, jobSkill)
			}
		}
		requiredScore = sum / float64(len(required))
	}

	preferredScore := 1.0 // no preferred skills listed must never penalize
	if len(preferred) > 0 {
		sum := 0.0
		for _, jobSkill := range preferred {
			credit := bestCredit(jobSkill, candidateSkills, dict, params)
			sum += credit
			if credit >= params.PartialCredit {
				match.MatchedSkills = append(match.MatchedSkills, jobSkill)
			}
		}
		preferredScore = sum / float64(len(preferred))
	}

	match.Score = clamp01(params.RequiredShare*requiredScore + params.PreferredShare*preferredScore)
	return match
}

// bestCredit returns the highest credit any candidate skill earns against one
// job skill: exact > partial (synonym) > related (same category) > missing.
func bestCredit(jobSkill string, candidateSkills []string, dict *skills.Dictionary, params ScoringParams) float64 {
	best := 0.0
	for _, have := range candidateSkills {
		switch {
		case have == jobSkill:
			return params.ExactCredit
		case dict.AreSynonyms(jobSkill, have):
			if params.PartialCredit > best {
				best = params.PartialCredit
			}
		case dict.ShareCategory(jobSkill, have):
			if params.RelatedCredit > best {
				best = params.RelatedCredit
			}
		}
	}
	return best
}

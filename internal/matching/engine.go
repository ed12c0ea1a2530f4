package matching

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/candidate-matcher/internal/skills"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// Engine combines the component evaluators into a weighted overall score.
type Engine struct {
	params ScoringParams
	dict   *skills.Dictionary
	logger *zap.Logger
}

// NewEngine creates a scoring engine. A nil dictionary falls back to the
// built-in defaults; a nil logger disables logging.
func NewEngine(params ScoringParams, dict *skills.Dictionary, logger *zap.Logger) *Engine {
	if dict == nil {
		dict = skills.DefaultDictionary()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{params: params, dict: dict, logger: logger}
}

// Params returns the engine's scoring constants.
func (e *Engine) Params() ScoringParams {
	return e.params
}

// ScoreCandidate produces the unranked match result for one gate-surviving
// candidate. The overall score is 100 times the weighted blend of the
// component scores. A missing embedding degrades the semantic component to
// 0.0 (logged, recorded via degraded) instead of failing the match.
func (e *Engine) ScoreCandidate(job *types.JobRequirements, candidate *types.CandidateProfile, weights types.ScoringWeights) (result types.MatchResult, degraded bool) {
	skillMatch := ScoreSkills(job, candidate, e.dict, e.params)
	experienceScore := ScoreExperience(candidate.TotalExperienceYears, job.RequiredExperienceYears, job.PreferredExperienceYears, e.params)
	educationScore := ScoreEducation(job, candidate, e.params)

	semanticScore := 0.0
	if weights.UsesSemantic() {
		var ok bool
		semanticScore, ok = ScoreSemantic(job.Embedding, candidate.Embedding)
		if !ok {
			degraded = true
			e.logger.Warn("semantic score degraded to 0.0: embedding unavailable",
				zap.String("candidate_id", candidate.CandidateID))
		}
	}

	components := types.ComponentScores{
		Skills:     skillMatch.Score,
		Experience: experienceScore,
		Education:  educationScore,
		Semantic:   semanticScore,
	}

	overall := 100 * (weights.Skills*components.Skills +
		weights.Experience*components.Experience +
		weights.Education*components.Education +
		weights.Semantic*components.Semantic)

	result = types.MatchResult{
		CandidateID:       candidate.CandidateID,
		OverallScore:      overall,
		ComponentScores:   components,
		MatchedSkills:     skillMatch.MatchedSkills,
		MissingSkills:     skillMatch.MissingSkills,
		ExperienceSummary: ExperienceSummary(candidate.TotalExperienceYears, job.RequiredExperienceYears, job.PreferredExperienceYears),
		Explanation:       explain(overall, components, skillMatch, weights),
	}
	return result, degraded
}

// explain summarizes which factors drove the score.
func explain(overall float64, components types.ComponentScores, skillMatch SkillMatch, weights types.ScoringWeights) string {
	var parts []string

	switch {
	case overall >= 80:
		parts = append(parts, "Excellent match with strong alignment across criteria")
	case overall >= 60:
		parts = append(parts, "Good match with solid qualifications")
	case overall >= 40:
		parts = append(parts, "Moderate match with some gaps")
	default:
		parts = append(parts, "Limited match with significant gaps")
	}

	switch {
	case components.Skills >= 0.8:
		parts = append(parts, fmt.Sprintf("Strong skills match (%.0f%%)", components.Skills*100))
	case components.Skills >= 0.5:
		parts = append(parts, fmt.Sprintf("Partial skills match (%.0f%%)", components.Skills*100))
	}
	if len(skillMatch.MissingSkills) > 0 {
		parts = append(parts, fmt.Sprintf("Missing %d required skill(s): %s",
			len(skillMatch.MissingSkills), strings.Join(skillMatch.MissingSkills, ", ")))
	}

	if components.Experience >= 0.8 {
		parts = append(parts, "Meets experience requirement")
	} else if components.Experience < 0.6 {
		parts = append(parts, "Below experience requirement")
	}

	if weights.Education > 0 && components.Education >= 0.8 {
		parts = append(parts, "Strong education match")
	}
	if weights.UsesSemantic() && components.Semantic >= 0.75 {
		parts = append(parts, "High semantic similarity to the job description")
	}

	return strings.Join(parts, ". ") + "."
}

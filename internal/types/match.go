package types

import (
	"time"

	"github.com/google/uuid"
)

// ComponentScores holds the four sub-scores, each in [0,1], that blend into
// the overall score. They are produced fresh per (job, candidate) pair.
type ComponentScores struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Semantic   float64 `json:"semantic"`
}

// MatchResult is the scored, ranked outcome for one candidate that survived
// the mandatory gate. Rank is assigned only after the whole pool is scored.
type MatchResult struct {
	CandidateID        string          `json:"candidate_id"`
	OverallScore       float64         `json:"overall_score"` // 0-100
	ComponentScores    ComponentScores `json:"component_scores"`
	Rank               int             `json:"rank"`
	MatchedSkills      []string        `json:"matched_skills,omitempty"`
	MissingSkills      []string        `json:"missing_skills,omitempty"`
	ExperienceSummary  string          `json:"experience_summary,omitempty"`
	Explanation        string          `json:"explanation,omitempty"`
	RankingExplanation string          `json:"ranking_explanation,omitempty"`
	// DiversityScore is set only when diversity-adjusted ranking ran.
	DiversityScore float64 `json:"diversity_score,omitempty"`
}

// BiasDimension is one analyzed bias axis in a BiasReport.
type BiasDimension struct {
	Detected bool     `json:"detected"`
	Score    float64  `json:"score"` // 0 (none) to 1 (high)
	Matches  []string `json:"matches,omitempty"`
}

// BiasReport summarizes bias signals found in the job text and the ranking
// distribution. It is informational only and never alters scores or ranks.
type BiasReport struct {
	OverallBiasScore float64       `json:"overall_bias_score"`
	GenderBias       BiasDimension `json:"gender_bias"`
	AgeBias          BiasDimension `json:"age_bias"`
	InstitutionBias  BiasDimension `json:"institution_bias"`
	Recommendations  []string      `json:"recommendations,omitempty"`
}

// MatchRun is the complete output of one orchestrator invocation. It is
// immutable once returned and may be cached keyed by the run fingerprint.
type MatchRun struct {
	RunID             uuid.UUID     `json:"run_id"`
	JobID             uuid.UUID     `json:"job_id"`
	CandidatesMatched int           `json:"candidates_matched"`
	RankedResults     []MatchResult `json:"ranked_results"`
	BiasReport        *BiasReport   `json:"bias_report,omitempty"`
	// Warnings records per-candidate data errors and degraded components.
	// These never fail the run; they are surfaced for caller visibility.
	Warnings              []string  `json:"warnings,omitempty"`
	ProcessingTimeSeconds float64   `json:"processing_time_seconds"`
	StrategyUsed          Strategy  `json:"strategy_used"`
	CreatedAt             time.Time `json:"created_at"`
}

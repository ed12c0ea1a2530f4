// Package types defines the domain model for the candidate matching pipeline:
// job requirements, candidate profiles, scores, match results, and the error
// taxonomy shared across packages.
package types

import "github.com/google/uuid"

// MandatoryRequirements are hard constraints. A candidate failing any of them
// is excluded from scoring and ranking entirely, not merely down-scored.
type MandatoryRequirements struct {
	Skills             []string    `json:"skills,omitempty"`
	MinExperienceYears float64     `json:"min_experience_years,omitempty"`
	RequiredDegree     DegreeLevel `json:"required_degree,omitempty"`
}

// IsZero reports whether no mandatory requirements are set.
func (m MandatoryRequirements) IsZero() bool {
	return len(m.Skills) == 0 && m.MinExperienceYears == 0 && m.RequiredDegree == DegreeNone
}

// JobRequirements is the immutable per-run input describing what a job needs.
// It is created from a job posting at match time and never mutated during
// matching.
type JobRequirements struct {
	JobID       uuid.UUID `json:"job_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`

	RequiredSkills  []string `json:"required_skills,omitempty"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`

	RequiredExperienceYears  float64 `json:"required_experience_years,omitempty"`
	PreferredExperienceYears float64 `json:"preferred_experience_years,omitempty"`

	RequiredDegree        DegreeLevel         `json:"required_degree,omitempty"`
	PreferredInstitutions []string            `json:"preferred_institutions,omitempty"`
	InstitutionTiers      map[string][]string `json:"institution_tiers,omitempty"`

	Mandatory MandatoryRequirements `json:"mandatory,omitempty"`

	// Embedding is the precomputed vector for the job title+description.
	// When nil and an embedder is configured, the orchestrator generates it
	// on demand.
	Embedding []float32 `json:"embedding,omitempty"`
}

// FullText returns the job text used for embedding generation and bias
// analysis.
func (j *JobRequirements) FullText() string {
	if j.Description == "" {
		return j.Title
	}
	return j.Title + "\n" + j.Description
}

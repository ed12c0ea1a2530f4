package types

import (
	"math"
	"time"
)

// Skill is a single extracted candidate skill with the extraction confidence
// reported by the upstream NLP pipeline.
type Skill struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence,omitempty"`
}

// ExperienceEntry is one position in a candidate's work history, ordered most
// recent first by the upstream parser.
type ExperienceEntry struct {
	Company   string `json:"company,omitempty"`
	Title     string `json:"title,omitempty"`
	StartDate string `json:"start_date,omitempty"` // YYYY-MM
	EndDate   string `json:"end_date,omitempty"`   // YYYY-MM, empty when current
	Current   bool   `json:"current,omitempty"`
}

// CandidateProfile is the structured, already-parsed view of one resume. It is
// read-only input to scoring; the matching core never parses documents itself.
type CandidateProfile struct {
	CandidateID          string            `json:"candidate_id"`
	Skills               []Skill           `json:"skills,omitempty"`
	TotalExperienceYears float64           `json:"total_experience_years"`
	Experience           []ExperienceEntry `json:"experience,omitempty"`
	HighestDegree        DegreeLevel       `json:"highest_degree,omitempty"`
	Institution          string            `json:"institution,omitempty"`
	Embedding            []float32         `json:"embedding,omitempty"`
	// ResumeText is the cleaned resume text, used only to generate an
	// embedding on demand when one was not precomputed upstream.
	ResumeText string `json:"resume_text,omitempty"`
	// SubmittedAt is the resume submission timestamp, used as a ranking
	// tie-break (more recent wins).
	SubmittedAt time.Time `json:"submitted_at,omitempty"`
}

// SkillNames returns the candidate's skill names in declaration order.
func (c *CandidateProfile) SkillNames() []string {
	names := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		names = append(names, s.Name)
	}
	return names
}

// Validate checks that the profile carries the fields the mandatory gate
// needs. A failing profile yields a DataError: the orchestrator drops that one
// candidate with a warning instead of failing the run.
func (c *CandidateProfile) Validate() error {
	if c.CandidateID == "" {
		return &DataError{Reason: "missing candidate_id"}
	}
	if math.IsNaN(c.TotalExperienceYears) || c.TotalExperienceYears < 0 {
		return &DataError{CandidateID: c.CandidateID, Reason: "invalid total_experience_years"}
	}
	return nil
}

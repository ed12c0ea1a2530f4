package matching

import (
	"fmt"

	"github.com/jonathan/candidate-matcher/internal/skills"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// GateResult is the outcome of the mandatory requirements check for one
// candidate.
type GateResult struct {
	Passed bool
	Reason string
}

// EvaluateGate applies the job's mandatory requirements to a candidate.
// Failing any requirement excludes the candidate from scoring and ranking
// entirely: mandatory requirements model constraints that cannot be satisfied
// partially. Skill matching here is a plain normalized (case-insensitive,
// trimmed) comparison; partial credit does not apply to hard requirements.
func EvaluateGate(job *types.JobRequirements, candidate *types.CandidateProfile) GateResult {
	mandatory := job.Mandatory
	if mandatory.IsZero() {
		return GateResult{Passed: true}
	}

	if len(mandatory.Skills) > 0 {
		have := make(map[string]bool, len(candidate.Skills))
		for _, s := range candidate.Skills {
			have[skills.Normalize(s.Name)] = true
		}
		for _, required := range mandatory.Skills {
			if !have[skills.Normalize(required)] {
				return GateResult{Passed: false, Reason: fmt.Sprintf("missing mandatory skill %q", required)}
			}
		}
	}

	if mandatory.MinExperienceYears > 0 && candidate.TotalExperienceYears < mandatory.MinExperienceYears {
		return GateResult{
			Passed: false,
			Reason: fmt.Sprintf("%.1f years of experience below mandatory minimum %.1f", candidate.TotalExperienceYears, mandatory.MinExperienceYears),
		}
	}

	if mandatory.RequiredDegree != types.DegreeNone && !candidate.HighestDegree.Meets(mandatory.RequiredDegree) {
		return GateResult{
			Passed: false,
			Reason: fmt.Sprintf("highest degree %q below mandatory %q", candidate.HighestDegree, mandatory.RequiredDegree),
		}
	}

	return GateResult{Passed: true}
}

package matching

import "fmt"

// ScoreExperience scores total experience years against the required and
// preferred thresholds:
//
//   - no requirement → 1.0
//   - below required → proportional partial credit (total/required)
//   - between required and preferred → linear interpolation from
//     MeetsRequirementBase up to 1.0
//   - beyond preferred → diminishing returns: a small per-year decay floored
//     at OverQualFloor, so extreme over-qualification is a mild signal but
//     never disqualifying
//
// A preferred threshold that is unset or not above required degenerates to
// preferred = required: anything at or above required scores 1.0 before the
// over-qualification decay.
func ScoreExperience(totalYears, requiredYears, preferredYears float64, params ScoringParams) float64 {
	if requiredYears <= 0 {
		return 1.0
	}
	if preferredYears <= requiredYears {
		preferredYears = requiredYears
	}

	switch {
	case totalYears < requiredYears:
		return clamp01(totalYears / requiredYears)
	case totalYears <= preferredYears:
		if preferredYears == requiredYears {
			return 1.0
		}
		progress := (totalYears - requiredYears) / (preferredYears - requiredYears)
		return clamp01(params.MeetsRequirementBase + progress*(1.0-params.MeetsRequirementBase))
	default:
		excess := totalYears - preferredYears
		score := 1.0 - excess*params.OverQualDecayPerYear
		if score < params.OverQualFloor {
			score = params.OverQualFloor
		}
		return score
	}
}

// ExperienceSummary renders a short human-readable description of the
// candidate's experience relative to the job's thresholds.
func ExperienceSummary(totalYears, requiredYears, preferredYears float64) string {
	if requiredYears <= 0 {
		return fmt.Sprintf("%.1f years of experience (no requirement)", totalYears)
	}
	if totalYears < requiredYears {
		return fmt.Sprintf("%.1f years of experience, below the required %.1f", totalYears, requiredYears)
	}
	if preferredYears > requiredYears && totalYears > preferredYears {
		return fmt.Sprintf("%.1f years of experience, exceeding the preferred %.1f", totalYears, preferredYears)
	}
	return fmt.Sprintf("%.1f years of experience, meets the required %.1f", totalYears, requiredYears)
}

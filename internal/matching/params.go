// Package matching implements the mandatory requirements gate, the four
// component evaluators (skills, experience, education, semantic similarity),
// and the scoring engine that blends them into an overall match score.
package matching

// ScoringParams holds the tunable constants of the evaluators. The numeric
// values are configurable defaults; the qualitative policies (partial credit
// tiers, diminishing-not-disqualifying over-qualification, absence never
// penalizes) are fixed.
type ScoringParams struct {
	// Skill match credit tiers.
	ExactCredit   float64 // verbatim match after normalization
	PartialCredit float64 // synonym/alias match
	RelatedCredit float64 // same category, not a synonym

	// Blend between required and preferred skill scores.
	RequiredShare  float64
	PreferredShare float64

	// Experience band: score at exactly the required years, interpolating
	// linearly up to 1.0 at the preferred years.
	MeetsRequirementBase float64
	// Over-qualification decay applied per year beyond preferred, floored so
	// extreme over-qualification stays a mild signal.
	OverQualDecayPerYear float64
	OverQualFloor        float64

	// Education: base score when the degree meets the requirement, and the
	// lowered bases one and two-plus ordinal levels below it.
	DegreeMetBase      float64
	DegreeOneBelowBase float64
	DegreeFarBelowBase float64
	// Institution bonuses for preferred/top-tier and middle-tier schools.
	TopTierBonus    float64
	MiddleTierBonus float64

	// TieEpsilon is the overall-score distance within which two candidates
	// count as tied for ranking tie-breaks.
	TieEpsilon float64
}

// DefaultParams returns the default scoring constants.
func DefaultParams() ScoringParams {
	return ScoringParams{
		ExactCredit:   1.0,
		PartialCredit: 0.7,
		RelatedCredit: 0.3,

		RequiredShare:  0.7,
		PreferredShare: 0.3,

		MeetsRequirementBase: 0.8,
		OverQualDecayPerYear: 0.03,
		OverQualFloor:        0.85,

		DegreeMetBase:      0.7,
		DegreeOneBelowBase: 0.4,
		DegreeFarBelowBase: 0.1,
		TopTierBonus:       0.3,
		MiddleTierBonus:    0.15,

		TieEpsilon: 0.01,
	}
}

// clamp01 bounds a score to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

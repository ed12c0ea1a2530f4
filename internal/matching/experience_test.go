package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreExperience_NoRequirement(t *testing.T) {
	assert.Equal(t, 1.0, ScoreExperience(0, 0, 0, DefaultParams()))
	assert.Equal(t, 1.0, ScoreExperience(10, 0, 8, DefaultParams()))
}

func TestScoreExperience_BelowRequired(t *testing.T) {
	score := ScoreExperience(2, 4, 8, DefaultParams())

	assert.InDelta(t, 0.5, score, 0.001)
}

func TestScoreExperience_ExactlyAtRequired(t *testing.T) {
	score := ScoreExperience(4, 4, 8, DefaultParams())

	assert.InDelta(t, 0.8, score, 0.001)
}

func TestScoreExperience_MidwayToPreferred(t *testing.T) {
	score := ScoreExperience(6, 4, 8, DefaultParams())

	// halfway between the 0.8 base and 1.0
	assert.InDelta(t, 0.9, score, 0.001)
}

func TestScoreExperience_AtPreferred(t *testing.T) {
	score := ScoreExperience(8, 4, 8, DefaultParams())

	assert.InDelta(t, 1.0, score, 0.001)
}

func TestScoreExperience_OverQualifiedDecays(t *testing.T) {
	params := DefaultParams()
	atPreferred := ScoreExperience(8, 4, 8, params)
	slightlyOver := ScoreExperience(10, 4, 8, params)

	assert.Less(t, slightlyOver, atPreferred)
	assert.InDelta(t, 1.0-2*params.OverQualDecayPerYear, slightlyOver, 0.001)
}

func TestScoreExperience_OverQualificationFloored(t *testing.T) {
	params := DefaultParams()
	extreme := ScoreExperience(40, 4, 8, params)

	// extreme over-qualification stays a mild signal, never disqualifying
	assert.Equal(t, params.OverQualFloor, extreme)
	assert.GreaterOrEqual(t, extreme, 0.85)
	assert.Less(t, extreme, 1.0)
}

func TestScoreExperience_PreferredNotAboveRequired(t *testing.T) {
	// degenerate preferred collapses to required: meeting it scores 1.0
	assert.Equal(t, 1.0, ScoreExperience(4, 4, 0, DefaultParams()))
	assert.Equal(t, 1.0, ScoreExperience(4, 4, 4, DefaultParams()))
	assert.Equal(t, 1.0, ScoreExperience(4, 4, 2, DefaultParams()))
}

func TestExperienceSummary(t *testing.T) {
	assert.Contains(t, ExperienceSummary(3, 0, 0), "no requirement")
	assert.Contains(t, ExperienceSummary(2, 4, 8), "below the required")
	assert.Contains(t, ExperienceSummary(5, 4, 8), "meets the required")
	assert.Contains(t, ExperienceSummary(10, 4, 8), "exceeding the preferred")
}

package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateProfile_Validate_Valid(t *testing.T) {
	c := &CandidateProfile{CandidateID: "cand_001", TotalExperienceYears: 5}

	assert.NoError(t, c.Validate())
}

func TestCandidateProfile_Validate_MissingID(t *testing.T) {
	c := &CandidateProfile{TotalExperienceYears: 5}

	err := c.Validate()
	require.Error(t, err)

	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Contains(t, dataErr.Reason, "candidate_id")
}

func TestCandidateProfile_Validate_InvalidYears(t *testing.T) {
	negative := &CandidateProfile{CandidateID: "cand_002", TotalExperienceYears: -1}
	assert.Error(t, negative.Validate())

	nan := &CandidateProfile{CandidateID: "cand_003", TotalExperienceYears: math.NaN()}
	assert.Error(t, nan.Validate())
}

func TestCandidateProfile_SkillNames(t *testing.T) {
	c := &CandidateProfile{
		Skills: []Skill{{Name: "Go", Confidence: 0.9}, {Name: "SQL"}},
	}

	assert.Equal(t, []string{"Go", "SQL"}, c.SkillNames())
}

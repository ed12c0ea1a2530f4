package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/candidate-matcher/internal/types"
)

func TestDiversityScores_UnderrepresentedInstitution(t *testing.T) {
	results := []types.MatchResult{
		{CandidateID: "cand_a"}, {CandidateID: "cand_b"},
		{CandidateID: "cand_c"}, {CandidateID: "cand_d"},
	}
	profiles := map[string]*types.CandidateProfile{
		"cand_a": {Institution: "Stanford", TotalExperienceYears: 5},
		"cand_b": {Institution: "Stanford", TotalExperienceYears: 5},
		"cand_c": {Institution: "Stanford", TotalExperienceYears: 5},
		"cand_d": {Institution: "City College", TotalExperienceYears: 5},
	}

	scores := diversityScores(results, profiles)

	assert.Equal(t, 0.5, scores["cand_d"])
	assert.Equal(t, 0.0, scores["cand_a"])
}

func TestDiversityScores_UnderrepresentedExperienceLevel(t *testing.T) {
	results := []types.MatchResult{
		{CandidateID: "cand_a"}, {CandidateID: "cand_b"}, {CandidateID: "cand_c"},
	}
	profiles := map[string]*types.CandidateProfile{
		"cand_a": {Institution: "X", TotalExperienceYears: 10},
		"cand_b": {Institution: "X", TotalExperienceYears: 9},
		"cand_c": {Institution: "X", TotalExperienceYears: 1},
	}

	scores := diversityScores(results, profiles)

	// junior is 1 of 3: under half the pool
	assert.Equal(t, 0.5, scores["cand_c"])
	assert.Equal(t, 0.0, scores["cand_a"])
}

func TestDiversityScores_EmptyPool(t *testing.T) {
	assert.Empty(t, diversityScores(nil, nil))
}

func TestExperienceLevel_Buckets(t *testing.T) {
	assert.Equal(t, "junior", experienceLevel(&types.CandidateProfile{TotalExperienceYears: 2}))
	assert.Equal(t, "mid", experienceLevel(&types.CandidateProfile{TotalExperienceYears: 3}))
	assert.Equal(t, "mid", experienceLevel(&types.CandidateProfile{TotalExperienceYears: 6.9}))
	assert.Equal(t, "senior", experienceLevel(&types.CandidateProfile{TotalExperienceYears: 7}))
	assert.Equal(t, "unknown", experienceLevel(nil))
}

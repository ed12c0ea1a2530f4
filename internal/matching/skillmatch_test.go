package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/candidate-matcher/internal/skills"
	"github.com/jonathan/candidate-matcher/internal/types"
)

func candidateWithSkills(names ...string) *types.CandidateProfile {
	c := &types.CandidateProfile{CandidateID: "cand_001"}
	for _, n := range names {
		c.Skills = append(c.Skills, types.Skill{Name: n})
	}
	return c
}

func TestScoreSkills_AllRequiredExact(t *testing.T) {
	job := &types.JobRequirements{RequiredSkills: []string{"Go", "PostgreSQL"}}
	candidate := candidateWithSkills("go", "postgresql")

	match := ScoreSkills(job, candidate, skills.DefaultDictionary(), DefaultParams())

	// required 1.0, no preferred listed scores 1.0: blend is 0.7 + 0.3
	assert.InDelta(t, 1.0, match.Score, 0.001)
	assert.ElementsMatch(t, []string{"go", "postgresql"}, match.MatchedSkills)
	assert.Empty(t, match.MissingSkills)
}

func TestScoreSkills_SynonymEarnsPartialCredit(t *testing.T) {
	job := &types.JobRequirements{RequiredSkills: []string{"Go"}}
	candidate := candidateWithSkills("golang")

	match := ScoreSkills(job, candidate, skills.DefaultDictionary(), DefaultParams())

	// required component 0.7, preferred component 1.0
	assert.InDelta(t, 0.7*0.7+0.3*1.0, match.Score, 0.001)
	assert.Contains(t, match.MatchedSkills, "go")
}

func TestScoreSkills_RelatedCategoryEarnsRelatedCredit(t *testing.T) {
	job := &types.JobRequirements{RequiredSkills: []string{"Go"}}
	candidate := candidateWithSkills("Python")

	match := ScoreSkills(job, candidate, skills.DefaultDictionary(), DefaultParams())

	// required component 0.3, below the partial-credit bar for MatchedSkills
	assert.InDelta(t, 0.7*0.3+0.3*1.0, match.Score, 0.001)
	assert.Empty(t, match.MatchedSkills)
	assert.Empty(t, match.MissingSkills)
}

func TestScoreSkills_MissingRequiredSkillListed(t *testing.T) {
	job := &types.JobRequirements{RequiredSkills: []string{"Go", "Haskell"}}
	candidate := candidateWithSkills("go")

	match := ScoreSkills(job, candidate, skills.DefaultDictionary(), DefaultParams())

	assert.Contains(t, match.MissingSkills, "haskell")
	assert.InDelta(t, 0.7*0.5+0.3*1.0, match.Score, 0.001)
}

func TestScoreSkills_NoPreferredNeverPenalizes(t *testing.T) {
	jobWithout := &types.JobRequirements{RequiredSkills: []string{"Go"}}
	jobWith := &types.JobRequirements{
		RequiredSkills:  []string{"Go"},
		PreferredSkills: []string{"Haskell"},
	}
	candidate := candidateWithSkills("go")

	without := ScoreSkills(jobWithout, candidate, skills.DefaultDictionary(), DefaultParams())
	with := ScoreSkills(jobWith, candidate, skills.DefaultDictionary(), DefaultParams())

	// an unmatched preferred skill can only lower the score relative to
	// having no preferences at all
	assert.Greater(t, without.Score, with.Score)
	assert.InDelta(t, 1.0, without.Score, 0.001)
}

func TestScoreSkills_PreferredMatchIncreasesScore(t *testing.T) {
	job := &types.JobRequirements{
		RequiredSkills:  []string{"Go"},
		PreferredSkills: []string{"Kubernetes", "Haskell"},
	}
	fewer := candidateWithSkills("go")
	more := candidateWithSkills("go", "kubernetes")

	fewerMatch := ScoreSkills(job, fewer, skills.DefaultDictionary(), DefaultParams())
	moreMatch := ScoreSkills(job, more, skills.DefaultDictionary(), DefaultParams())

	// matching strictly more skills never lowers the score
	assert.Greater(t, moreMatch.Score, fewerMatch.Score)
}

func TestScoreSkills_NoSkillsListedAtAll(t *testing.T) {
	job := &types.JobRequirements{}
	candidate := candidateWithSkills("go")

	match := ScoreSkills(job, candidate, skills.DefaultDictionary(), DefaultParams())

	assert.Equal(t, 1.0, match.Score)
}

func TestScoreSkills_CandidateWithNoSkills(t *testing.T) {
	job := &types.JobRequirements{RequiredSkills: []string{"Go", "SQL"}}
	candidate := &types.CandidateProfile{CandidateID: "cand_002"}

	match := ScoreSkills(job, candidate, skills.DefaultDictionary(), DefaultParams())

	assert.InDelta(t, 0.3, match.Score, 0.001) // preferred component only
	assert.ElementsMatch(t, []string{"go", "sql"}, match.MissingSkills)
}

func TestBestCredit_ExactBeatsSynonym(t *testing.T) {
	dict := skills.DefaultDictionary()
	params := DefaultParams()

	credit := bestCredit("go", []string{"golang", "go"}, dict, params)

	assert.Equal(t, params.ExactCredit, credit)
}

package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-matcher/internal/types"
)

// stubEmbedder returns a fixed vector for every text.
type stubEmbedder struct {
	vector []float32
	err    error
}

func (s *stubEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return s.vector, s.err
}

func (s *stubEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = s.vector
	}
	return out, nil
}

func embeddedTestPool() []*types.CandidateProfile {
	return []*types.CandidateProfile{
		{CandidateID: "cand_close", TotalExperienceYears: 5, Embedding: []float32{1, 0.1}},
		{CandidateID: "cand_far", TotalExperienceYears: 5, Embedding: []float32{0.1, 1}},
		{CandidateID: "cand_exact", TotalExperienceYears: 5, Embedding: []float32{1, 0}},
	}
}

func TestMatch_FastStrategyRanksBySimilarity(t *testing.T) {
	job := testJob()
	job.Embedding = []float32{1, 0}
	orch := New(Config{})

	run, err := orch.Match(context.Background(), job, embeddedTestPool(), Options{Strategy: types.StrategyFast})

	require.NoError(t, err)
	require.Len(t, run.RankedResults, 3)
	assert.Equal(t, "cand_exact", run.RankedResults[0].CandidateID)
	assert.Equal(t, "cand_close", run.RankedResults[1].CandidateID)
	assert.Equal(t, "cand_far", run.RankedResults[2].CandidateID)
	// only the semantic component participates
	assert.Equal(t, 0.0, run.RankedResults[0].ComponentScores.Skills)
	assert.Contains(t, run.RankedResults[0].Explanation, "fast strategy")
	assert.Equal(t, types.StrategyFast, run.StrategyUsed)
}

func TestMatch_FastStrategyWarnsAboutMissingEmbeddings(t *testing.T) {
	job := testJob()
	job.Embedding = []float32{1, 0}
	pool := append(embeddedTestPool(), &types.CandidateProfile{
		CandidateID:          "cand_unembedded",
		TotalExperienceYears: 5,
	})
	orch := New(Config{})

	run, err := orch.Match(context.Background(), job, pool, Options{Strategy: types.StrategyFast})

	require.NoError(t, err)
	assert.Len(t, run.RankedResults, 3)
	require.NotEmpty(t, run.Warnings)
	assert.Contains(t, run.Warnings[0], "lack embeddings")
}

func TestMatch_FastStrategyFallsBackWithoutJobEmbedding(t *testing.T) {
	orch := New(Config{})

	run, err := orch.Match(context.Background(), testJob(), testPool(), Options{Strategy: types.StrategyFast})

	require.NoError(t, err)
	// full pool is scored by the standard pass instead
	assert.Equal(t, 3, run.CandidatesMatched)
	require.NotEmpty(t, run.Warnings)
	assert.Contains(t, run.Warnings[0], "degraded to standard scoring")
}

func TestMatch_FastStrategyEmbedsJobOnDemand(t *testing.T) {
	orch := New(Config{Embedder: &stubEmbedder{vector: []float32{1, 0}}})

	run, err := orch.Match(context.Background(), testJob(), embeddedTestPool(), Options{Strategy: types.StrategyFast})

	require.NoError(t, err)
	require.Len(t, run.RankedResults, 3)
	assert.Equal(t, "cand_exact", run.RankedResults[0].CandidateID)
	assert.Empty(t, run.Warnings)
}

func TestMatch_FastStrategyRebuildsIndexPerEligibleSet(t *testing.T) {
	pool := []*types.CandidateProfile{
		{
			CandidateID:          "cand_go",
			Skills:               []types.Skill{{Name: "Go"}},
			TotalExperienceYears: 5,
			Embedding:            []float32{1, 0},
		},
		{
			CandidateID:          "cand_nogo",
			Skills:               []types.Skill{{Name: "Photoshop"}},
			TotalExperienceYears: 5,
			Embedding:            []float32{0.9, 0.1},
		},
	}
	orch := New(Config{})

	openJob := testJob()
	openJob.Embedding = []float32{1, 0}
	openRun, err := orch.Match(context.Background(), openJob, pool, Options{Strategy: types.StrategyFast})
	require.NoError(t, err)
	require.Len(t, openRun.RankedResults, 2)

	// A second job over the same pool gates one candidate out; the index
	// built for the first job must not leak the excluded candidate back in.
	gatedJob := testJob()
	gatedJob.JobID = uuid.MustParse("886313e1-3b8a-5372-9b90-0c9aee199e5d")
	gatedJob.Embedding = []float32{1, 0}
	gatedJob.Mandatory = types.MandatoryRequirements{Skills: []string{"Go"}}
	gatedRun, err := orch.Match(context.Background(), gatedJob, pool, Options{Strategy: types.StrategyFast})

	require.NoError(t, err)
	require.Len(t, gatedRun.RankedResults, 1)
	assert.Equal(t, "cand_go", gatedRun.RankedResults[0].CandidateID)
}

func TestMatch_SemanticWeightsEmbedCandidatesOnDemand(t *testing.T) {
	job := testJob()
	pool := []*types.CandidateProfile{
		{
			CandidateID:          "cand_text_only",
			Skills:               []types.Skill{{Name: "Go"}},
			TotalExperienceYears: 5,
			ResumeText:           "Go developer with five years of backend experience.",
		},
	}
	weights := types.SemanticWeights()
	orch := New(Config{Embedder: &stubEmbedder{vector: []float32{1, 0}}})

	run, err := orch.Match(context.Background(), job, pool, Options{Weights: &weights})

	require.NoError(t, err)
	require.Len(t, run.RankedResults, 1)
	// job and candidate got the same stub vector: perfect similarity
	assert.InDelta(t, 1.0, run.RankedResults[0].ComponentScores.Semantic, 0.001)
	assert.Empty(t, run.Warnings)
}

func TestMatch_GeneratedJobEmbeddingDoesNotMutateJob(t *testing.T) {
	job := testJob()
	weights := types.SemanticWeights()
	orch := New(Config{Embedder: &stubEmbedder{vector: []float32{1, 0}}})

	_, err := orch.Match(context.Background(), job, embeddedTestPool(), Options{Weights: &weights})
	require.NoError(t, err)
	assert.Nil(t, job.Embedding)

	_, err = orch.Match(context.Background(), job, embeddedTestPool(), Options{Strategy: types.StrategyFast})
	require.NoError(t, err)
	assert.Nil(t, job.Embedding)
}

func TestMatch_EmbedderFailureDegradesWithWarning(t *testing.T) {
	job := testJob()
	job.Embedding = nil
	weights := types.SemanticWeights()
	orch := New(Config{Embedder: &stubEmbedder{err: errors.New("quota exceeded")}})

	run, err := orch.Match(context.Background(), job, testPool(), Options{Weights: &weights})

	require.NoError(t, err)
	assert.Equal(t, 3, run.CandidatesMatched)
	require.NotEmpty(t, run.Warnings)
	assert.Contains(t, run.Warnings[0], "job embedding unavailable")
}

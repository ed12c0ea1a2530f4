package orchestrator

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/candidate-matcher/internal/optimize"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// maxScoringWorkers bounds the per-candidate scoring parallelism.
const maxScoringWorkers = 8

// fastStrategyTopK caps how many candidates the fast strategy retrieves from
// the vector index.
const fastStrategyTopK = 100

// scoreStandard runs the full evaluator pass over every eligible candidate.
// Candidates are scored concurrently; ranking happens only after all scoring
// completes because ranks and tie-breaks are global.
func (o *Orchestrator) scoreStandard(ctx context.Context, job *types.JobRequirements, eligible []*types.CandidateProfile, weights types.ScoringWeights) ([]types.MatchResult, []string, error) {
	var warnings []string
	if weights.UsesSemantic() {
		jobVector, embedWarnings := o.prepareEmbeddings(ctx, job, eligible)
		warnings = append(warnings, embedWarnings...)
		job = jobWithEmbedding(job, jobVector)
	}

	results := make([]types.MatchResult, len(eligible))
	degraded := make([]bool, len(eligible))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxScoringWorkers)
	for i, candidate := range eligible {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i], degraded[i] = o.scorer.ScoreCandidate(job, candidate, weights)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("scoring interrupted: %w", err)
	}

	for i, d := range degraded {
		if d {
			warnings = append(warnings, fmt.Sprintf("candidate %s: semantic score degraded to 0.0", eligible[i].CandidateID))
		}
	}
	return results, warnings, nil
}

// scoreFast approximates scores with vector similarity only: the index is
// rebuilt when the eligible set changed, then top-K candidates are retrieved
// by similarity to the job embedding. Skill, experience, and education
// scoring are skipped, which is the documented accuracy tradeoff of this
// strategy. Without a usable job embedding it falls back to standard scoring.
func (o *Orchestrator) scoreFast(ctx context.Context, job *types.JobRequirements, eligible []*types.CandidateProfile, weights types.ScoringWeights) ([]types.MatchResult, []string, error) {
	jobVector, warnings := o.prepareEmbeddings(ctx, job, eligible)

	if len(jobVector) == 0 {
		o.logger.Warn("fast strategy unavailable without job embedding, falling back to standard scoring")
		warnings = append(warnings, "fast strategy degraded to standard scoring: job embedding unavailable")
		results, stdWarnings, err := o.scoreStandard(ctx, job, eligible, weights)
		return results, append(warnings, stdWarnings...), err
	}

	// The index is keyed by the gate-filtered eligible set, not the raw pool:
	// two jobs over the same pool can admit different candidates, and a
	// stale index would serve gate-excluded candidates to the wrong job.
	eligibleFingerprint := optimize.PoolFingerprint(eligible)
	if !o.index.Current(eligibleFingerprint) {
		o.index.Rebuild(eligibleFingerprint, eligible)
		o.logger.Info("rebuilt vector index",
			zap.Int("indexed", o.index.Size()),
			zap.Int("eligible", len(eligible)))
	}
	if o.index.Size() < len(eligible) {
		warnings = append(warnings, fmt.Sprintf("%d candidate(s) lack embeddings and were excluded by the fast strategy", len(eligible)-o.index.Size()))
	}

	topK := len(eligible)
	if topK > fastStrategyTopK {
		topK = fastStrategyTopK
	}

	hits := o.index.Search(jobVector, topK)
	results := make([]types.MatchResult, 0, len(hits))
	for _, hit := range hits {
		normalized := (hit.Similarity + 1) / 2
		results = append(results, types.MatchResult{
			CandidateID:  hit.CandidateID,
			OverallScore: 100 * normalized,
			ComponentScores: types.ComponentScores{
				Semantic: normalized,
			},
			Explanation: fmt.Sprintf("Approximate semantic match (%.0f%% similarity); detailed scoring skipped by fast strategy", normalized*100),
		})
	}
	return results, warnings, nil
}

// prepareEmbeddings returns the job embedding to score against and fills in
// any missing candidate embeddings through the injected embedder, batching
// candidate texts in one call. The caller's JobRequirements is never written
// to; a generated job vector stays local and is threaded through the scoring
// path instead. Embedding failures degrade the affected semantic scores
// instead of failing the match.
func (o *Orchestrator) prepareEmbeddings(ctx context.Context, job *types.JobRequirements, eligible []*types.CandidateProfile) ([]float32, []string) {
	jobVector := job.Embedding
	if o.embedder == nil {
		return jobVector, nil
	}

	var warnings []string
	if len(jobVector) == 0 && job.FullText() != "" {
		vec, err := o.embedder.Embed(ctx, job.FullText())
		if err != nil {
			o.logger.Warn("failed to embed job text", zap.Error(err))
			warnings = append(warnings, "job embedding unavailable: "+err.Error())
		} else {
			jobVector = vec
		}
	}

	var texts []string
	var missing []*types.CandidateProfile
	for _, candidate := range eligible {
		if len(candidate.Embedding) == 0 && candidate.ResumeText != "" {
			texts = append(texts, candidate.ResumeText)
			missing = append(missing, candidate)
		}
	}
	if len(missing) == 0 {
		return jobVector, warnings
	}

	vectors, err := o.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		o.logger.Warn("failed to batch-embed candidate texts",
			zap.Int("count", len(missing)), zap.Error(err))
		warnings = append(warnings, fmt.Sprintf("candidate embeddings unavailable for %d candidate(s): %v", len(missing), err))
		return jobVector, warnings
	}
	for i, candidate := range missing {
		candidate.Embedding = vectors[i]
	}
	return jobVector, warnings
}

// jobWithEmbedding returns job unless the embedding differs, in which case a
// shallow copy carries the vector so the caller's struct stays untouched.
func jobWithEmbedding(job *types.JobRequirements, vector []float32) *types.JobRequirements {
	if len(vector) == 0 || len(job.Embedding) != 0 {
		return job
	}
	scored := *job
	scored.Embedding = vector
	return &scored
}

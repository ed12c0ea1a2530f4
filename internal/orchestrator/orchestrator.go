// Package orchestrator coordinates the full matching pipeline: mandatory
// gating, strategy-appropriate scoring, ranking, bias detection, and result
// caching behind a single Match entry point.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-matcher/internal/bias"
	"github.com/jonathan/candidate-matcher/internal/embedding"
	"github.com/jonathan/candidate-matcher/internal/matching"
	"github.com/jonathan/candidate-matcher/internal/optimize"
	"github.com/jonathan/candidate-matcher/internal/ranking"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// Scorer produces one candidate's unranked match result. The production
// implementation is matching.Engine; tests inject doubles to instrument call
// counts.
type Scorer interface {
	ScoreCandidate(job *types.JobRequirements, candidate *types.CandidateProfile, weights types.ScoringWeights) (result types.MatchResult, degraded bool)
	Params() matching.ScoringParams
}

// Config assembles the orchestrator's collaborators. Every field is optional:
// nil values fall back to defaults (no cache, no embedder, default engine).
type Config struct {
	Scorer   Scorer
	Embedder embedding.Embedder
	Cache    optimize.ResultCache
	Index    *optimize.VectorIndex
	Detector *bias.Detector
	Logger   *zap.Logger
}

// Orchestrator is the top-level matching entry point.
type Orchestrator struct {
	scorer   Scorer
	embedder embedding.Embedder
	cache    optimize.ResultCache
	index    *optimize.VectorIndex
	detector *bias.Detector
	logger   *zap.Logger
}

// Options are the per-call matching parameters.
type Options struct {
	// Strategy defaults to StrategyStandard.
	Strategy types.Strategy
	// Weights defaults to types.DefaultWeights(); pass SemanticWeights() to
	// substitute semantic similarity for education.
	Weights *types.ScoringWeights
	// DiversityWeight in [0,1] blends a diversity bonus into ranking.
	DiversityWeight float64
	// EnableBiasDetection forces bias analysis outside the comprehensive
	// strategy.
	EnableBiasDetection bool
}

// New creates an Orchestrator from the given configuration.
func New(cfg Config) *Orchestrator {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	scorer := cfg.Scorer
	if scorer == nil {
		scorer = matching.NewEngine(matching.DefaultParams(), nil, logger)
	}
	index := cfg.Index
	if index == nil {
		index = optimize.NewVectorIndex()
	}
	detector := cfg.Detector
	if detector == nil {
		detector = bias.NewDetector(logger)
	}
	return &Orchestrator{
		scorer:   scorer,
		embedder: cfg.Embedder,
		cache:    cfg.Cache,
		index:    index,
		detector: detector,
		logger:   logger,
	}
}

// Match runs the complete pipeline for one job against a candidate pool and
// returns the ranked MatchRun. An empty pool, or a pool where every candidate
// fails the mandatory gate, is a valid outcome with CandidatesMatched == 0,
// not an error. Only configuration problems abort the call; per-candidate
// data errors and degraded components are recorded in the run's warnings.
func (o *Orchestrator) Match(ctx context.Context, job *types.JobRequirements, pool []*types.CandidateProfile, opts Options) (*types.MatchRun, error) {
	start := time.Now()

	strategy, weights, err := o.validate(opts)
	if err != nil {
		return nil, err
	}

	poolFingerprint := optimize.PoolFingerprint(pool)
	cacheKey := optimize.RunKey(job.JobID, poolFingerprint, weights, opts.DiversityWeight, strategy)
	if o.cache != nil {
		if cached, ok := o.cache.Get(ctx, cacheKey); ok {
			o.logger.Info("returning cached match run",
				zap.String("job_id", job.JobID.String()),
				zap.String("strategy", string(strategy)))
			return cached, nil
		}
	}

	o.logger.Info("starting match",
		zap.String("job_id", job.JobID.String()),
		zap.String("strategy", string(strategy)),
		zap.Int("pool_size", len(pool)))

	var warnings []string
	eligible, profiles, gateWarnings := o.applyGate(job, pool)
	warnings = append(warnings, gateWarnings...)

	var results []types.MatchResult
	switch strategy {
	case types.StrategyFast:
		var fastWarnings []string
		results, fastWarnings, err = o.scoreFast(ctx, job, eligible, weights)
		warnings = append(warnings, fastWarnings...)
	default:
		var scoreWarnings []string
		results, scoreWarnings, err = o.scoreStandard(ctx, job, eligible, weights)
		warnings = append(warnings, scoreWarnings...)
	}
	if err != nil {
		return nil, err
	}

	results = ranking.Rank(results, profiles, ranking.Options{
		DiversityWeight: opts.DiversityWeight,
		TieEpsilon:      o.scorer.Params().TieEpsilon,
	})

	run := &types.MatchRun{
		RunID:                 uuid.New(),
		JobID:                 job.JobID,
		CandidatesMatched:     len(results),
		RankedResults:         results,
		Warnings:              warnings,
		StrategyUsed:          strategy,
		CreatedAt:             time.Now().UTC(),
		ProcessingTimeSeconds: time.Since(start).Seconds(),
	}

	if strategy == types.StrategyComprehensive || opts.EnableBiasDetection {
		run.BiasReport = o.detector.Analyze(job, results, profiles)
	}

	if o.cache != nil {
		o.cache.Put(ctx, cacheKey, run)
	}

	o.logger.Info("match complete",
		zap.String("job_id", job.JobID.String()),
		zap.Int("candidates_matched", run.CandidatesMatched),
		zap.Float64("seconds", run.ProcessingTimeSeconds))
	return run, nil
}

// validate resolves defaults and rejects invalid configuration.
func (o *Orchestrator) validate(opts Options) (types.Strategy, types.ScoringWeights, error) {
	strategy, err := types.ParseStrategy(string(opts.Strategy))
	if err != nil {
		return "", types.ScoringWeights{}, err
	}

	weights := types.DefaultWeights()
	if opts.Weights != nil {
		weights = *opts.Weights
	}
	if err := weights.Validate(); err != nil {
		return "", types.ScoringWeights{}, err
	}

	if opts.DiversityWeight < 0 || opts.DiversityWeight > 1 {
		return "", types.ScoringWeights{}, &types.ConfigurationError{
			Field:  "diversity_weight",
			Reason: fmt.Sprintf("must be in [0,1], got %.3f", opts.DiversityWeight),
		}
	}
	return strategy, weights, nil
}

// applyGate validates profiles and applies the mandatory requirements gate.
// Malformed profiles are dropped with a warning; gate failures are normal
// exclusions and only logged.
func (o *Orchestrator) applyGate(job *types.JobRequirements, pool []*types.CandidateProfile) ([]*types.CandidateProfile, map[string]*types.CandidateProfile, []string) {
	eligible := make([]*types.CandidateProfile, 0, len(pool))
	profiles := make(map[string]*types.CandidateProfile, len(pool))
	var warnings []string

	for _, candidate := range pool {
		if candidate == nil {
			warnings = append(warnings, "skipped nil candidate profile")
			continue
		}
		if err := candidate.Validate(); err != nil {
			o.logger.Warn("skipping malformed candidate", zap.Error(err))
			warnings = append(warnings, fmt.Sprintf("skipped candidate: %v", err))
			continue
		}
		if gate := matching.EvaluateGate(job, candidate); !gate.Passed {
			o.logger.Debug("candidate excluded by mandatory gate",
				zap.String("candidate_id", candidate.CandidateID),
				zap.String("reason", gate.Reason))
			continue
		}
		eligible = append(eligible, candidate)
		profiles[candidate.CandidateID] = candidate
	}
	return eligible, profiles, warnings
}

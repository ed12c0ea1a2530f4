package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-matcher/internal/bias"
	"github.com/jonathan/candidate-matcher/internal/config"
	"github.com/jonathan/candidate-matcher/internal/embedding"
	"github.com/jonathan/candidate-matcher/internal/logger"
	"github.com/jonathan/candidate-matcher/internal/matching"
	"github.com/jonathan/candidate-matcher/internal/observability"
	"github.com/jonathan/candidate-matcher/internal/optimize"
	"github.com/jonathan/candidate-matcher/internal/orchestrator"
	"github.com/jonathan/candidate-matcher/internal/skills"
	"github.com/jonathan/candidate-matcher/internal/store"
	"github.com/jonathan/candidate-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match and rank candidates against a job",
	Long:  "Scores a pool of candidate profiles against job requirements, applies the mandatory gate, ranks the survivors, and writes the complete match run JSON.",
	RunE:  runMatch,
}

var (
	matchJob             string
	matchCandidates      string
	matchOutput          string
	matchStrategy        string
	matchDiversityWeight float64
	matchBias            bool
	matchConfig          string
	matchSkillDict       string
	matchVerbose         bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to input JobRequirements JSON file (required)")
	matchCmd.Flags().StringVarP(&matchCandidates, "candidates", "c", "", "Path to input candidate pool JSON file (required)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output MatchRun JSON file (required)")
	matchCmd.Flags().StringVarP(&matchStrategy, "strategy", "s", "", "Matching strategy: standard, fast, or comprehensive (default standard)")
	matchCmd.Flags().Float64Var(&matchDiversityWeight, "diversity-weight", 0, "Diversity blend weight in [0,1] applied during ranking")
	matchCmd.Flags().BoolVar(&matchBias, "bias", false, "Run bias detection even outside the comprehensive strategy")
	matchCmd.Flags().StringVar(&matchConfig, "config", "", "Path to a JSON config file")
	matchCmd.Flags().StringVar(&matchSkillDict, "skill-dict", "", "Path to a skill dictionary JSON overriding the defaults")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted summary of the match run")

	if err := matchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Resolve configuration: file values act as defaults for flags
	cfg := config.Config{
		Strategy:        matchStrategy,
		DiversityWeight: matchDiversityWeight,
		BiasDetection:   matchBias,
		SkillDict:       matchSkillDict,
		Verbose:         matchVerbose,
		APIKey:          os.Getenv("GEMINI_API_KEY"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
	}
	if matchConfig != "" {
		fileCfg, err := config.LoadConfig(matchConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		cfg.BiasDetection = cfg.BiasDetection || fileCfg.BiasDetection
		cfg.Verbose = cfg.Verbose || fileCfg.Verbose
		cfg.LogJSON = fileCfg.LogJSON
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// 2. Load inputs
	job, err := loadJob(matchJob)
	if err != nil {
		return err
	}
	pool, err := loadPool(matchCandidates)
	if err != nil {
		return err
	}

	// 3. Assemble the pipeline
	dict := skills.DefaultDictionary()
	if cfg.SkillDict != "" {
		dict, err = skills.LoadDictionary(cfg.SkillDict)
		if err != nil {
			return fmt.Errorf("failed to load skill dictionary: %w", err)
		}
	}

	ttl := optimize.DefaultCacheTTL
	if cfg.CacheTTL > 0 {
		ttl = time.Duration(cfg.CacheTTL) * time.Second
	}
	var cache optimize.ResultCache = optimize.NewMemoryCache(ttl)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn("redis unavailable, using in-memory cache", zap.Error(err))
		} else {
			cache = optimize.NewRedisCache(client, ttl, log)
			defer func() { _ = client.Close() }()
		}
	}

	var embedder embedding.Embedder
	if cfg.APIKey != "" {
		gemini, err := embedding.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
		if err != nil {
			log.Warn("embedder unavailable, semantic scoring disabled", zap.Error(err))
		} else {
			embedder = gemini
			defer gemini.Close()
		}
	}

	engine := matching.NewEngine(matching.DefaultParams(), dict, log)
	orch := orchestrator.New(orchestrator.Config{
		Scorer:   engine,
		Embedder: embedder,
		Cache:    cache,
		Detector: bias.NewDetector(log),
		Logger:   log,
	})

	opts := orchestrator.Options{
		Strategy:            types.Strategy(cfg.Strategy),
		DiversityWeight:     cfg.DiversityWeight,
		EnableBiasDetection: cfg.BiasDetection,
	}
	if cfg.Weights != nil {
		weights := cfg.Weights.ScoringWeights()
		opts.Weights = &weights
	}

	// 4. Run the match
	run, err := orch.Match(ctx, job, pool, opts)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	// 5. Write output
	jsonOutput, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match run to JSON: %w", err)
	}

	outputDir := filepath.Dir(matchOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(matchOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write match run to output file %s: %w", matchOutput, err)
	}

	// 6. Persist when a database is configured (non-fatal)
	if cfg.DatabaseURL != "" {
		if err := persistRun(cmd, cfg.DatabaseURL, run); err != nil {
			log.Warn("failed to persist match run", zap.Error(err))
		}
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintMatchRun(run)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Matched %d candidates for job %s to %s\n", run.CandidatesMatched, run.JobID, matchOutput)

	return nil
}

func loadJob(path string) (*types.JobRequirements, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	var job types.JobRequirements
	if err := json.Unmarshal(content, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job requirements JSON: %w", err)
	}
	return &job, nil
}

func loadPool(path string) ([]*types.CandidateProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file %s: %w", path, err)
	}
	var pool []*types.CandidateProfile
	if err := json.Unmarshal(content, &pool); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate pool JSON: %w", err)
	}
	return pool, nil
}

func persistRun(cmd *cobra.Command, databaseURL string, run *types.MatchRun) error {
	st, err := store.Connect(cmd.Context(), databaseURL)
	if err != nil {
		return err
	}
	defer st.Close()
	return st.SaveMatchRun(cmd.Context(), run)
}

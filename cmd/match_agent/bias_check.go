package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-matcher/internal/bias"
	"github.com/jonathan/candidate-matcher/internal/logger"
	"github.com/jonathan/candidate-matcher/internal/observability"
	"github.com/jonathan/candidate-matcher/internal/types"
)

var biasCheckCmd = &cobra.Command{
	Use:   "bias-check",
	Short: "Analyze a completed match run for bias indicators",
	Long:  "Scans the job description for gender-coded and age-coded language and the ranked results for institution concentration, producing a BiasReport JSON.",
	RunE:  runBiasCheck,
}

var (
	biasCheckJob        string
	biasCheckRun        string
	biasCheckCandidates string
	biasCheckOutput     string
	biasCheckVerbose    bool
)

func init() {
	biasCheckCmd.Flags().StringVarP(&biasCheckJob, "job", "j", "", "Path to input JobRequirements JSON file (required)")
	biasCheckCmd.Flags().StringVarP(&biasCheckRun, "run", "r", "", "Path to a MatchRun JSON file produced by the match command")
	biasCheckCmd.Flags().StringVarP(&biasCheckCandidates, "candidates", "c", "", "Path to the candidate pool JSON file used for the run")
	biasCheckCmd.Flags().StringVarP(&biasCheckOutput, "out", "o", "", "Path to output BiasReport JSON file (required)")
	biasCheckCmd.Flags().BoolVarP(&biasCheckVerbose, "verbose", "v", false, "Print a formatted summary of the bias report")

	if err := biasCheckCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := biasCheckCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(biasCheckCmd)
}

func runBiasCheck(_ *cobra.Command, _ []string) error {
	log, err := logger.New(false, biasCheckVerbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	job, err := loadJob(biasCheckJob)
	if err != nil {
		return err
	}

	// Ranked results and profiles are optional: without them the analysis
	// covers job language only.
	var results []types.MatchResult
	if biasCheckRun != "" {
		content, err := os.ReadFile(biasCheckRun)
		if err != nil {
			return fmt.Errorf("failed to read match run file %s: %w", biasCheckRun, err)
		}
		var run types.MatchRun
		if err := json.Unmarshal(content, &run); err != nil {
			return fmt.Errorf("failed to unmarshal match run JSON: %w", err)
		}
		results = run.RankedResults
	}

	profiles := map[string]*types.CandidateProfile{}
	if biasCheckCandidates != "" {
		pool, err := loadPool(biasCheckCandidates)
		if err != nil {
			return err
		}
		for _, candidate := range pool {
			if candidate != nil {
				profiles[candidate.CandidateID] = candidate
			}
		}
	}

	report := bias.NewDetector(log).Analyze(job, results, profiles)

	jsonOutput, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal bias report to JSON: %w", err)
	}

	outputDir := filepath.Dir(biasCheckOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(biasCheckOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write bias report to output file %s: %w", biasCheckOutput, err)
	}

	if biasCheckVerbose {
		observability.NewPrinter(os.Stdout).PrintBiasReport(report)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Wrote bias report to %s\n", biasCheckOutput)

	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-matcher/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate input documents against their JSON Schemas",
	Long:  "Validates a JobRequirements or candidate pool JSON file against the bundled schemas and reports every violation with its field path.",
	RunE:  runValidate,
}

var (
	validateJob        string
	validateCandidates string
)

// schema paths relative to the repository root
const (
	jobSchemaPath  = "schemas/job_requirements.schema.json"
	poolSchemaPath = "schemas/candidate_pool.schema.json"
)

func init() {
	validateCmd.Flags().StringVarP(&validateJob, "job", "j", "", "Path to a JobRequirements JSON file")
	validateCmd.Flags().StringVarP(&validateCandidates, "candidates", "c", "", "Path to a candidate pool JSON file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if validateJob == "" && validateCandidates == "" {
		return fmt.Errorf("nothing to validate: provide --job and/or --candidates")
	}

	if validateJob != "" {
		if err := validateAgainst(jobSchemaPath, validateJob); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s is valid\n", validateJob)
	}

	if validateCandidates != "" {
		if err := validateAgainst(poolSchemaPath, validateCandidates); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s is valid\n", validateCandidates)
	}

	return nil
}

func validateAgainst(schemaRelPath, jsonPath string) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return fmt.Errorf("schema not found: %s", schemaRelPath)
	}
	if err := schemas.ValidateFile(schemaPath, jsonPath); err != nil {
		return fmt.Errorf("%s: %w", jsonPath, err)
	}
	return nil
}

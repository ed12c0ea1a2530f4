package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-matcher/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List persisted match runs",
	Long:  "Lists recent match runs stored in PostgreSQL, optionally filtered by job ID. Requires DATABASE_URL.",
	RunE:  runRuns,
}

var (
	runsJobID string
	runsLimit int
)

func init() {
	runsCmd.Flags().StringVarP(&runsJobID, "job-id", "j", "", "Only list runs for this job ID")
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "Maximum number of runs to list")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	st, err := store.Connect(cmd.Context(), databaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	var summaries []store.RunSummary
	if runsJobID != "" {
		jobID, err := uuid.Parse(runsJobID)
		if err != nil {
			return fmt.Errorf("invalid job ID %s: %w", runsJobID, err)
		}
		summaries, err = st.ListRunsForJob(cmd.Context(), jobID, runsLimit)
		if err != nil {
			return err
		}
	} else {
		summaries, err = st.ListRuns(cmd.Context(), runsLimit)
		if err != nil {
			return err
		}
	}

	if len(summaries) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No match runs found")
		return nil
	}

	for _, s := range summaries {
		_, _ = fmt.Fprintf(os.Stdout, "%s  job=%s  strategy=%-13s  matched=%-4d  %s\n",
			s.RunID, s.JobID, s.Strategy, s.CandidatesMatched, s.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}

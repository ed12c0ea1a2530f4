// Package store provides PostgreSQL persistence for match runs.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/candidate-matcher/internal/types"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// RunSummary is a lightweight view of a persisted match run, without the
// full ranked results payload.
type RunSummary struct {
	RunID             uuid.UUID
	JobID             uuid.UUID
	Strategy          string
	CandidatesMatched int
	CreatedAt         time.Time
}

// SaveMatchRun stores a completed match run. The ranked results and bias
// report are stored as JSON documents alongside the queryable columns.
func (s *Store) SaveMatchRun(ctx context.Context, run *types.MatchRun) error {
	if run == nil {
		return fmt.Errorf("match run is nil")
	}

	resultsJSON, err := json.Marshal(run.RankedResults)
	if err != nil {
		return fmt.Errorf("failed to marshal ranked results: %w", err)
	}

	var biasJSON []byte
	if run.BiasReport != nil {
		biasJSON, err = json.Marshal(run.BiasReport)
		if err != nil {
			return fmt.Errorf("failed to marshal bias report: %w", err)
		}
	}

	warningsJSON, err := json.Marshal(run.Warnings)
	if err != nil {
		return fmt.Errorf("failed to marshal warnings: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO match_runs (id, job_id, strategy, candidates_matched, processing_time_seconds, results, bias_report, warnings, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE SET results = $6, bias_report = $7, warnings = $8`,
		run.RunID, run.JobID, string(run.StrategyUsed), run.CandidatesMatched,
		run.ProcessingTimeSeconds, resultsJSON, biasJSON, warningsJSON, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save match run: %w", err)
	}
	return nil
}

// GetMatchRun retrieves a persisted match run by ID. Returns nil when no
// run exists with the given ID.
func (s *Store) GetMatchRun(ctx context.Context, runID uuid.UUID) (*types.MatchRun, error) {
	var (
		run          types.MatchRun
		strategy     string
		resultsJSON  []byte
		biasJSON     []byte
		warningsJSON []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, job_id, strategy, candidates_matched, processing_time_seconds, results, bias_report, warnings, created_at
		 FROM match_runs WHERE id = $1`,
		runID,
	).Scan(&run.RunID, &run.JobID, &strategy, &run.CandidatesMatched,
		&run.ProcessingTimeSeconds, &resultsJSON, &biasJSON, &warningsJSON, &run.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match run: %w", err)
	}

	run.StrategyUsed = types.Strategy(strategy)
	if len(resultsJSON) > 0 {
		if err := json.Unmarshal(resultsJSON, &run.RankedResults); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ranked results: %w", err)
		}
	}
	if len(biasJSON) > 0 {
		var report types.BiasReport
		if err := json.Unmarshal(biasJSON, &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bias report: %w", err)
		}
		run.BiasReport = &report
	}
	if len(warningsJSON) > 0 {
		if err := json.Unmarshal(warningsJSON, &run.Warnings); err != nil {
			return nil, fmt.Errorf("failed to unmarshal warnings: %w", err)
		}
	}
	return &run, nil
}

// ListRuns retrieves recent match runs, most recent first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, job_id, strategy, candidates_matched, created_at
		 FROM match_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match runs: %w", err)
	}
	defer rows.Close()

	return scanRunSummaries(rows)
}

// ListRunsForJob retrieves recent match runs for a specific job.
func (s *Store) ListRunsForJob(ctx context.Context, jobID uuid.UUID, limit int) ([]RunSummary, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, job_id, strategy, candidates_matched, created_at
		 FROM match_runs WHERE job_id = $1 ORDER BY created_at DESC LIMIT $2`,
		jobID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match runs for job: %w", err)
	}
	defer rows.Close()

	return scanRunSummaries(rows)
}

func scanRunSummaries(rows pgx.Rows) ([]RunSummary, error) {
	var summaries []RunSummary
	for rows.Next() {
		var summary RunSummary
		if err := rows.Scan(&summary.RunID, &summary.JobID, &summary.Strategy, &summary.CandidatesMatched, &summary.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match run row: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate match run rows: %w", err)
	}
	return summaries, nil
}

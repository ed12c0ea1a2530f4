package types

import "fmt"

// ConfigurationError indicates invalid matching configuration: weights that do
// not sum to 1.0, an unknown strategy, or a diversity weight outside [0,1].
// It is fatal to the whole match call and is surfaced immediately.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// DataError indicates a malformed candidate profile. It is isolated to the
// single candidate: the orchestrator skips that record with a warning instead
// of failing the run.
type DataError struct {
	CandidateID string
	Reason      string
}

func (e *DataError) Error() string {
	if e.CandidateID == "" {
		return fmt.Sprintf("candidate data error: %s", e.Reason)
	}
	return fmt.Sprintf("candidate %s: %s", e.CandidateID, e.Reason)
}

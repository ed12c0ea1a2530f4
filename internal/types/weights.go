package types

import (
	"fmt"
	"math"
)

// weightEpsilon is the tolerance when checking that weights sum to 1.0.
const weightEpsilon = 0.01

// ScoringWeights controls how component scores blend into the overall score.
// Weights must sum to 1.0 within a small epsilon. The value is immutable by
// convention: callers pass it explicitly through every call rather than
// mutating a shared default.
type ScoringWeights struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Semantic   float64 `json:"semantic"`
}

// DefaultWeights returns the three-component weight set:
// skills 0.50, experience 0.30, education 0.20.
func DefaultWeights() ScoringWeights {
	return ScoringWeights{Skills: 0.50, Experience: 0.30, Education: 0.20}
}

// SemanticWeights returns the weight set that substitutes semantic similarity
// for education: skills 0.50, experience 0.30, semantic 0.20.
func SemanticWeights() ScoringWeights {
	return ScoringWeights{Skills: 0.50, Experience: 0.30, Semantic: 0.20}
}

// Sum returns the total of all component weights.
func (w ScoringWeights) Sum() float64 {
	return w.Skills + w.Experience + w.Education + w.Semantic
}

// UsesSemantic reports whether semantic similarity participates in scoring.
func (w ScoringWeights) UsesSemantic() bool {
	return w.Semantic > 0
}

// Validate checks that all weights are non-negative and sum to 1.0 within
// epsilon. Returns a ConfigurationError otherwise.
func (w ScoringWeights) Validate() error {
	if w.Skills < 0 || w.Experience < 0 || w.Education < 0 || w.Semantic < 0 {
		return &ConfigurationError{Field: "weights", Reason: "weights must be non-negative"}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightEpsilon {
		return &ConfigurationError{
			Field:  "weights",
			Reason: fmt.Sprintf("weights must sum to 1.0, got %.4f", sum),
		}
	}
	return nil
}

package types

import "fmt"

// Strategy selects how the orchestrator scores a candidate pool.
type Strategy string

// Supported matching strategies. The set is closed: ParseStrategy rejects
// anything else so strategy behavior stays exhaustively checkable.
const (
	// StrategyStandard runs the full four-evaluator scoring pass.
	StrategyStandard Strategy = "standard"
	// StrategyFast approximates scores with vector similarity only. Faster on
	// large pools, lower accuracy: skill, experience, and education scoring
	// are skipped.
	StrategyFast Strategy = "fast"
	// StrategyComprehensive is standard scoring plus bias detection.
	StrategyComprehensive Strategy = "comprehensive"
)

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyStandard, StrategyFast, StrategyComprehensive:
		return Strategy(s), nil
	case "":
		return StrategyStandard, nil
	default:
		return "", &ConfigurationError{Field: "strategy", Reason: fmt.Sprintf("unknown strategy %q (expected standard, fast, or comprehensive)", s)}
	}
}

// Package optimize provides the caching and vector-index layer wrapping the
// scoring/ranking pipeline: pool fingerprints, a TTL result cache (in-memory
// or Redis backed), and a rebuild-then-swap vector index for the fast
// matching strategy.
package optimize

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/candidate-matcher/internal/types"
)

// PoolFingerprint identifies a candidate-pool version. It covers the pool
// size, the most recent submission timestamp, and the sorted candidate IDs,
// so any pool change invalidates cached results built from it.
func PoolFingerprint(pool []*types.CandidateProfile) string {
	ids := make([]string, 0, len(pool))
	var maxSubmitted time.Time
	for _, c := range pool {
		ids = append(ids, c.CandidateID)
		if c.SubmittedAt.After(maxSubmitted) {
			maxSubmitted = c.SubmittedAt
		}
	}
	sort.Strings(ids)

	h := sha256.New()
	fmt.Fprintf(h, "n=%d;max=%d;", len(pool), maxSubmitted.UnixNano())
	for _, id := range ids {
		h.Write([]byte(id))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// RunKey is the result-cache key for one match invocation: a hash over the
// job, pool version, weights, diversity weight, and strategy. Identical
// inputs always produce identical keys.
func RunKey(jobID uuid.UUID, poolFingerprint string, weights types.ScoringWeights, diversityWeight float64, strategy types.Strategy) string {
	h := sha256.New()
	fmt.Fprintf(h, "job=%s;pool=%s;w=%.6f,%.6f,%.6f,%.6f;dw=%.6f;strategy=%s",
		jobID, poolFingerprint,
		weights.Skills, weights.Experience, weights.Education, weights.Semantic,
		diversityWeight, strategy)
	return hex.EncodeToString(h.Sum(nil))
}

package optimize

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/candidate-matcher/internal/types"
)

func poolOf(ids ...string) []*types.CandidateProfile {
	pool := make([]*types.CandidateProfile, 0, len(ids))
	for _, id := range ids {
		pool = append(pool, &types.CandidateProfile{CandidateID: id})
	}
	return pool
}

func TestPoolFingerprint_OrderIndependent(t *testing.T) {
	a := PoolFingerprint(poolOf("cand_a", "cand_b", "cand_c"))
	b := PoolFingerprint(poolOf("cand_c", "cand_a", "cand_b"))

	assert.Equal(t, a, b)
}

func TestPoolFingerprint_ChangesWithMembership(t *testing.T) {
	a := PoolFingerprint(poolOf("cand_a", "cand_b"))
	b := PoolFingerprint(poolOf("cand_a", "cand_b", "cand_c"))

	assert.NotEqual(t, a, b)
}

func TestPoolFingerprint_ChangesWithNewSubmission(t *testing.T) {
	pool := poolOf("cand_a", "cand_b")
	a := PoolFingerprint(pool)

	pool[0].SubmittedAt = time.Now()
	b := PoolFingerprint(pool)

	assert.NotEqual(t, a, b)
}

func TestRunKey_IdenticalInputsIdenticalKeys(t *testing.T) {
	jobID := uuid.New()
	weights := types.DefaultWeights()

	a := RunKey(jobID, "fp", weights, 0.2, types.StrategyStandard)
	b := RunKey(jobID, "fp", weights, 0.2, types.StrategyStandard)

	assert.Equal(t, a, b)
}

func TestRunKey_VariesWithEachInput(t *testing.T) {
	jobID := uuid.New()
	weights := types.DefaultWeights()
	base := RunKey(jobID, "fp", weights, 0.2, types.StrategyStandard)

	assert.NotEqual(t, base, RunKey(uuid.New(), "fp", weights, 0.2, types.StrategyStandard))
	assert.NotEqual(t, base, RunKey(jobID, "fp2", weights, 0.2, types.StrategyStandard))
	assert.NotEqual(t, base, RunKey(jobID, "fp", types.SemanticWeights(), 0.2, types.StrategyStandard))
	assert.NotEqual(t, base, RunKey(jobID, "fp", weights, 0.3, types.StrategyStandard))
	assert.NotEqual(t, base, RunKey(jobID, "fp", weights, 0.2, types.StrategyFast))
}

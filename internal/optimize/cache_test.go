package optimize

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-matcher/internal/types"
)

func TestMemoryCache_PutGet(t *testing.T) {
	cache := NewMemoryCache(time.Hour)
	run := &types.MatchRun{RunID: uuid.New(), CandidatesMatched: 3}

	cache.Put(context.Background(), "key1", run)

	got, ok := cache.Get(context.Background(), "key1")
	require.True(t, ok)
	assert.Equal(t, run.RunID, got.RunID)
}

func TestMemoryCache_Miss(t *testing.T) {
	cache := NewMemoryCache(time.Hour)

	_, ok := cache.Get(context.Background(), "absent")

	assert.False(t, ok)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	cache := NewMemoryCache(time.Hour)
	current := time.Now()
	cache.now = func() time.Time { return current }

	cache.Put(context.Background(), "key1", &types.MatchRun{})

	_, ok := cache.Get(context.Background(), "key1")
	assert.True(t, ok)

	current = current.Add(2 * time.Hour)
	_, ok = cache.Get(context.Background(), "key1")
	assert.False(t, ok)
}

func TestMemoryCache_PutEvictsExpired(t *testing.T) {
	cache := NewMemoryCache(time.Hour)
	current := time.Now()
	cache.now = func() time.Time { return current }

	cache.Put(context.Background(), "old", &types.MatchRun{})
	current = current.Add(2 * time.Hour)
	cache.Put(context.Background(), "new", &types.MatchRun{})

	assert.Equal(t, 1, cache.Len())
}

func TestNewMemoryCache_NonPositiveTTLUsesDefault(t *testing.T) {
	cache := NewMemoryCache(0)

	assert.Equal(t, DefaultCacheTTL, cache.ttl)
}

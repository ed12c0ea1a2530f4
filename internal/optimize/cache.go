package optimize

import (
	"context"
	"sync"
	"time"

	"github.com/jonathan/candidate-matcher/internal/types"
)

// DefaultCacheTTL is how long cached match runs stay valid.
const DefaultCacheTTL = time.Hour

// ResultCache stores completed match runs keyed by run fingerprint. A miss on
// a concurrent duplicate computation is acceptable: recomputation is
// correctness-neutral, so implementations do not need request coalescing.
type ResultCache interface {
	// Get returns the cached run for key, or ok=false on a miss. Backend
	// errors are treated as misses.
	Get(ctx context.Context, key string) (run *types.MatchRun, ok bool)
	// Put stores a completed run under key.
	Put(ctx context.Context, key string, run *types.MatchRun)
}

// memoryCacheEntry pairs a cached run with its expiry.
type memoryCacheEntry struct {
	run     *types.MatchRun
	expires time.Time
}

// MemoryCache is an in-process TTL cache safe for concurrent use across match
// requests.
type MemoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryCacheEntry
	now     func() time.Time
}

// NewMemoryCache creates a MemoryCache. A non-positive TTL uses
// DefaultCacheTTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[string]memoryCacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached run for key if present and unexpired.
func (c *MemoryCache) Get(_ context.Context, key string) (*types.MatchRun, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expires) {
		return nil, false
	}
	return entry.run, true
}

// Put stores a run and opportunistically evicts expired entries.
func (c *MemoryCache) Put(_ context.Context, key string, run *types.MatchRun) {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, entry := range c.entries {
		if now.After(entry.expires) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = memoryCacheEntry{run: run, expires: now.Add(c.ttl)}
}

// Len returns the number of stored entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

package optimize

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-matcher/internal/types"
)

// redisKeyPrefix namespaces match-run entries so different jobs and
// deployments never collide with other users of the same Redis instance.
const redisKeyPrefix = "matchrun:"

// RedisCache is a ResultCache backed by Redis, for sharing cached runs across
// processes. Backend failures are logged and treated as cache misses so a
// Redis outage can never fail a match.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisCache creates a Redis-backed cache. A non-positive TTL uses
// DefaultCacheTTL; a nil logger disables logging.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

// Get fetches and decodes a cached run.
func (c *RedisCache) Get(ctx context.Context, key string) (*types.MatchRun, bool) {
	data, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("redis cache get failed", zap.Error(err))
		}
		return nil, false
	}

	var run types.MatchRun
	if err := json.Unmarshal(data, &run); err != nil {
		c.logger.Warn("failed to decode cached match run", zap.Error(err))
		return nil, false
	}
	return &run, true
}

// Put encodes and stores a run with the configured TTL.
func (c *RedisCache) Put(ctx context.Context, key string, run *types.MatchRun) {
	data, err := json.Marshal(run)
	if err != nil {
		c.logger.Warn("failed to encode match run for cache", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("redis cache put failed", zap.Error(err))
	}
}

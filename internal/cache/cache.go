// Package cache provides snapshot caching keyed by search criteria, so
// identical searches within the TTL window skip the upstream providers.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/farescope/flight-offers-service/internal/domain"
	"github.com/farescope/flight-offers-service/internal/metrics"
)

// Cache stores search snapshots keyed by the criteria that produced them.
// Implementations must treat a miss as (nil, false, nil); the error return
// carries infrastructure failures only, which callers degrade to a miss.
type Cache interface {
	// Get returns the cached snapshot for the criteria, if any.
	Get(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchSnapshot, bool, error)

	// Set stores the snapshot for the criteria.
	Set(ctx context.Context, criteria domain.SearchCriteria, snapshot *domain.SearchSnapshot) error

	// Close releases the underlying resources.
	Close() error
}

// RedisConfig holds the Redis connection and expiry options.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisCache is a Cache backed by Redis with per-key TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection with a ping.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

// Get implements Cache. A missing key and a corrupt value are both clean
// misses; only transport failures surface as errors.
func (c *RedisCache) Get(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchSnapshot, bool, error) {
	data, err := c.client.Get(ctx, snapshotKey(criteria)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheOperation("get", "miss")
		return nil, false, nil
	}
	if err != nil {
		metrics.RecordCacheOperation("get", "error")
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var snapshot domain.SearchSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		metrics.RecordCacheOperation("get", "corrupt")
		return nil, false, nil
	}

	metrics.RecordCacheOperation("get", "hit")
	return &snapshot, true, nil
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, criteria domain.SearchCriteria, snapshot *domain.SearchSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := c.client.Set(ctx, snapshotKey(criteria), data, c.ttl).Err(); err != nil {
		metrics.RecordCacheOperation("set", "error")
		return fmt.Errorf("redis set: %w", err)
	}

	metrics.RecordCacheOperation("set", "success")
	return nil
}

// Close implements Cache.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoopCache is the Cache used when Redis is not configured: every lookup
// misses and every store succeeds silently.
type NoopCache struct{}

// NewNoopCache creates a NoopCache.
func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

// Get implements Cache.
func (c *NoopCache) Get(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchSnapshot, bool, error) {
	return nil, false, nil
}

// Set implements Cache.
func (c *NoopCache) Set(ctx context.Context, criteria domain.SearchCriteria, snapshot *domain.SearchSnapshot) error {
	return nil
}

// Close implements Cache.
func (c *NoopCache) Close() error {
	return nil
}

// snapshotKey derives a stable cache key from the canonical JSON encoding
// of the criteria. Criteria that differ in any field hash to different
// keys.
func snapshotKey(criteria domain.SearchCriteria) string {
	data, _ := json.Marshal(criteria)
	hash := sha256.Sum256(data)
	return "offers:" + hex.EncodeToString(hash[:])
}

// Ensure implementations satisfy Cache at compile time.
var (
	_ Cache = (*RedisCache)(nil)
	_ Cache = (*NoopCache)(nil)
)

package repository

import (
	"context"
	"encoding/json"
	"time"

	"qrlink/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// ResolutionKeyPrefix prefixes identifier resolution cache keys
	ResolutionKeyPrefix = "ql:res:"
	// ResolutionCacheTTL is how long a resolution snapshot stays cached
	ResolutionCacheTTL = 24 * time.Hour
)

// CachedResolution is the cache snapshot of an active link, enough to
// redirect and record the scan without a store round trip
type CachedResolution struct {
	LinkID         int64   `json:"link_id"`
	Identifier     string  `json:"identifier"`
	DestinationURL string  `json:"destination_url"`
	OwnerID        *string `json:"owner_id,omitempty"`
}

// RedisRepository handles Redis operations
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// SaveResolution caches an identifier resolution snapshot
func (r *RedisRepository) SaveResolution(ctx context.Context, identifier string, res *CachedResolution, ttl time.Duration) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.resolutionKey(identifier), payload, ttl).Err()
}

// GetResolution retrieves a cached resolution snapshot
func (r *RedisRepository) GetResolution(ctx context.Context, identifier string) (*CachedResolution, error) {
	payload, err := r.client.Get(ctx, r.resolutionKey(identifier)).Bytes()
	if err != nil {
		return nil, err
	}

	var res CachedResolution
	if err := json.Unmarshal(payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// InvalidateResolution drops a cached snapshot. Called on every link
// mutation so deactivated or deleted links stop resolving immediately.
func (r *RedisRepository) InvalidateResolution(ctx context.Context, identifier string) error {
	return r.client.Del(ctx, r.resolutionKey(identifier)).Err()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) resolutionKey(identifier string) string {
	return ResolutionKeyPrefix + identifier
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/restaurant/backend/internal/domain/reservation/acl"
)

// RedisUserReferenceCache implements UserReferenceCache using Redis
// This is suitable for distributed deployments where multiple instances
// should share the user reference cache
type RedisUserReferenceCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisUserReferenceCache creates a new Redis-backed user reference cache
func NewRedisUserReferenceCache(cfg RedisConfig, ttl time.Duration) (*RedisUserReferenceCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisUserReferenceCache{
		client:    client,
		keyPrefix: "acl:user:",
		ttl:       ttl,
	}, nil
}

// NewRedisUserReferenceCacheWithClient creates a cache with an existing Redis client
// This is useful for testing or when sharing a client across components
func NewRedisUserReferenceCacheWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisUserReferenceCache {
	if keyPrefix == "" {
		keyPrefix = "acl:user:"
	}
	return &RedisUserReferenceCache{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// cachedReference is the Redis serialization of a user reference
type cachedReference struct {
	UserCode string `json:"user_code"`
	Username string `json:"username"`
}

// Get retrieves a user reference from Redis.
// Any Redis error is reported as a miss so callers fall back to the
// authoritative lookup.
func (c *RedisUserReferenceCache) Get(ctx context.Context, userCode uuid.UUID) (acl.UserReference, bool) {
	key := c.keyPrefix + userCode.String()

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil is a plain miss; any other failure degrades to a miss
		// as well so the caller performs the authoritative lookup
		return acl.UserReference{}, false
	}

	var cached cachedReference
	if err := json.Unmarshal(payload, &cached); err != nil {
		return acl.UserReference{}, false
	}

	code, err := uuid.Parse(cached.UserCode)
	if err != nil {
		return acl.UserReference{}, false
	}

	return acl.UserReference{UserCode: code, Username: cached.Username}, true
}

// Set stores a user reference in Redis with the configured TTL
func (c *RedisUserReferenceCache) Set(ctx context.Context, ref acl.UserReference) error {
	key := c.keyPrefix + ref.UserCode.String()

	payload, err := json.Marshal(cachedReference{
		UserCode: ref.UserCode.String(),
		Username: ref.Username,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal user reference: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache user reference: %w", err)
	}

	return nil
}

// Invalidate removes a user reference from Redis
func (c *RedisUserReferenceCache) Invalidate(ctx context.Context, userCode uuid.UUID) error {
	key := c.keyPrefix + userCode.String()

	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate user reference: %w", err)
	}

	return nil
}

// Close closes the Redis client
func (c *RedisUserReferenceCache) Close() error {
	return c.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (c *RedisUserReferenceCache) GetClient() *redis.Client {
	return c.client
}

// Ensure RedisUserReferenceCache implements UserReferenceCache
var _ acl.UserReferenceCache = (*RedisUserReferenceCache)(nil)

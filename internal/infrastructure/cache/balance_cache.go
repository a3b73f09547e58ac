// Package cache provides the customer balance cache.
// Derived rollup totals change only when the worker recomputes, so the
// read path can serve them from Redis between recomputes.
package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/rollup"
)

// BalanceCache caches per-customer rollup totals.
type BalanceCache interface {
	Get(ctx context.Context, customerID id.ID) (*rollup.Totals, bool, error)
	Set(ctx context.Context, customerID id.ID, totals *rollup.Totals, ttl time.Duration) error
	Invalidate(ctx context.Context, customerID id.ID) error
	InvalidateAll(ctx context.Context) error
}

// NoopBalanceCache is used when Redis is not configured.
type NoopBalanceCache struct{}

func (NoopBalanceCache) Get(_ context.Context, _ id.ID) (*rollup.Totals, bool, error) {
	return nil, false, nil
}

func (NoopBalanceCache) Set(_ context.Context, _ id.ID, _ *rollup.Totals, _ time.Duration) error {
	return nil
}

func (NoopBalanceCache) Invalidate(_ context.Context, _ id.ID) error {
	return nil
}

func (NoopBalanceCache) InvalidateAll(_ context.Context) error {
	return nil
}

const balanceKeyPrefix = "balance:"

// RedisBalanceCache implements BalanceCache on Redis.
type RedisBalanceCache struct {
	client *redis.Client
}

// NewRedisBalanceCache creates a new Redis-backed balance cache.
func NewRedisBalanceCache(addr string, password string, db int) *RedisBalanceCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisBalanceCache{client: client}
}

// Ping verifies the Redis connection.
func (c *RedisBalanceCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (c *RedisBalanceCache) Close() error {
	return c.client.Close()
}

// Get returns the cached totals for a customer, with a hit flag.
func (c *RedisBalanceCache) Get(ctx context.Context, customerID id.ID) (*rollup.Totals, bool, error) {
	val, err := c.client.Get(ctx, balanceKeyPrefix+customerID.String()).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var totals rollup.Totals
	if err := json.Unmarshal([]byte(val), &totals); err != nil {
		return nil, false, err
	}
	return &totals, true, nil
}

// Set stores the totals for a customer.
func (c *RedisBalanceCache) Set(ctx context.Context, customerID id.ID, totals *rollup.Totals, ttl time.Duration) error {
	if totals == nil {
		return nil
	}
	payload, err := json.Marshal(totals)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, balanceKeyPrefix+customerID.String(), payload, ttl).Err()
}

// Invalidate drops the cached totals for one customer.
func (c *RedisBalanceCache) Invalidate(ctx context.Context, customerID id.ID) error {
	return c.client.Del(ctx, balanceKeyPrefix+customerID.String()).Err()
}

// InvalidateAll drops every cached balance. Called by the worker after
// a full recompute, since a full scan can change any customer.
func (c *RedisBalanceCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, balanceKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

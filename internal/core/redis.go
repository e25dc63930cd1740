// Ruthwik | 2026
// redis.go

package core

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ruthwik2/storefront-admin/internal/config"
)

const redisPingTimeout = 5 * time.Second

// Redis backs the short-lived dashboard caches. Everything stored
// through this client is derived catalog data; credentials and tokens
// never touch it.
type Redis struct {
	Client *redis.Client
}

func NewRedis(ctx context.Context, cfg config.RedisConfig) (*Redis, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.ClientName = "storefront-admin"
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.PoolTimeout = 10 * time.Second
	opts.ConnMaxIdleTime = 5 * time.Minute
	opts.MaxRetries = 2

	client := redis.NewClient(opts)

	if err := pingRedis(ctx, client); err != nil {
		_ = client.Close() //nolint:errcheck // cleanup on connection failure
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Redis{Client: client}, nil
}

func pingRedis(ctx context.Context, client *redis.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	return client.Ping(pingCtx).Err()
}

func (r *Redis) Ping(ctx context.Context) error {
	if err := pingRedis(ctx, r.Client); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	return nil
}

func (r *Redis) PoolStats() *redis.PoolStats {
	return r.Client.PoolStats()
}

func (r *Redis) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

// Package cache keeps short-lived webhook delivery markers in Redis.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects and pings. The client is returned even when the ping fails so the
// caller decides whether Redis is optional.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            cfg.Addr,
		Password:        cfg.Password,
		DB:              cfg.DB,
		PoolSize:        20,
		MinIdleConns:    2,
		ConnMaxIdleTime: 5 * time.Minute,
		DialTimeout:     500 * time.Millisecond,
		ReadTimeout:     300 * time.Millisecond,
		WriteTimeout:    300 * time.Millisecond,
		MaxRetries:      2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis not reachable", "addr", cfg.Addr, "error", err)
		return client, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("connected to redis", "addr", cfg.Addr, "db", cfg.DB)
	return client, nil
}

// RedisDeliveryGuard remembers reconciled webhook deliveries for a fixed TTL.
type RedisDeliveryGuard struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisDeliveryGuard(client redis.Cmdable, ttl time.Duration) *RedisDeliveryGuard {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisDeliveryGuard{
		client: client,
		ttl:    ttl,
	}
}

var _ application.DeliveryGuard = (*RedisDeliveryGuard)(nil)

func (g *RedisDeliveryGuard) Seen(ctx context.Context, key string) (bool, error) {
	n, err := g.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check delivery %s: %w", key, err)
	}
	return n == 1, nil
}

// Remember records the delivery. An existing marker keeps its original expiry.
func (g *RedisDeliveryGuard) Remember(ctx context.Context, key string) error {
	if err := g.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), g.ttl).Err(); err != nil {
		return fmt.Errorf("failed to remember delivery %s: %w", key, err)
	}
	return nil
}

// Package redisstore opens the optional Redis connection used for state that
// must be shared between API replicas.
package redisstore

import (
	"context"
	"log/slog"
	"time"

	"feedbackpro/internal/pkg/config"
	"feedbackpro/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Connect returns a client that has answered a PING.
func Connect(ctx context.Context, cfg config.RateLimitConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrapf(err, "redis ping %s", cfg.RedisAddr)
	}

	slog.Info("redis connected", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
	return client, nil
}

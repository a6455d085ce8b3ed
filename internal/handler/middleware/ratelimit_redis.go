package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"feedbackpro/internal/handler/httperr"
	"feedbackpro/internal/pkg/clock"
	"feedbackpro/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const redisWindow = time.Minute

// RedisRateLimiter counts requests per client IP in fixed one-minute windows
// stored in Redis, so every replica enforces the same budget. The budget per
// window is PublicRequestsPerMinute plus PublicBurst, which matches what the
// in-process token bucket lets through from idle.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int64
	prefix string
	clock  clock.Clock
}

func NewRedisRateLimiter(client *redis.Client, cfg config.RateLimitConfig, clk clock.Clock) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		limit:  int64(cfg.PublicRequestsPerMinute + cfg.PublicBurst),
		prefix: "feedbackpro:ratelimit:",
		clock:  clk,
	}
}

// Allow increments the caller's counter for the current window.
func (rl *RedisRateLimiter) Allow(ctx context.Context, ip string) (bool, error) {
	window := rl.clock.Now().Unix() / int64(redisWindow/time.Second)
	key := fmt.Sprintf("%s%s:%d", rl.prefix, ip, window)

	var count *redis.IntCmd
	_, err := rl.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		count = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, 2*redisWindow)
		return nil
	})
	if err != nil {
		return false, err
	}
	return count.Val() <= rl.limit, nil
}

// Middleware lets requests through when Redis is unreachable. Losing the limit
// for a while is preferable to refusing every respondent.
func (rl *RedisRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := rl.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			slog.Warn("rate limit check failed, allowing request", "error", err)
			c.Next()
			return
		}
		if !ok {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, rateLimitedMessage, nil)
			return
		}
		c.Next()
	}
}

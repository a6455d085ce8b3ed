//go:build e2e

package middleware_test

import (
	"context"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"feedbackpro/internal/handler/middleware"
	"feedbackpro/internal/infra/redisstore"
	"feedbackpro/internal/pkg/clock"
	"feedbackpro/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		Started: true,
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort(nat.Port("6379/tcp")),
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)
	return host + ":" + port.Port()
}

func TestRedisRateLimiter(t *testing.T) {
	cfg := config.RateLimitConfig{PublicRequestsPerMinute: 2, PublicBurst: 1, RedisAddr: startRedis(t)}
	client, err := redisstore.Connect(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	clk := clock.NewFrozen(time.Date(2025, 6, 1, 9, 0, 10, 0, time.UTC))
	rl := middleware.NewRedisRateLimiter(client, cfg, clk)

	t.Run("budget per window and per IP", func(t *testing.T) {
		ctx := context.Background()
		for i := range 3 {
			ok, err := rl.Allow(ctx, "198.51.100.1")
			require.NoError(t, err)
			assert.True(t, ok, "request %d", i)
		}
		ok, err := rl.Allow(ctx, "198.51.100.1")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = rl.Allow(ctx, "198.51.100.2")
		require.NoError(t, err)
		assert.True(t, ok)

		clk.Add(time.Minute)
		ok, err = rl.Allow(ctx, "198.51.100.1")
		require.NoError(t, err)
		assert.True(t, ok, "next window starts fresh")
	})

	t.Run("middleware answers 429", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.POST("/feedback", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

		codes := make([]int, 0, 4)
		for range 4 {
			req := nethttptest.NewRequest(http.MethodPost, "/feedback", nil)
			req.RemoteAddr = "198.51.100.9:4000"
			rec := nethttptest.NewRecorder()
			router.ServeHTTP(rec, req)
			codes = append(codes, rec.Code)
		}
		assert.Equal(t, []int{204, 204, 204, 429}, codes)
	})

	t.Run("fails open when redis is gone", func(t *testing.T) {
		broken, err := redisstore.Connect(context.Background(), cfg)
		require.NoError(t, err)
		require.NoError(t, broken.Close())

		router := gin.New()
		router.POST("/feedback", middleware.NewRedisRateLimiter(broken, cfg, clk).Middleware(),
			func(c *gin.Context) { c.Status(http.StatusNoContent) })
		req := nethttptest.NewRequest(http.MethodPost, "/feedback", nil)
		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"feedbackpro/internal/handler/middleware"
	"feedbackpro/internal/pkg/config"
	"feedbackpro/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, rpm, burst int) *middleware.IPRateLimiter {
	t.Helper()
	rl := middleware.NewIPRateLimiter(config.RateLimitConfig{
		PublicRequestsPerMinute: rpm,
		PublicBurst:             burst,
		VisitorTTL:              time.Minute,
	})
	t.Cleanup(rl.Stop)
	return rl
}

func TestIPRateLimiter_Allow(t *testing.T) {
	t.Run("burst then reject", func(t *testing.T) {
		rl := newLimiter(t, 1, 3)

		for i := 0; i < 3; i++ {
			assert.True(t, rl.Allow("10.0.0.1"), "request %d should pass", i)
		}
		assert.False(t, rl.Allow("10.0.0.1"))
	})

	t.Run("buckets are per IP", func(t *testing.T) {
		rl := newLimiter(t, 1, 1)

		require.True(t, rl.Allow("10.0.0.1"))
		assert.False(t, rl.Allow("10.0.0.1"))
		assert.True(t, rl.Allow("10.0.0.2"))
	})

	t.Run("concurrent callers never exceed the burst", func(t *testing.T) {
		rl := newLimiter(t, 1, 5)

		var allowed atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if rl.Allow("10.0.0.3") {
					allowed.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(5), allowed.Load())
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		rl := newLimiter(t, 1, 1)
		rl.Stop()
		assert.NotPanics(t, rl.Stop)
	})
}

func TestIPRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := newLimiter(t, 1, 2)

	router := gin.New()
	router.POST("/feedback", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	send := func(ip string) *nethttptest.ResponseRecorder {
		req := nethttptest.NewRequest(http.MethodPost, "/feedback", nil)
		req.RemoteAddr = ip + ":12345"
		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusNoContent, send("192.0.2.10").Code)
	assert.Equal(t, http.StatusNoContent, send("192.0.2.10").Code)

	rec := send("192.0.2.10")
	httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")

	assert.Equal(t, http.StatusNoContent, send("192.0.2.11").Code)
}

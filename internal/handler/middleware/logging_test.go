//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"feedbackpro/internal/handler/middleware"
	"feedbackpro/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{http.MethodGet},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}))
	r.Use(logger.LoggingMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	return r
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	r := newLoggedRouter(t)

	t.Run("generated when absent", func(t *testing.T) {
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, nethttptest.NewRequest(http.MethodGet, "/ping", nil))

		id := rec.Header().Get("X-Request-ID")
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("caller's id is kept", func(t *testing.T) {
		want := uuid.NewString()
		req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", want)
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, want, rec.Header().Get("X-Request-ID"))
	})

	t.Run("malformed id is replaced", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "<script>")
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.NotEqual(t, "<script>", rec.Header().Get("X-Request-ID"))
	})
}

func TestCORSMiddleware(t *testing.T) {
	r := newLoggedRouter(t)

	req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := nethttptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"feedbackpro/internal/handler/httperr"
	"feedbackpro/internal/pkg/config"
	"feedbackpro/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

const rateLimitedMessage = "Too many requests. Please try again later."

// RateLimiter guards the unauthenticated endpoints.
type RateLimiter interface {
	Middleware() gin.HandlerFunc
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client IP and forgets idle IPs after the TTL.
type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	limit rate.Limit
	burst int
	ttl   time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

func NewIPRateLimiter(cfg config.RateLimitConfig) *IPRateLimiter {
	ttl := cfg.VisitorTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	rl := &IPRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(float64(cfg.PublicRequestsPerMinute) / 60.0),
		burst:    cfg.PublicBurst,
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	go rl.cleanupVisitors()
	return rl
}

func (rl *IPRateLimiter) Allow(ip string) bool {
	return rl.getLimiter(ip).Allow()
}

func (rl *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, ok := rl.visitors[ip]; ok {
		v.lastSeen = time.Now()
		return v.limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.visitors[ip] = &visitor{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

func (rl *IPRateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for ip, v := range rl.visitors {
				if time.Since(v.lastSeen) > rl.ttl {
					delete(rl.visitors, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (rl *IPRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, rateLimitedMessage, nil)
			return
		}
		c.Next()
	}
}

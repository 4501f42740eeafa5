package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ratewise/ratewise-backend/internal/errors"
	"golang.org/x/time/rate"
)

// RateLimiter keeps a token bucket per client IP. Buckets refill at
// maxRequests per window, with the full window as burst, which matches the
// "N requests per window" contract closely enough for an in-process limiter.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewRateLimiter(window time.Duration, maxRequests int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(window / time.Duration(maxRequests)),
		burst:    maxRequests,
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[ip] = limiter
	}
	return limiter
}

// Middleware rejects requests over the per-IP budget with 429
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiterFor(c.ClientIP()).Allow() {
			log := GetLoggerFromContext(c)
			log.Warn("Rate limit exceeded", map[string]interface{}{
				"ip":   c.ClientIP(),
				"path": c.Request.URL.Path,
			})
			errors.TooManyRequests(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

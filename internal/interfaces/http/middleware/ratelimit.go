package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"demandsurvey/internal/infrastructure/ratelimit"
	"demandsurvey/internal/shared/logger"
	"demandsurvey/internal/shared/utils"
)

// RateLimiter limits requests per client IP with a shared sliding window.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	policy  ratelimit.Policy
	scope   string
	logger  logger.Interface
}

// NewRateLimiter creates a limiter. scope separates counters of different
// endpoints that share one store.
func NewRateLimiter(limiter ratelimit.RateLimiter, scope string, policy ratelimit.Policy, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		policy:  policy,
		scope:   scope,
		logger:  logger,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.scope + ":" + c.ClientIP()

		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.policy)
		if err != nil {
			// Redis being down must not block intake.
			rl.logger.Warnw("rate limiter unavailable, allowing request", "error", err, "key", key)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

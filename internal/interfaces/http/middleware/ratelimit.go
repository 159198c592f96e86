package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"litreview/internal/infrastructure/ratelimit"
	"litreview/internal/shared/logger"
	"litreview/internal/shared/utils"
)

// RateLimit throttles requests per client IP under the given scope, e.g.
// "signin". When the limiter backend fails the request is let through so an
// outage does not lock every user out.
func RateLimit(limiter ratelimit.RateLimiter, scope string, limits ratelimit.Limits, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), key, limits)
		if err != nil {
			log.Warnw("rate limiter unavailable", "scope", scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			log.Warnw("rate limit exceeded", "scope", scope, "client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

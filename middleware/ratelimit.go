package middleware

import (
	"strconv"
	"time"

	"taskpulse/logger"
	"taskpulse/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window limiter backed by Redis INCR/EXPIRE.
// Key format: rl:<window_seconds>:<identifier>. With a nil client, or when
// Redis errors, requests are allowed.
type RateLimiter struct {
	client      *redis.Client
	maxRequests int
	window      time.Duration
}

func NewRateLimiter(client *redis.Client, maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, maxRequests: maxRequests, window: window}
}

// Middleware identifies callers by user id once authenticated, else by IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.client == nil || rl.maxRequests <= 0 {
			c.Next()
			return
		}

		ident := c.GetString("user_id")
		if ident == "" {
			ident = "ip:" + c.ClientIP()
		}
		key := "rl:" + strconv.FormatInt(int64(rl.window.Seconds()), 10) + ":" + ident
		ctx := c.Request.Context()

		val, err := rl.client.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("rate limiter unavailable", "error", err)
			c.Header("X-RateLimit-Error", "redis-error")
			c.Next()
			return
		}
		if val == 1 {
			// first hit opens the window
			if err := rl.client.Expire(ctx, key, rl.window).Err(); err != nil {
				logger.Warn("rate limiter expire failed", "error", err)
			}
		}

		remaining := int64(rl.maxRequests) - val
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if val > int64(rl.maxRequests) {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			utils.TooManyRequests(c, "rate limit exceeded")
			c.Abort()
			return
		}

		RLRequests.WithLabelValues(c.FullPath()).Inc()
		c.Next()
	}
}

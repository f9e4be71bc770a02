package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter is a fixed-window counter shared across instances.
// Preferred over the in-memory limiter when Redis is configured, since
// per-process token buckets under-count behind a load balancer.
type RedisRateLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
	scope  string
}

// NewRedisRateLimiter creates a Redis-backed rate limiter.
// scope namespaces the counter keys so independent limits don't collide.
func NewRedisRateLimiter(client *redis.Client, max int64, window time.Duration, scope string) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		max:    max,
		window: window,
		scope:  scope,
	}
}

// LimitMiddleware returns a Gin middleware enforcing the window per
// client IP. Redis errors fail open: the request passes.
func (rl *RedisRateLimiter) LimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", rl.scope, c.ClientIP())

		count, err := rl.client.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("rate limit check failed: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			rl.client.Expire(ctx, key, rl.window)
		}

		if count > rl.max {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Rate limit exceeded. Please try again later.",
			})
			return
		}

		c.Next()
	}
}

package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RateLimiter is a redis-backed fixed-window limiter keyed by client IP,
// applied to the auth endpoints to slow credential guessing. Fails open
// when redis is unavailable or not configured.
func RateLimiter(rdb *redis.Client, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "ratelimit:auth:" + c.ClientIP()

		n, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if n == 1 {
			rdb.Expire(ctx, key, window)
		}

		if n > limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Muitas tentativas. Tente novamente em instantes.",
			})
			return
		}

		c.Next()
	}
}

package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/ummahconnect/backend/pkg/response"
)

// RateLimiter is a fixed-window limiter on redis. With a nil client it is
// a no-op, so the service still runs without redis configured.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{rdb: rdb, limit: limit, window: window}
}

// Limit enforces the window for the given scope, keyed by authenticated
// user when available and by client IP otherwise.
func (rl *RateLimiter) Limit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.rdb == nil {
			c.Next()
			return
		}

		subject, err := response.GetUserID(c)
		if err != nil {
			subject = c.ClientIP()
		}
		key := fmt.Sprintf("ratelimit:%s:%s", scope, subject)

		ctx := c.Request.Context()
		// INCR and EXPIRE run in one MULTI/EXEC so the key can never be
		// left behind without a TTL. ExpireNX keeps the window fixed
		// rather than sliding it on every hit.
		var incr *redis.IntCmd
		_, err = rl.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			pipe.ExpireNX(ctx, key, rl.window)
			return nil
		})
		if err != nil {
			// Fail open: a broken limiter should not take down the API.
			logrus.WithError(err).Warn("rate limiter unavailable")
			c.Next()
			return
		}
		count := incr.Val()

		if count > int64(rl.limit) {
			ttl, _ := rl.rdb.TTL(ctx, key).Result()
			if ttl > 0 {
				c.Header("Retry-After", fmt.Sprintf("%.0f", ttl.Seconds()))
			}
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}

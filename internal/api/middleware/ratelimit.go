package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/qs3c/studio_go_server/config"
	"github.com/qs3c/studio_go_server/internal/pkg/response"
)

// LoginRateLimit 登录限流：按来源 IP 在固定窗口内计数。
// rdb 为 nil 或 redis 出错时放行，不把限流故障变成登录故障。
func LoginRateLimit(rdb *redis.Client, cfg config.RateLimitConfig) gin.HandlerFunc {
	limit := int64(cfg.LoginAttempts)
	if limit <= 0 {
		limit = 10
	}
	window := time.Duration(cfg.WindowSeconds) * time.Second
	if window <= 0 {
		window = time.Minute
	}

	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "ratelimit:login:" + c.ClientIP()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > limit {
			response.TooManyRequestsError(c, "登录尝试过于频繁，请稍后再试")
			c.Abort()
			return
		}

		c.Next()
	}
}

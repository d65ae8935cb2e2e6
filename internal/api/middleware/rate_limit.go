package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shushant0603/Smart-College-companion-Backend/pkg/redis"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/response"
)

// RateLimit 按客户端 IP 的滑动窗口限流
// rdb 为 nil 时直接放行
func RateLimit(rdb *redis.Client, limit int, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := "ratelimit:" + c.ClientIP()
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, time.Minute)
		if err != nil {
			// 限流依赖不可用时不阻塞业务
			logger.Warn("限流检查失败，放行请求", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "请求过于频繁，请稍后再试")
			c.Abort()
			return
		}
		c.Next()
	}
}

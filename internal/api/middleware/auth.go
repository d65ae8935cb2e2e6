package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/repository"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/jwt"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/redis"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/response"
)

// ContextKeyUserID 存放到 gin.Context 的当前用户 ID 键名
const ContextKeyUserID = "user_id"

// Auth 认证中间件
// 解析 Bearer 令牌 → 校验类型与黑名单 → 确认用户仍存在 → 注入 user_id
// rdb 为 nil 时跳过黑名单检查
func Auth(jwtManager *jwt.Manager, userRepo repository.UserRepository, rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "未提供认证令牌")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, 10002, "认证头格式错误")
			c.Abort()
			return
		}

		claims, err := jwtManager.ParseToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Unauthorized(c, 10002, "令牌已过期")
			} else {
				response.Unauthorized(c, 10002, "令牌无效")
			}
			c.Abort()
			return
		}
		if claims.TokenType != jwt.TokenTypeAccess {
			response.Unauthorized(c, 10002, "令牌类型错误")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Warn("黑名单检查失败，放行请求", zap.Error(err))
			} else if blacklisted {
				response.Unauthorized(c, 10002, "令牌已失效")
				c.Abort()
				return
			}
		}

		// 令牌有效但用户已被删除时同样拒绝
		if _, err := userRepo.GetByID(c.Request.Context(), claims.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Unauthorized(c, 10002, "用户不存在")
			} else {
				logger.Error("认证时查询用户失败", zap.Error(err))
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

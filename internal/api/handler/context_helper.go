package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/api/middleware"
)

// MustGetUserID 从上下文取出认证中间件注入的用户 ID
// 只能在认证路由组内调用，取不到说明中间件装配有误
func MustGetUserID(c *gin.Context) string {
	userID := c.GetString(middleware.ContextKeyUserID)
	if userID == "" {
		panic("认证上下文缺少 user_id，检查中间件装配")
	}
	return userID
}

package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/dto"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/service"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/response"
)

// AuthHandler 认证接口
type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

// NewAuthHandler 创建认证接口
func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// Register POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 11001, "请求参数无效", err.Error())
		return
	}

	result, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}
	response.Created(c, result)
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 11001, "请求参数无效", err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}
	response.OK(c, result)
}

// Refresh POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 11001, "请求参数无效", err.Error())
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}
	response.OK(c, pair)
}

// Logout POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	rawToken := ""
	if parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2); len(parts) == 2 {
		rawToken = parts[1]
	}

	if err := h.authService.Logout(c.Request.Context(), rawToken); err != nil {
		h.handleAuthError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "已登出"})
}

// Me GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := MustGetUserID(c)

	info, err := h.authService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}
	response.OK(c, info)
}

func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		response.BadRequest(c, 11002, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, 11003, err.Error())
	case errors.Is(err, service.ErrInvalidRefreshToken):
		response.Unauthorized(c, 11004, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 11005, err.Error())
	default:
		h.logger.Error("认证接口内部错误", zap.Error(err))
		response.InternalError(c)
	}
}

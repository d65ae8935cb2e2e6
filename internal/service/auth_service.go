package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/dto"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/model"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/repository"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/jwt"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/redis"
)

// 认证模块业务错误
var (
	ErrEmailTaken          = errors.New("邮箱已被注册")
	ErrInvalidCredentials  = errors.New("邮箱或密码错误")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrInvalidRefreshToken = errors.New("刷新令牌无效或已过期")
)

// AuthService 认证业务
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *jwt.Manager
	rdb        *redis.Client
	logger     *zap.Logger
}

// NewAuthService 创建认证业务
func NewAuthService(userRepo repository.UserRepository, jwtManager *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		rdb:        rdb,
		logger:     logger,
	}
}

// Register 注册新用户并直接签发令牌
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		College:      req.College,
		Major:        req.Major,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("用户注册成功", zap.String("user_id", user.UserID), zap.String("email", user.Email))
	return s.buildLoginResponse(user)
}

// Login 校验邮箱密码并签发令牌
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("用户登录成功", zap.String("user_id", user.UserID))
	return s.buildLoginResponse(user)
}

// Refresh 用刷新令牌换取新令牌对，旧刷新令牌作废
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	claims, err := s.jwtManager.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrInvalidRefreshToken
	}

	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("黑名单检查失败，放行刷新请求", zap.Error(err))
		} else if blacklisted {
			return nil, ErrInvalidRefreshToken
		}
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 旧刷新令牌作废，防止重放
	s.blacklist(ctx, claims)

	return s.issueTokenPair(user.UserID)
}

// Logout 将当前令牌加入黑名单直至其自然过期
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	claims, err := s.jwtManager.ParseToken(rawToken)
	if err != nil {
		// 无效令牌视为已登出
		return nil
	}
	s.blacklist(ctx, claims)
	return nil
}

// GetCurrentUser 返回当前用户信息
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	info := toUserInfo(user)
	return &info, nil
}

func (s *AuthService) blacklist(ctx context.Context, claims *jwt.Claims) {
	if s.rdb == nil || claims.ExpiresAt == nil {
		return
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Warn("令牌加入黑名单失败", zap.Error(err))
	}
}

func (s *AuthService) issueTokenPair(userID string) (*dto.TokenPair, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *AuthService) buildLoginResponse(user *model.User) (*dto.LoginResponse, error) {
	pair, err := s.issueTokenPair(user.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{User: toUserInfo(user), Token: *pair}, nil
}

func toUserInfo(user *model.User) dto.UserInfo {
	return dto.UserInfo{
		UserID:  user.UserID,
		Name:    user.Name,
		Email:   user.Email,
		College: user.College,
		Major:   user.Major,
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/shushant0603/Smart-College-companion-Backend/config"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/dto"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/jwt"
)

func newTestAuthService() (*AuthService, *mockUserRepo) {
	repo := newMockUserRepo()
	manager := jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-key-0123456789",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
	return NewAuthService(repo, manager, nil, zap.NewNop()), repo
}

func TestAuthRegister_Success(t *testing.T) {
	svc, _ := newTestAuthService()

	result, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "张三", Email: "zhangsan@example.com", Password: "secret123",
		College: "信息学院", Major: "计算机科学",
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if result.User.UserID == "" {
		t.Error("注册后应返回用户 ID")
	}
	if result.Token.AccessToken == "" || result.Token.RefreshToken == "" {
		t.Error("注册后应直接签发令牌对")
	}
}

func TestAuthRegister_EmailTaken(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	req := &dto.RegisterRequest{Name: "张三", Email: "dup@example.com", Password: "secret123"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("首次注册失败: %v", err)
	}
	if _, err := svc.Register(ctx, req); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("重复注册期望 ErrEmailTaken，实际 %v", err)
	}
}

func TestAuthLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "李四", Email: "lisi@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	// 正确口令
	result, err := svc.Login(ctx, &dto.LoginRequest{Email: "lisi@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if result.User.Email != "lisi@example.com" {
		t.Errorf("登录返回的用户有误: %s", result.User.Email)
	}

	// 错误口令
	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "lisi@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("错误口令期望 ErrInvalidCredentials，实际 %v", err)
	}

	// 不存在的邮箱与错误口令返回同一错误，不泄露账号存在性
	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "ghost@example.com", Password: "x"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("未知邮箱期望 ErrInvalidCredentials，实际 %v", err)
	}
}

func TestAuthRefresh(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	result, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "王五", Email: "wangwu@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	// 刷新令牌换新令牌对
	pair, err := svc.Refresh(ctx, result.Token.RefreshToken)
	if err != nil {
		t.Fatalf("刷新失败: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Error("刷新后应返回完整令牌对")
	}

	// 访问令牌不能用于刷新
	if _, err := svc.Refresh(ctx, result.Token.AccessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("访问令牌刷新期望 ErrInvalidRefreshToken，实际 %v", err)
	}

	// 伪造令牌
	if _, err := svc.Refresh(ctx, "not-a-token"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("伪造令牌期望 ErrInvalidRefreshToken，实际 %v", err)
	}
}

func TestAuthGetCurrentUser(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	result, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "赵六", Email: "zhaoliu@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	info, err := svc.GetCurrentUser(ctx, result.User.UserID)
	if err != nil {
		t.Fatalf("查询当前用户失败: %v", err)
	}
	if info.Name != "赵六" {
		t.Errorf("用户信息有误: %+v", info)
	}

	if _, err := svc.GetCurrentUser(ctx, "missing-id"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际 %v", err)
	}
}

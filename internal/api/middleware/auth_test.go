package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shushant0603/Smart-College-companion-Backend/config"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/model"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/jwt"
)

// stubUserRepo 只实现认证中间件用到的查询
type stubUserRepo struct {
	users map[string]*model.User
}

func (s *stubUserRepo) Create(_ context.Context, _ *model.User) error { return nil }

func (s *stubUserRepo) GetByID(_ context.Context, userID string) (*model.User, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, *jwt.Manager, *stubUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-key-0123456789",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	})
	repo := &stubUserRepo{users: map[string]*model.User{
		"u1": {UserID: "u1", Email: "u1@example.com"},
	}}

	r := gin.New()
	r.GET("/protected", Auth(manager, repo, nil, zap.NewNop()), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextKeyUserID))
	})
	return r, manager, repo
}

func doProtected(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingHeader(t *testing.T) {
	r, _, _ := newAuthTestRouter(t)

	w := doProtected(r, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("缺少认证头期望 401，实际 %d", w.Code)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	r, _, _ := newAuthTestRouter(t)

	for _, header := range []string{"Token abc", "Bearer"} {
		w := doProtected(r, header)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("认证头 %q 期望 401，实际 %d", header, w.Code)
		}
	}
}

func TestAuth_ValidToken(t *testing.T) {
	r, manager, _ := newAuthTestRouter(t)

	token, err := manager.GenerateAccessToken("u1")
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	w := doProtected(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("有效令牌期望 200，实际 %d: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != "u1" {
		t.Errorf("上下文注入的 user_id 有误: %s", w.Body.String())
	}
}

func TestAuth_RefreshTokenRejected(t *testing.T) {
	r, manager, _ := newAuthTestRouter(t)

	token, err := manager.GenerateRefreshToken("u1")
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	w := doProtected(r, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("刷新令牌访问业务接口期望 401，实际 %d", w.Code)
	}
}

func TestAuth_DeletedUserRejected(t *testing.T) {
	r, manager, _ := newAuthTestRouter(t)

	// 令牌合法但用户已不存在
	token, err := manager.GenerateAccessToken("ghost")
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	w := doProtected(r, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("已删除用户期望 401，实际 %d", w.Code)
	}
}

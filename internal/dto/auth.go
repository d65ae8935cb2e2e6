package dto

// ── 认证请求 ──

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name"     binding:"required,max=100"`
	Email    string `json:"email"    binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	College  string `json:"college"  binding:"omitempty,max=200"`
	Major    string `json:"major"    binding:"omitempty,max=100"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest 刷新令牌请求
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ── 认证响应 ──

// TokenPair 访问令牌与刷新令牌
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserInfo 用户信息
type UserInfo struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	College string `json:"college"`
	Major   string `json:"major"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	User  UserInfo  `json:"user"`
	Token TokenPair `json:"token"`
}

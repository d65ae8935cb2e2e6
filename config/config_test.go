package config

import "testing"

func TestLoad_SecretFromEnvOnly(t *testing.T) {
	// 密钥只通过环境变量提供，不依赖配置文件
	t.Setenv("SCC_AUTH_JWT_SECRET", "env-only-secret-0123456789")
	t.Setenv("SCC_AI_API_KEY", "env-api-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("加载失败: %v", err)
	}
	if cfg.Auth.JWTSecret != "env-only-secret-0123456789" {
		t.Errorf("jwt_secret 未从环境变量读取: %q", cfg.Auth.JWTSecret)
	}
	if cfg.AI.APIKey != "env-api-key" {
		t.Errorf("ai.api_key 未从环境变量读取: %q", cfg.AI.APIKey)
	}
}

func TestLoad_MissingSecretRejected(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("缺少 jwt_secret 应拒绝启动")
	}
}

func TestLoad_ShortSecretRejected(t *testing.T) {
	t.Setenv("SCC_AUTH_JWT_SECRET", "short")
	if _, err := Load(""); err == nil {
		t.Fatal("过短的 jwt_secret 应拒绝启动")
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/shushant0603/Smart-College-companion-Backend/config"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/api/handler"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/api/router"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/repository"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/service"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/database"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/gemini"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/jwt"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/logger"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	zapLogger, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync()

	// 3. 连接数据库
	db, err := database.NewDB(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("初始化数据库失败", zap.Error(err))
	}

	// 4. 执行数据库迁移
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, zapLogger); err != nil {
		zapLogger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 5. 连接 Redis（可选，失败时黑名单与限流降级）
	rdb, err := redis.NewClient(&cfg.Redis, zapLogger)
	if err != nil {
		zapLogger.Warn("Redis 不可用，令牌黑名单与限流已停用", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	// 6. 初始化 JWT 管理器
	jwtManager := jwt.NewManager(&cfg.Auth)

	// 7. 初始化笔记摘要后端（未配置 API Key 时走本地降级）
	var summarizer service.Summarizer
	if cfg.AI.APIKey != "" {
		summarizer = gemini.New(&cfg.AI)
		zapLogger.Info("外部摘要后端已启用", zap.String("model", cfg.AI.Model))
	} else {
		zapLogger.Info("未配置 AI API Key，笔记摘要使用本地降级")
	}

	// 8. 装配各层
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, jwtManager, rdb, summarizer, zapLogger)
	handlers := handler.NewHandlers(services, zapLogger)
	engine := router.Setup(cfg, handlers, jwtManager, repos.User, rdb, zapLogger)

	// 9. 启动 HTTP 服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zapLogger.Info("服务器启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("服务器异常退出", zap.Error(err))
		}
	}()

	// 10. 优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("收到停机信号，开始优雅停机")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("优雅停机失败", zap.Error(err))
	}
	zapLogger.Info("服务器已退出")
}

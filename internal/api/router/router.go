package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shushant0603/Smart-College-companion-Backend/config"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/api/handler"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/api/middleware"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/repository"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/jwt"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/redis"
)

// maxBodyBytes 请求体大小上限
const maxBodyBytes = 1 << 20

// Setup 装配全部路由与中间件
func Setup(
	cfg *config.Config,
	handlers *handler.Handlers,
	jwtManager *jwt.Manager,
	userRepo repository.UserRepository,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Security())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))
	r.Use(middleware.RateLimit(rdb, config.RateLimitPerMin, logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.Auth(jwtManager, userRepo, rdb, logger)
	v1 := r.Group("/api/v1")

	// ── 认证 ──
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", handlers.Auth.Register)
		authGroup.POST("/login", handlers.Auth.Login)
		authGroup.POST("/refresh", handlers.Auth.Refresh)
		authGroup.POST("/logout", handlers.Auth.Logout)
		authGroup.GET("/me", auth, handlers.Auth.Me)
	}

	// ── 课程表 ──
	timetable := v1.Group("/timetable", auth)
	{
		timetable.GET("", handlers.Timetable.List)
		timetable.POST("", handlers.Timetable.Create)
		timetable.PUT("/:id", handlers.Timetable.Update)
		timetable.DELETE("/:id", handlers.Timetable.Delete)
	}

	// ── 作业 ──
	assignments := v1.Group("/assignments", auth)
	{
		assignments.GET("", handlers.Assignment.List)
		assignments.POST("", handlers.Assignment.Create)
		assignments.PUT("/:id", handlers.Assignment.Update)
		assignments.PATCH("/:id/status", handlers.Assignment.ToggleStatus)
		assignments.DELETE("/:id", handlers.Assignment.Delete)
	}

	// ── 出勤 ──
	attendance := v1.Group("/attendance", auth)
	{
		attendance.GET("", handlers.Attendance.List)
		attendance.POST("", handlers.Attendance.Create)
		attendance.PUT("/:id", handlers.Attendance.Update)
		attendance.PATCH("/:id/update", handlers.Attendance.Increment)
		attendance.DELETE("/:id", handlers.Attendance.Delete)
	}

	// ── 笔记 ──
	notes := v1.Group("/notes", auth)
	{
		notes.GET("", handlers.Note.List)
		notes.POST("", handlers.Note.Create)
		notes.PUT("/:id", handlers.Note.Update)
		notes.POST("/:id/summarize", handlers.Note.Summarize)
		notes.DELETE("/:id", handlers.Note.Delete)
	}

	// ── 校园事件 ──
	events := v1.Group("/events", auth)
	{
		events.GET("", handlers.Event.List)
		events.GET("/upcoming", handlers.Event.ListUpcoming)
		events.POST("", handlers.Event.Create)
		events.PUT("/:id", handlers.Event.Update)
		events.DELETE("/:id", handlers.Event.Delete)
	}

	// ── 导出 ──
	export := v1.Group("/export", auth)
	{
		export.GET("/timetable", handlers.Export.Timetable)
		export.GET("/events", handlers.Export.Events)
		export.GET("/attendance", handlers.Export.Attendance)
	}

	return r
}

package service

import (
	"go.uber.org/zap"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/repository"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/jwt"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/redis"
)

// Services 业务层聚合，统一注入 Handler 层
type Services struct {
	Auth       *AuthService
	Timetable  *TimetableService
	Assignment *AssignmentService
	Attendance *AttendanceService
	Note       *NoteService
	Event      *EventService
	Export     *ExportService
}

// NewServices 创建业务层聚合
// summarizer 可为 nil，此时笔记增强全部走本地降级
func NewServices(
	repos *repository.Repositories,
	jwtManager *jwt.Manager,
	rdb *redis.Client,
	summarizer Summarizer,
	logger *zap.Logger,
) *Services {
	return &Services{
		Auth:       NewAuthService(repos.User, jwtManager, rdb, logger),
		Timetable:  NewTimetableService(repos.Timetable, logger),
		Assignment: NewAssignmentService(repos.Assignment, logger),
		Attendance: NewAttendanceService(repos.Attendance, logger),
		Note:       NewNoteService(repos.Note, summarizer, logger),
		Event:      NewEventService(repos.Event, logger),
		Export:     NewExportService(repos.Timetable, repos.Event, repos.Attendance, logger),
	}
}

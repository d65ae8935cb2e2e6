package handler

import (
	"go.uber.org/zap"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/service"
)

// Handlers 接口层聚合，统一注入路由
type Handlers struct {
	Auth       *AuthHandler
	Timetable  *TimetableHandler
	Assignment *AssignmentHandler
	Attendance *AttendanceHandler
	Note       *NoteHandler
	Event      *EventHandler
	Export     *ExportHandler
}

// NewHandlers 创建接口层聚合
func NewHandlers(services *service.Services, logger *zap.Logger) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(services.Auth, logger),
		Timetable:  NewTimetableHandler(services.Timetable, logger),
		Assignment: NewAssignmentHandler(services.Assignment, logger),
		Attendance: NewAttendanceHandler(services.Attendance, logger),
		Note:       NewNoteHandler(services.Note, logger),
		Event:      NewEventHandler(services.Event, logger),
		Export:     NewExportHandler(services.Export, logger),
	}
}

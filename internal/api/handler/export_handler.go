package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/service"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/response"
)

const (
	contentTypeICS  = "text/calendar; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler 导出接口
type ExportHandler struct {
	exportService *service.ExportService
	logger        *zap.Logger
}

// NewExportHandler 创建导出接口
func NewExportHandler(exportService *service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{exportService: exportService, logger: logger}
}

// Timetable GET /api/v1/export/timetable
func (h *ExportHandler) Timetable(c *gin.Context) {
	data, err := h.exportService.ExportTimetableICS(c.Request.Context(), MustGetUserID(c))
	if err != nil {
		h.logger.Error("课程表导出失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="timetable.ics"`)
	c.Data(http.StatusOK, contentTypeICS, data)
}

// Events GET /api/v1/export/events
func (h *ExportHandler) Events(c *gin.Context) {
	data, err := h.exportService.ExportEventsICS(c.Request.Context(), MustGetUserID(c))
	if err != nil {
		h.logger.Error("事件导出失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="events.ics"`)
	c.Data(http.StatusOK, contentTypeICS, data)
}

// Attendance GET /api/v1/export/attendance
func (h *ExportHandler) Attendance(c *gin.Context) {
	data, err := h.exportService.ExportAttendanceXLSX(c.Request.Context(), MustGetUserID(c))
	if err != nil {
		h.logger.Error("出勤导出失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="attendance.xlsx"`)
	c.Data(http.StatusOK, contentTypeXLSX, data)
}

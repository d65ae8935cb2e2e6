package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/dto"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/service"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/response"
)

// AttendanceHandler 出勤接口
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
	logger            *zap.Logger
}

// NewAttendanceHandler 创建出勤接口
func NewAttendanceHandler(attendanceService *service.AttendanceService, logger *zap.Logger) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService, logger: logger}
}

// List GET /api/v1/attendance
func (h *AttendanceHandler) List(c *gin.Context) {
	records, err := h.attendanceService.List(c.Request.Context(), MustGetUserID(c))
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}
	response.OK(c, records)
}

// Create POST /api/v1/attendance
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 14001, "请求参数无效", err.Error())
		return
	}

	record, err := h.attendanceService.Create(c.Request.Context(), MustGetUserID(c), &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}
	response.Created(c, record)
}

// Update PUT /api/v1/attendance/:id
func (h *AttendanceHandler) Update(c *gin.Context) {
	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 14001, "请求参数无效", err.Error())
		return
	}

	record, err := h.attendanceService.Update(c.Request.Context(), MustGetUserID(c), c.Param("id"), &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}
	response.OK(c, record)
}

// Increment PATCH /api/v1/attendance/:id/update
func (h *AttendanceHandler) Increment(c *gin.Context) {
	var req dto.IncrementAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 14001, "请求参数无效", err.Error())
		return
	}

	record, err := h.attendanceService.Increment(c.Request.Context(), MustGetUserID(c), c.Param("id"), *req.Attended)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}
	response.OK(c, record)
}

// Delete DELETE /api/v1/attendance/:id
func (h *AttendanceHandler) Delete(c *gin.Context) {
	if err := h.attendanceService.Delete(c.Request.Context(), MustGetUserID(c), c.Param("id")); err != nil {
		h.handleAttendanceError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "删除成功"})
}

func (h *AttendanceHandler) handleAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAttendedExceedsTotal):
		response.BadRequest(c, 14002, err.Error())
	case errors.Is(err, service.ErrAttendanceNotFound):
		response.NotFound(c, 14003, err.Error())
	default:
		h.logger.Error("出勤接口内部错误", zap.Error(err))
		response.InternalError(c)
	}
}

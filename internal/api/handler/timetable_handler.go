package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/dto"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/service"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/response"
)

// TimetableHandler 课程表接口
type TimetableHandler struct {
	timetableService *service.TimetableService
	logger           *zap.Logger
}

// NewTimetableHandler 创建课程表接口
func NewTimetableHandler(timetableService *service.TimetableService, logger *zap.Logger) *TimetableHandler {
	return &TimetableHandler{timetableService: timetableService, logger: logger}
}

// List GET /api/v1/timetable
func (h *TimetableHandler) List(c *gin.Context) {
	entries, err := h.timetableService.List(c.Request.Context(), MustGetUserID(c))
	if err != nil {
		h.handleTimetableError(c, err)
		return
	}
	response.OK(c, entries)
}

// Create POST /api/v1/timetable
func (h *TimetableHandler) Create(c *gin.Context) {
	var req dto.CreateTimetableEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 12001, "请求参数无效", err.Error())
		return
	}

	entry, err := h.timetableService.Create(c.Request.Context(), MustGetUserID(c), &req)
	if err != nil {
		h.handleTimetableError(c, err)
		return
	}
	response.Created(c, entry)
}

// Update PUT /api/v1/timetable/:id
func (h *TimetableHandler) Update(c *gin.Context) {
	var req dto.UpdateTimetableEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 12001, "请求参数无效", err.Error())
		return
	}

	entry, err := h.timetableService.Update(c.Request.Context(), MustGetUserID(c), c.Param("id"), &req)
	if err != nil {
		h.handleTimetableError(c, err)
		return
	}
	response.OK(c, entry)
}

// Delete DELETE /api/v1/timetable/:id
func (h *TimetableHandler) Delete(c *gin.Context) {
	if err := h.timetableService.Delete(c.Request.Context(), MustGetUserID(c), c.Param("id")); err != nil {
		h.handleTimetableError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "删除成功"})
}

func (h *TimetableHandler) handleTimetableError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidWeekday),
		errors.Is(err, service.ErrInvalidTime),
		errors.Is(err, service.ErrInvalidTimeSpan):
		response.BadRequest(c, 12002, err.Error())
	case errors.Is(err, service.ErrEntryNotFound):
		response.NotFound(c, 12003, err.Error())
	default:
		h.logger.Error("课程表接口内部错误", zap.Error(err))
		response.InternalError(c)
	}
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/dto"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/service"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/response"
)

// EventHandler 校园事件接口
type EventHandler struct {
	eventService *service.EventService
	logger       *zap.Logger
}

// NewEventHandler 创建校园事件接口
func NewEventHandler(eventService *service.EventService, logger *zap.Logger) *EventHandler {
	return &EventHandler{eventService: eventService, logger: logger}
}

// List GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventService.List(c.Request.Context(), MustGetUserID(c))
	if err != nil {
		h.handleEventError(c, err)
		return
	}
	response.OK(c, events)
}

// ListUpcoming GET /api/v1/events/upcoming
func (h *EventHandler) ListUpcoming(c *gin.Context) {
	events, err := h.eventService.ListUpcoming(c.Request.Context(), MustGetUserID(c))
	if err != nil {
		h.handleEventError(c, err)
		return
	}
	response.OK(c, events)
}

// Create POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 16001, "请求参数无效", err.Error())
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), MustGetUserID(c), &req)
	if err != nil {
		h.handleEventError(c, err)
		return
	}
	response.Created(c, event)
}

// Update PUT /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 16001, "请求参数无效", err.Error())
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), MustGetUserID(c), c.Param("id"), &req)
	if err != nil {
		h.handleEventError(c, err)
		return
	}
	response.OK(c, event)
}

// Delete DELETE /api/v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.eventService.Delete(c.Request.Context(), MustGetUserID(c), c.Param("id")); err != nil {
		h.handleEventError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "删除成功"})
}

func (h *EventHandler) handleEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidEventType):
		response.BadRequest(c, 16002, err.Error())
	case errors.Is(err, service.ErrEventNotFound):
		response.NotFound(c, 16003, err.Error())
	default:
		h.logger.Error("事件接口内部错误", zap.Error(err))
		response.InternalError(c)
	}
}

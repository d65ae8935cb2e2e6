package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/dto"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/service"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/response"
)

// AssignmentHandler 作业接口
type AssignmentHandler struct {
	assignmentService *service.AssignmentService
	logger            *zap.Logger
}

// NewAssignmentHandler 创建作业接口
func NewAssignmentHandler(assignmentService *service.AssignmentService, logger *zap.Logger) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService, logger: logger}
}

// List GET /api/v1/assignments
func (h *AssignmentHandler) List(c *gin.Context) {
	assignments, err := h.assignmentService.List(c.Request.Context(), MustGetUserID(c))
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}
	response.OK(c, assignments)
}

// Create POST /api/v1/assignments
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 13001, "请求参数无效", err.Error())
		return
	}

	assignment, err := h.assignmentService.Create(c.Request.Context(), MustGetUserID(c), &req)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}
	response.Created(c, assignment)
}

// Update PUT /api/v1/assignments/:id
func (h *AssignmentHandler) Update(c *gin.Context) {
	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 13001, "请求参数无效", err.Error())
		return
	}

	assignment, err := h.assignmentService.Update(c.Request.Context(), MustGetUserID(c), c.Param("id"), &req)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}
	response.OK(c, assignment)
}

// ToggleStatus PATCH /api/v1/assignments/:id/status
func (h *AssignmentHandler) ToggleStatus(c *gin.Context) {
	assignment, err := h.assignmentService.ToggleStatus(c.Request.Context(), MustGetUserID(c), c.Param("id"))
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}
	response.OK(c, assignment)
}

// Delete DELETE /api/v1/assignments/:id
func (h *AssignmentHandler) Delete(c *gin.Context) {
	if err := h.assignmentService.Delete(c.Request.Context(), MustGetUserID(c), c.Param("id")); err != nil {
		h.handleAssignmentError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "删除成功"})
}

func (h *AssignmentHandler) handleAssignmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPriority):
		response.BadRequest(c, 13002, err.Error())
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.NotFound(c, 13003, err.Error())
	default:
		h.logger.Error("作业接口内部错误", zap.Error(err))
		response.InternalError(c)
	}
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/dto"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/service"
	"github.com/shushant0603/Smart-College-companion-Backend/pkg/response"
)

// NoteHandler 笔记接口
type NoteHandler struct {
	noteService *service.NoteService
	logger      *zap.Logger
}

// NewNoteHandler 创建笔记接口
func NewNoteHandler(noteService *service.NoteService, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{noteService: noteService, logger: logger}
}

// List GET /api/v1/notes
func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.noteService.List(c.Request.Context(), MustGetUserID(c))
	if err != nil {
		h.handleNoteError(c, err)
		return
	}
	response.OK(c, notes)
}

// Create POST /api/v1/notes
func (h *NoteHandler) Create(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 15001, "请求参数无效", err.Error())
		return
	}

	note, err := h.noteService.Create(c.Request.Context(), MustGetUserID(c), &req)
	if err != nil {
		h.handleNoteError(c, err)
		return
	}
	response.Created(c, note)
}

// Update PUT /api/v1/notes/:id
func (h *NoteHandler) Update(c *gin.Context) {
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 15001, "请求参数无效", err.Error())
		return
	}

	note, err := h.noteService.Update(c.Request.Context(), MustGetUserID(c), c.Param("id"), &req)
	if err != nil {
		h.handleNoteError(c, err)
		return
	}
	response.OK(c, note)
}

// Summarize POST /api/v1/notes/:id/summarize
func (h *NoteHandler) Summarize(c *gin.Context) {
	note, err := h.noteService.Summarize(c.Request.Context(), MustGetUserID(c), c.Param("id"))
	if err != nil {
		h.handleNoteError(c, err)
		return
	}
	response.OK(c, note)
}

// Delete DELETE /api/v1/notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	if err := h.noteService.Delete(c.Request.Context(), MustGetUserID(c), c.Param("id")); err != nil {
		h.handleNoteError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "删除成功"})
}

func (h *NoteHandler) handleNoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoteNotFound):
		response.NotFound(c, 15002, err.Error())
	default:
		h.logger.Error("笔记接口内部错误", zap.Error(err))
		response.InternalError(c)
	}
}

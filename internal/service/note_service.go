package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/dto"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/model"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/repository"
)

// 笔记模块业务错误
var ErrNoteNotFound = errors.New("笔记不存在")

// enrichTimeout 单次外部增强调用的时间上限
const enrichTimeout = 15 * time.Second

// NoteService 笔记业务
// 摘要与要点为派生字段：优先走外部模型，失败时降级为本地截断摘要，
// 增强失败不影响笔记本身的写入
type NoteService struct {
	repo       repository.NoteRepository
	summarizer Summarizer
	logger     *zap.Logger
}

// NewNoteService 创建笔记业务，summarizer 可为 nil
func NewNoteService(repo repository.NoteRepository, summarizer Summarizer, logger *zap.Logger) *NoteService {
	return &NoteService{repo: repo, summarizer: summarizer, logger: logger}
}

// List 返回当前用户的全部笔记，按创建时间倒序
func (s *NoteService) List(ctx context.Context, userID string) ([]dto.NoteResponse, error) {
	notes, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.NoteResponse, 0, len(notes))
	for i := range notes {
		result = append(result, toNoteResponse(&notes[i]))
	}
	return result, nil
}

// Create 创建笔记并生成摘要与要点
func (s *NoteService) Create(ctx context.Context, userID string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	note := &model.Note{
		UserID:  userID,
		Subject: req.Subject,
		Title:   req.Title,
		Content: req.Content,
		Tags:    model.StringArray(req.Tags),
	}
	if note.Tags == nil {
		note.Tags = model.StringArray{}
	}
	s.enrich(ctx, note)

	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}

	s.logger.Info("笔记已创建", zap.String("user_id", userID), zap.String("note_id", note.NoteID))
	resp := toNoteResponse(note)
	return &resp, nil
}

// Update 更新笔记，正文变更时重新生成摘要与要点
func (s *NoteService) Update(ctx context.Context, userID, noteID string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	note, err := s.getOwned(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	if req.Subject != nil {
		note.Subject = *req.Subject
	}
	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Tags != nil {
		note.Tags = model.StringArray(*req.Tags)
	}
	if req.Content != nil && *req.Content != note.Content {
		note.Content = *req.Content
		s.enrich(ctx, note)
	}

	if err := s.repo.Update(ctx, note); err != nil {
		return nil, err
	}
	resp := toNoteResponse(note)
	return &resp, nil
}

// Summarize 对已有笔记按需重新生成摘要与要点
func (s *NoteService) Summarize(ctx context.Context, userID, noteID string) (*dto.NoteResponse, error) {
	note, err := s.getOwned(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	s.enrich(ctx, note)
	if err := s.repo.Update(ctx, note); err != nil {
		return nil, err
	}
	resp := toNoteResponse(note)
	return &resp, nil
}

// Delete 删除笔记
func (s *NoteService) Delete(ctx context.Context, userID, noteID string) error {
	affected, err := s.repo.Delete(ctx, noteID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoteNotFound
	}
	s.logger.Info("笔记已删除", zap.String("user_id", userID), zap.String("note_id", noteID))
	return nil
}

// enrich 生成摘要与要点，任何失败都降级为本地截断摘要
func (s *NoteService) enrich(ctx context.Context, note *model.Note) {
	if s.summarizer == nil {
		note.Summary = LocalSummary(note.Content)
		note.KeyPoints = ""
		return
	}

	ctx, cancel := context.WithTimeout(ctx, enrichTimeout)
	defer cancel()

	summary, err := s.summarizer.Summarize(ctx, note.Content)
	if err != nil {
		s.logger.Warn("外部摘要生成失败，降级为本地摘要",
			zap.String("note_id", note.NoteID), zap.Error(err))
		note.Summary = LocalSummary(note.Content)
		note.KeyPoints = ""
		return
	}
	note.Summary = summary

	keyPoints, err := s.summarizer.ExtractKeyPoints(ctx, note.Content)
	if err != nil {
		s.logger.Warn("要点提取失败", zap.String("note_id", note.NoteID), zap.Error(err))
		note.KeyPoints = ""
		return
	}
	note.KeyPoints = keyPoints
}

func (s *NoteService) getOwned(ctx context.Context, noteID, userID string) (*model.Note, error) {
	note, err := s.repo.GetByIDAndUser(ctx, noteID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

func toNoteResponse(n *model.Note) dto.NoteResponse {
	return dto.NoteResponse{
		NoteID:    n.NoteID,
		Subject:   n.Subject,
		Title:     n.Title,
		Content:   n.Content,
		Summary:   n.Summary,
		KeyPoints: n.KeyPoints,
		Tags:      []string(n.Tags),
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
		UpdatedAt: n.UpdatedAt.Format(time.RFC3339),
	}
}

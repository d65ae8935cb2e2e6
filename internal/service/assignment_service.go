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

// 作业模块业务错误
var (
	ErrInvalidPriority    = errors.New("无效的优先级，必须为 low、medium 或 high")
	ErrAssignmentNotFound = errors.New("作业不存在")
)

// AssignmentService 作业业务
type AssignmentService struct {
	repo   repository.AssignmentRepository
	logger *zap.Logger
}

// NewAssignmentService 创建作业业务
func NewAssignmentService(repo repository.AssignmentRepository, logger *zap.Logger) *AssignmentService {
	return &AssignmentService{repo: repo, logger: logger}
}

// List 返回当前用户的全部作业，按截止时间升序
func (s *AssignmentService) List(ctx context.Context, userID string) ([]dto.AssignmentResponse, error) {
	assignments, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		result = append(result, toAssignmentResponse(&assignments[i]))
	}
	return result, nil
}

// Create 创建作业，未指定优先级时默认 medium
func (s *AssignmentService) Create(ctx context.Context, userID string, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.IsValidPriority(priority) {
		return nil, ErrInvalidPriority
	}

	assignment := &model.Assignment{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		DueDate:     req.DueDate,
		Priority:    priority,
		Status:      model.StatusPending,
	}
	if err := s.repo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	s.logger.Info("作业已创建",
		zap.String("user_id", userID),
		zap.String("assignment_id", assignment.AssignmentID))
	resp := toAssignmentResponse(assignment)
	return &resp, nil
}

// Update 更新作业，仅更新请求中出现的字段
func (s *AssignmentService) Update(ctx context.Context, userID, assignmentID string, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error) {
	assignment, err := s.getOwned(ctx, assignmentID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.Description != nil {
		assignment.Description = *req.Description
	}
	if req.Subject != nil {
		assignment.Subject = *req.Subject
	}
	if req.DueDate != nil {
		assignment.DueDate = *req.DueDate
	}
	if req.Priority != nil {
		if !model.IsValidPriority(*req.Priority) {
			return nil, ErrInvalidPriority
		}
		assignment.Priority = *req.Priority
	}

	if err := s.repo.Update(ctx, assignment); err != nil {
		return nil, err
	}
	resp := toAssignmentResponse(assignment)
	return &resp, nil
}

// ToggleStatus 在 pending 与 completed 之间切换状态
func (s *AssignmentService) ToggleStatus(ctx context.Context, userID, assignmentID string) (*dto.AssignmentResponse, error) {
	assignment, err := s.getOwned(ctx, assignmentID, userID)
	if err != nil {
		return nil, err
	}

	assignment.ToggleStatus()
	if err := s.repo.Update(ctx, assignment); err != nil {
		return nil, err
	}

	s.logger.Info("作业状态已切换",
		zap.String("assignment_id", assignment.AssignmentID),
		zap.String("status", assignment.Status))
	resp := toAssignmentResponse(assignment)
	return &resp, nil
}

// Delete 删除作业
func (s *AssignmentService) Delete(ctx context.Context, userID, assignmentID string) error {
	affected, err := s.repo.Delete(ctx, assignmentID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}
	s.logger.Info("作业已删除", zap.String("user_id", userID), zap.String("assignment_id", assignmentID))
	return nil
}

func (s *AssignmentService) getOwned(ctx context.Context, assignmentID, userID string) (*model.Assignment, error) {
	assignment, err := s.repo.GetByIDAndUser(ctx, assignmentID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return assignment, nil
}

func toAssignmentResponse(a *model.Assignment) dto.AssignmentResponse {
	return dto.AssignmentResponse{
		AssignmentID: a.AssignmentID,
		Title:        a.Title,
		Description:  a.Description,
		Subject:      a.Subject,
		DueDate:      a.DueDate,
		Priority:     a.Priority,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
}

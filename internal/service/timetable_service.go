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

// 课程表模块业务错误
var (
	ErrInvalidWeekday  = errors.New("无效的星期，必须为 Monday 到 Sunday")
	ErrInvalidTime     = errors.New("时间格式无效，必须为 HH:MM")
	ErrInvalidTimeSpan = errors.New("结束时间必须晚于开始时间")
	ErrEntryNotFound   = errors.New("课程表条目不存在")
)

// TimetableService 课程表业务
type TimetableService struct {
	repo   repository.TimetableRepository
	logger *zap.Logger
}

// NewTimetableService 创建课程表业务
func NewTimetableService(repo repository.TimetableRepository, logger *zap.Logger) *TimetableService {
	return &TimetableService{repo: repo, logger: logger}
}

// List 返回当前用户的全部课程表条目，按星期再按开始时间排序
func (s *TimetableService) List(ctx context.Context, userID string) ([]dto.TimetableEntryResponse, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TimetableEntryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, toTimetableEntryResponse(&entries[i]))
	}
	return result, nil
}

// Create 创建课程表条目
func (s *TimetableService) Create(ctx context.Context, userID string, req *dto.CreateTimetableEntryRequest) (*dto.TimetableEntryResponse, error) {
	if !model.IsValidWeekday(req.Day) {
		return nil, ErrInvalidWeekday
	}
	if err := validateTimeSpan(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	entry := &model.TimetableEntry{
		UserID:     userID,
		Day:        req.Day,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Subject:    req.Subject,
		Room:       req.Room,
		Instructor: req.Instructor,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("课程表条目已创建",
		zap.String("user_id", userID),
		zap.String("entry_id", entry.EntryID),
		zap.String("day", entry.Day))
	resp := toTimetableEntryResponse(entry)
	return &resp, nil
}

// Update 更新课程表条目，仅更新请求中出现的字段
func (s *TimetableService) Update(ctx context.Context, userID, entryID string, req *dto.UpdateTimetableEntryRequest) (*dto.TimetableEntryResponse, error) {
	entry, err := s.repo.GetByIDAndUser(ctx, entryID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	if req.Day != nil {
		if !model.IsValidWeekday(*req.Day) {
			return nil, ErrInvalidWeekday
		}
		entry.Day = *req.Day
	}
	if req.StartTime != nil {
		entry.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		entry.EndTime = *req.EndTime
	}
	if err := validateTimeSpan(entry.StartTime, entry.EndTime); err != nil {
		return nil, err
	}
	if req.Subject != nil {
		entry.Subject = *req.Subject
	}
	if req.Room != nil {
		entry.Room = *req.Room
	}
	if req.Instructor != nil {
		entry.Instructor = *req.Instructor
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	resp := toTimetableEntryResponse(entry)
	return &resp, nil
}

// Delete 删除课程表条目
func (s *TimetableService) Delete(ctx context.Context, userID, entryID string) error {
	affected, err := s.repo.Delete(ctx, entryID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEntryNotFound
	}
	s.logger.Info("课程表条目已删除", zap.String("user_id", userID), zap.String("entry_id", entryID))
	return nil
}

// validateTimeSpan 校验 HH:MM 格式且结束时间晚于开始时间
func validateTimeSpan(start, end string) error {
	st, err := time.Parse("15:04", start)
	if err != nil {
		return ErrInvalidTime
	}
	et, err := time.Parse("15:04", end)
	if err != nil {
		return ErrInvalidTime
	}
	if !et.After(st) {
		return ErrInvalidTimeSpan
	}
	return nil
}

func toTimetableEntryResponse(entry *model.TimetableEntry) dto.TimetableEntryResponse {
	return dto.TimetableEntryResponse{
		EntryID:    entry.EntryID,
		Day:        entry.Day,
		StartTime:  entry.StartTime,
		EndTime:    entry.EndTime,
		Subject:    entry.Subject,
		Room:       entry.Room,
		Instructor: entry.Instructor,
		CreatedAt:  entry.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  entry.UpdatedAt.Format(time.RFC3339),
	}
}

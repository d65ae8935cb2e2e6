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

// 出勤模块业务错误
var (
	ErrAttendanceNotFound   = errors.New("出勤记录不存在")
	ErrAttendedExceedsTotal = errors.New("出勤数不能大于总课时数")
)

// AttendanceService 出勤业务
// 出勤率始终由计数派生，写库前统一重算
type AttendanceService struct {
	repo   repository.AttendanceRepository
	logger *zap.Logger
}

// NewAttendanceService 创建出勤业务
func NewAttendanceService(repo repository.AttendanceRepository, logger *zap.Logger) *AttendanceService {
	return &AttendanceService{repo: repo, logger: logger}
}

// List 返回当前用户的全部出勤记录，按科目名升序
func (s *AttendanceService) List(ctx context.Context, userID string) ([]dto.AttendanceResponse, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		result = append(result, toAttendanceResponse(&records[i]))
	}
	return result, nil
}

// Create 创建出勤记录，计数默认从零开始
func (s *AttendanceService) Create(ctx context.Context, userID string, req *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error) {
	record := &model.AttendanceRecord{
		UserID:  userID,
		Subject: req.Subject,
	}
	if req.TotalClasses != nil {
		record.TotalClasses = *req.TotalClasses
	}
	if req.AttendedClasses != nil {
		record.AttendedClasses = *req.AttendedClasses
	}
	if record.AttendedClasses > record.TotalClasses {
		return nil, ErrAttendedExceedsTotal
	}
	record.RecalcPercentage()

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("出勤记录已创建",
		zap.String("user_id", userID),
		zap.String("record_id", record.RecordID),
		zap.String("subject", record.Subject))
	resp := toAttendanceResponse(record)
	return &resp, nil
}

// Update 覆写出勤计数并重算出勤率
func (s *AttendanceService) Update(ctx context.Context, userID, recordID string, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error) {
	record, err := s.getOwned(ctx, recordID, userID)
	if err != nil {
		return nil, err
	}

	if req.Subject != nil {
		record.Subject = *req.Subject
	}
	if req.TotalClasses != nil {
		record.TotalClasses = *req.TotalClasses
	}
	if req.AttendedClasses != nil {
		record.AttendedClasses = *req.AttendedClasses
	}
	if record.AttendedClasses > record.TotalClasses {
		return nil, ErrAttendedExceedsTotal
	}
	record.RecalcPercentage()

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}
	resp := toAttendanceResponse(record)
	return &resp, nil
}

// Increment 记一节课：总数加一，attended 为 true 时出勤数同时加一
func (s *AttendanceService) Increment(ctx context.Context, userID, recordID string, attended bool) (*dto.AttendanceResponse, error) {
	record, err := s.getOwned(ctx, recordID, userID)
	if err != nil {
		return nil, err
	}

	record.TotalClasses++
	if attended {
		record.AttendedClasses++
	}
	record.RecalcPercentage()

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("出勤已记录",
		zap.String("record_id", record.RecordID),
		zap.Bool("attended", attended),
		zap.Float64("percentage", record.Percentage))
	resp := toAttendanceResponse(record)
	return &resp, nil
}

// Delete 删除出勤记录
func (s *AttendanceService) Delete(ctx context.Context, userID, recordID string) error {
	affected, err := s.repo.Delete(ctx, recordID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAttendanceNotFound
	}
	s.logger.Info("出勤记录已删除", zap.String("user_id", userID), zap.String("record_id", recordID))
	return nil
}

func (s *AttendanceService) getOwned(ctx context.Context, recordID, userID string) (*model.AttendanceRecord, error) {
	record, err := s.repo.GetByIDAndUser(ctx, recordID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}
	return record, nil
}

func toAttendanceResponse(r *model.AttendanceRecord) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		RecordID:        r.RecordID,
		Subject:         r.Subject,
		TotalClasses:    r.TotalClasses,
		AttendedClasses: r.AttendedClasses,
		Percentage:      r.Percentage,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
}

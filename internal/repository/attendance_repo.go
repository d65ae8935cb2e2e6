package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/model"
)

// AttendanceRepository 出勤记录仓储接口
type AttendanceRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.AttendanceRecord, error)
	Create(ctx context.Context, record *model.AttendanceRecord) error
	GetByIDAndUser(ctx context.Context, recordID, userID string) (*model.AttendanceRecord, error)
	Update(ctx context.Context, record *model.AttendanceRecord) error
	Delete(ctx context.Context, recordID, userID string) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository 创建出勤记录仓储
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// ListByUser 按科目名升序
func (r *attendanceRepository) ListByUser(ctx context.Context, userID string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("subject ASC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepository) Create(ctx context.Context, record *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *attendanceRepository) GetByIDAndUser(ctx context.Context, recordID, userID string) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("record_id = ? AND user_id = ?", recordID, userID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) Update(ctx context.Context, record *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *attendanceRepository) Delete(ctx context.Context, recordID, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("record_id = ? AND user_id = ?", recordID, userID).
		Delete(&model.AttendanceRecord{})
	return result.RowsAffected, result.Error
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/model"
)

// TimetableRepository 课程表仓储接口
// 所有查询都以 user_id 为作用域，跨用户访问等同记录不存在
type TimetableRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.TimetableEntry, error)
	Create(ctx context.Context, entry *model.TimetableEntry) error
	GetByIDAndUser(ctx context.Context, entryID, userID string) (*model.TimetableEntry, error)
	Update(ctx context.Context, entry *model.TimetableEntry) error
	Delete(ctx context.Context, entryID, userID string) (int64, error)
}

type timetableRepository struct {
	db *gorm.DB
}

// NewTimetableRepository 创建课程表仓储
func NewTimetableRepository(db *gorm.DB) TimetableRepository {
	return &timetableRepository{db: db}
}

// ListByUser 按真实星期顺序再按开始时间排序
func (r *timetableRepository) ListByUser(ctx context.Context, userID string) ([]model.TimetableEntry, error) {
	var entries []model.TimetableEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(model.WeekdayOrderSQL()).
		Order("start_time ASC").
		Find(&entries).Error
	return entries, err
}

func (r *timetableRepository) Create(ctx context.Context, entry *model.TimetableEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *timetableRepository) GetByIDAndUser(ctx context.Context, entryID, userID string) (*model.TimetableEntry, error) {
	var entry model.TimetableEntry
	err := r.db.WithContext(ctx).
		Where("entry_id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *timetableRepository) Update(ctx context.Context, entry *model.TimetableEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *timetableRepository) Delete(ctx context.Context, entryID, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("entry_id = ? AND user_id = ?", entryID, userID).
		Delete(&model.TimetableEntry{})
	return result.RowsAffected, result.Error
}

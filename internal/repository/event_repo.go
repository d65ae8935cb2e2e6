package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/model"
)

// EventRepository 校园事件仓储接口
type EventRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.Event, error)
	ListUpcomingByUser(ctx context.Context, userID string, now time.Time) ([]model.Event, error)
	Create(ctx context.Context, event *model.Event) error
	GetByIDAndUser(ctx context.Context, eventID, userID string) (*model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, eventID, userID string) (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository 创建校园事件仓储
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// ListByUser 按事件日期升序
func (r *eventRepository) ListByUser(ctx context.Context, userID string) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&events).Error
	return events, err
}

// ListUpcomingByUser 只返回日期不早于 now 的事件，按日期升序
func (r *eventRepository) ListUpcomingByUser(ctx context.Context, userID string, now time.Time) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, now).
		Order("date ASC").
		Find(&events).Error
	return events, err
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) GetByIDAndUser(ctx context.Context, eventID, userID string) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, eventID, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&model.Event{})
	return result.RowsAffected, result.Error
}

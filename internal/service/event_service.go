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

// 校园事件模块业务错误
var (
	ErrInvalidEventType = errors.New("无效的事件类型，必须为 exam、fest、holiday 或 other")
	ErrEventNotFound    = errors.New("事件不存在")
)

// EventService 校园事件业务
type EventService struct {
	repo   repository.EventRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewEventService 创建校园事件业务
func NewEventService(repo repository.EventRepository, logger *zap.Logger) *EventService {
	return &EventService{repo: repo, logger: logger, now: time.Now}
}

// List 返回当前用户的全部事件，按日期升序
func (s *EventService) List(ctx context.Context, userID string) ([]dto.EventResponse, error) {
	events, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toEventResponses(events), nil
}

// ListUpcoming 只返回日期不早于当前时刻的事件，按日期升序
func (s *EventService) ListUpcoming(ctx context.Context, userID string) ([]dto.EventResponse, error) {
	events, err := s.repo.ListUpcomingByUser(ctx, userID, s.now())
	if err != nil {
		return nil, err
	}
	return toEventResponses(events), nil
}

// Create 创建校园事件
func (s *EventService) Create(ctx context.Context, userID string, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if !model.IsValidEventType(req.Type) {
		return nil, ErrInvalidEventType
	}

	event := &model.Event{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Type:        req.Type,
		Location:    req.Location,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info("事件已创建",
		zap.String("user_id", userID),
		zap.String("event_id", event.EventID),
		zap.String("type", event.Type))
	resp := toEventResponse(event)
	return &resp, nil
}

// Update 更新校园事件，仅更新请求中出现的字段
func (s *EventService) Update(ctx context.Context, userID, eventID string, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.getOwned(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Type != nil {
		if !model.IsValidEventType(*req.Type) {
			return nil, ErrInvalidEventType
		}
		event.Type = *req.Type
	}
	if req.Location != nil {
		event.Location = *req.Location
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}
	resp := toEventResponse(event)
	return &resp, nil
}

// Delete 删除校园事件
func (s *EventService) Delete(ctx context.Context, userID, eventID string) error {
	affected, err := s.repo.Delete(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEventNotFound
	}
	s.logger.Info("事件已删除", zap.String("user_id", userID), zap.String("event_id", eventID))
	return nil
}

func (s *EventService) getOwned(ctx context.Context, eventID, userID string) (*model.Event, error) {
	event, err := s.repo.GetByIDAndUser(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func toEventResponses(events []model.Event) []dto.EventResponse {
	result := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		result = append(result, toEventResponse(&events[i]))
	}
	return result
}

func toEventResponse(e *model.Event) dto.EventResponse {
	return dto.EventResponse{
		EventID:     e.EventID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Type:        e.Type,
		Location:    e.Location,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}

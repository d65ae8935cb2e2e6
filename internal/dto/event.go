package dto

import "time"

// CreateEventRequest 创建校园事件请求
type CreateEventRequest struct {
	Title       string    `json:"title"       binding:"required,max=200"`
	Description string    `json:"description" binding:"omitempty"`
	Date        time.Time `json:"date"        binding:"required"`
	Type        string    `json:"type"        binding:"required"`
	Location    string    `json:"location"    binding:"omitempty,max=200"`
}

// UpdateEventRequest 更新校园事件请求，零值字段不更新
type UpdateEventRequest struct {
	Title       *string    `json:"title"       binding:"omitempty,max=200"`
	Description *string    `json:"description" binding:"omitempty"`
	Date        *time.Time `json:"date"        binding:"omitempty"`
	Type        *string    `json:"type"        binding:"omitempty"`
	Location    *string    `json:"location"    binding:"omitempty,max=200"`
}

// EventResponse 校园事件响应
type EventResponse struct {
	EventID     string    `json:"event_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

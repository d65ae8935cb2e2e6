package model

import "time"

// 作业优先级与状态枚举
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Assignment 作业表 — 对应 assignments
type Assignment struct {
	AssignmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`
	UserID       string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Title        string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Description  string    `gorm:"type:text;not null;default:''"                  json:"description"`
	Subject      string    `gorm:"type:varchar(100);not null"                     json:"subject"`
	DueDate      time.Time `gorm:"not null"                                       json:"due_date"`
	Priority     string    `gorm:"type:varchar(10);not null;default:'medium'"     json:"priority"` // low | medium | high
	Status       string    `gorm:"type:varchar(10);not null;default:'pending'"    json:"status"`   // pending | completed
	BaseModel
}

// TableName 指定表名
func (Assignment) TableName() string { return "assignments" }

// ToggleStatus 在 pending 与 completed 之间切换状态
func (a *Assignment) ToggleStatus() {
	if a.Status == StatusCompleted {
		a.Status = StatusPending
	} else {
		a.Status = StatusCompleted
	}
}

// IsValidPriority 校验优先级枚举
func IsValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

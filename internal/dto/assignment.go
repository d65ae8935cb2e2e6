package dto

import "time"

// CreateAssignmentRequest 创建作业请求
type CreateAssignmentRequest struct {
	Title       string    `json:"title"       binding:"required,max=200"`
	Description string    `json:"description" binding:"omitempty"`
	Subject     string    `json:"subject"     binding:"required,max=100"`
	DueDate     time.Time `json:"due_date"    binding:"required"`
	Priority    string    `json:"priority"    binding:"omitempty"`
}

// UpdateAssignmentRequest 更新作业请求，零值字段不更新
type UpdateAssignmentRequest struct {
	Title       *string    `json:"title"       binding:"omitempty,max=200"`
	Description *string    `json:"description" binding:"omitempty"`
	Subject     *string    `json:"subject"     binding:"omitempty,max=100"`
	DueDate     *time.Time `json:"due_date"    binding:"omitempty"`
	Priority    *string    `json:"priority"    binding:"omitempty"`
}

// AssignmentResponse 作业响应
type AssignmentResponse struct {
	AssignmentID string    `json:"assignment_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Subject      string    `json:"subject"`
	DueDate      time.Time `json:"due_date"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

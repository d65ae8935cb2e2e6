package dto

// CreateAttendanceRequest 创建出勤记录请求
type CreateAttendanceRequest struct {
	Subject         string `json:"subject"          binding:"required,max=100"`
	TotalClasses    *int   `json:"total_classes"    binding:"omitempty,min=0"`
	AttendedClasses *int   `json:"attended_classes" binding:"omitempty,min=0"`
}

// UpdateAttendanceRequest 覆写计数请求
type UpdateAttendanceRequest struct {
	Subject         *string `json:"subject"          binding:"omitempty,max=100"`
	TotalClasses    *int    `json:"total_classes"    binding:"omitempty,min=0"`
	AttendedClasses *int    `json:"attended_classes" binding:"omitempty,min=0"`
}

// IncrementAttendanceRequest 记一节课请求
// attended 为 true 时出勤数与总数同时加一，否则只加总数
type IncrementAttendanceRequest struct {
	Attended *bool `json:"attended" binding:"required"`
}

// AttendanceResponse 出勤记录响应
type AttendanceResponse struct {
	RecordID        string  `json:"record_id"`
	Subject         string  `json:"subject"`
	TotalClasses    int     `json:"total_classes"`
	AttendedClasses int     `json:"attended_classes"`
	Percentage      float64 `json:"percentage"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

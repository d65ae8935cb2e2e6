package dto

// CreateTimetableEntryRequest 创建课程表条目请求
type CreateTimetableEntryRequest struct {
	Day        string `json:"day"        binding:"required"`
	StartTime  string `json:"start_time" binding:"required,len=5"`
	EndTime    string `json:"end_time"   binding:"required,len=5"`
	Subject    string `json:"subject"    binding:"required,max=100"`
	Room       string `json:"room"       binding:"omitempty,max=50"`
	Instructor string `json:"instructor" binding:"omitempty,max=100"`
}

// UpdateTimetableEntryRequest 更新课程表条目请求，零值字段不更新
type UpdateTimetableEntryRequest struct {
	Day        *string `json:"day"        binding:"omitempty"`
	StartTime  *string `json:"start_time" binding:"omitempty,len=5"`
	EndTime    *string `json:"end_time"   binding:"omitempty,len=5"`
	Subject    *string `json:"subject"    binding:"omitempty,max=100"`
	Room       *string `json:"room"       binding:"omitempty,max=50"`
	Instructor *string `json:"instructor" binding:"omitempty,max=100"`
}

// TimetableEntryResponse 课程表条目响应
type TimetableEntryResponse struct {
	EntryID    string `json:"entry_id"`
	Day        string `json:"day"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Subject    string `json:"subject"`
	Room       string `json:"room"`
	Instructor string `json:"instructor"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

package dto

// CreateNoteRequest 创建笔记请求
type CreateNoteRequest struct {
	Subject string   `json:"subject" binding:"required,max=100"`
	Title   string   `json:"title"   binding:"required,max=200"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"    binding:"omitempty,dive,max=50"`
}

// UpdateNoteRequest 更新笔记请求，零值字段不更新
type UpdateNoteRequest struct {
	Subject *string   `json:"subject" binding:"omitempty,max=100"`
	Title   *string   `json:"title"   binding:"omitempty,max=200"`
	Content *string   `json:"content" binding:"omitempty"`
	Tags    *[]string `json:"tags"    binding:"omitempty,dive,max=50"`
}

// NoteResponse 笔记响应
type NoteResponse struct {
	NoteID    string   `json:"note_id"`
	Subject   string   `json:"subject"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Summary   string   `json:"summary"`
	KeyPoints string   `json:"key_points,omitempty"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

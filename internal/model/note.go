package model

// Note 笔记表 — 对应 notes
// Summary 与 KeyPoints 为派生字段，内容变更时重新生成
type Note struct {
	NoteID    string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"note_id"`
	UserID    string      `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Subject   string      `gorm:"type:varchar(100);not null"                     json:"subject"`
	Title     string      `gorm:"type:varchar(200);not null"                     json:"title"`
	Content   string      `gorm:"type:text;not null"                             json:"content"`
	Summary   string      `gorm:"type:text;not null;default:''"                  json:"summary"`
	KeyPoints string      `gorm:"type:text;not null;default:''"                  json:"key_points,omitempty"`
	Tags      StringArray `gorm:"type:text[];not null;default:'{}'"              json:"tags"`
	BaseModel
}

// TableName 指定表名
func (Note) TableName() string { return "notes" }

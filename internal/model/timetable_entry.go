package model

// TimetableEntry 课程表条目 — 对应 timetable_entries
type TimetableEntry struct {
	EntryID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"entry_id"`
	UserID     string `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Day        string `gorm:"type:varchar(10);not null"                      json:"day"` // Monday ... Sunday
	StartTime  string `gorm:"type:varchar(5);not null"                       json:"start_time"` // HH:MM
	EndTime    string `gorm:"type:varchar(5);not null"                       json:"end_time"`
	Subject    string `gorm:"type:varchar(100);not null"                     json:"subject"`
	Room       string `gorm:"type:varchar(50);not null"                      json:"room"`
	Instructor string `gorm:"type:varchar(100);not null"                     json:"instructor"`
	BaseModel
}

// TableName 指定表名
func (TimetableEntry) TableName() string { return "timetable_entries" }

package model

import "time"

// 校园事件类型枚举
const (
	EventTypeExam    = "exam"
	EventTypeFest    = "fest"
	EventTypeHoliday = "holiday"
	EventTypeOther   = "other"
)

// Event 校园事件表 — 对应 events
type Event struct {
	EventID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	UserID      string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Title       string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Description string    `gorm:"type:text;not null"                             json:"description"`
	Date        time.Time `gorm:"not null"                                       json:"date"`
	Type        string    `gorm:"type:varchar(10);not null"                      json:"type"` // exam | fest | holiday | other
	Location    string    `gorm:"type:varchar(200);not null;default:''"          json:"location"`
	BaseModel
}

// TableName 指定表名
func (Event) TableName() string { return "events" }

// IsValidEventType 校验事件类型枚举
func IsValidEventType(t string) bool {
	switch t {
	case EventTypeExam, EventTypeFest, EventTypeHoliday, EventTypeOther:
		return true
	}
	return false
}

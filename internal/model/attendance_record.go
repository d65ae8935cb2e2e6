package model

// AttendanceRecord 出勤记录表 — 对应 attendance_records
type AttendanceRecord struct {
	RecordID        string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"record_id"`
	UserID          string  `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Subject         string  `gorm:"type:varchar(100);not null"                     json:"subject"`
	TotalClasses    int     `gorm:"not null;default:0"                             json:"total_classes"`
	AttendedClasses int     `gorm:"not null;default:0"                             json:"attended_classes"`
	Percentage      float64 `gorm:"not null;default:0"                             json:"percentage"`
	BaseModel
}

// TableName 指定表名
func (AttendanceRecord) TableName() string { return "attendance_records" }

// RecalcPercentage 重算出勤率
// 每次持久化前由 Service 层显式调用，total 为 0 时出勤率为 0
func (r *AttendanceRecord) RecalcPercentage() {
	if r.TotalClasses > 0 {
		r.Percentage = float64(r.AttendedClasses) / float64(r.TotalClasses) * 100
	} else {
		r.Percentage = 0
	}
}

package model

// User 用户表 — 对应 users
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	College      string `gorm:"type:varchar(200);not null;default:''"          json:"college"`
	Major        string `gorm:"type:varchar(100);not null;default:''"          json:"major"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

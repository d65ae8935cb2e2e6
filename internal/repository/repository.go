package repository

import "gorm.io/gorm"

// Repositories 仓储层聚合，统一注入 Service 层
type Repositories struct {
	User       UserRepository
	Timetable  TimetableRepository
	Assignment AssignmentRepository
	Attendance AttendanceRepository
	Note       NoteRepository
	Event      EventRepository
}

// NewRepositories 创建仓储层聚合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Timetable:  NewTimetableRepository(db),
		Assignment: NewAssignmentRepository(db),
		Attendance: NewAttendanceRepository(db),
		Note:       NewNoteRepository(db),
		Event:      NewEventRepository(db),
	}
}

package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/model"
)

// ════════════════════════════════════════════════
// 内存版仓储，仅供单元测试使用
// ════════════════════════════════════════════════

// ── 用户 ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	cp := *user
	m.users[user.UserID] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, userID string) (*model.User, error) {
	user, ok := m.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range m.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// ── 课程表 ──

type mockTimetableRepo struct {
	entries map[string]*model.TimetableEntry
}

func newMockTimetableRepo() *mockTimetableRepo {
	return &mockTimetableRepo{entries: make(map[string]*model.TimetableEntry)}
}

func (m *mockTimetableRepo) ListByUser(_ context.Context, userID string) ([]model.TimetableEntry, error) {
	var result []model.TimetableEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		di, dj := model.WeekdayIndex(result[i].Day), model.WeekdayIndex(result[j].Day)
		if di != dj {
			return di < dj
		}
		return result[i].StartTime < result[j].StartTime
	})
	return result, nil
}

func (m *mockTimetableRepo) Create(_ context.Context, entry *model.TimetableEntry) error {
	entry.EntryID = uuid.New().String()
	now := time.Now()
	entry.CreatedAt, entry.UpdatedAt = now, now
	cp := *entry
	m.entries[entry.EntryID] = &cp
	return nil
}

func (m *mockTimetableRepo) GetByIDAndUser(_ context.Context, entryID, userID string) (*model.TimetableEntry, error) {
	e, ok := m.entries[entryID]
	if !ok || e.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *mockTimetableRepo) Update(_ context.Context, entry *model.TimetableEntry) error {
	entry.UpdatedAt = time.Now()
	cp := *entry
	m.entries[entry.EntryID] = &cp
	return nil
}

func (m *mockTimetableRepo) Delete(_ context.Context, entryID, userID string) (int64, error) {
	e, ok := m.entries[entryID]
	if !ok || e.UserID != userID {
		return 0, nil
	}
	delete(m.entries, entryID)
	return 1, nil
}

// ── 作业 ──

type mockAssignmentRepo struct {
	assignments map[string]*model.Assignment
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{assignments: make(map[string]*model.Assignment)}
}

func (m *mockAssignmentRepo) ListByUser(_ context.Context, userID string) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.assignments {
		if a.UserID == userID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DueDate.Before(result[j].DueDate)
	})
	return result, nil
}

func (m *mockAssignmentRepo) Create(_ context.Context, assignment *model.Assignment) error {
	assignment.AssignmentID = uuid.New().String()
	now := time.Now()
	assignment.CreatedAt, assignment.UpdatedAt = now, now
	cp := *assignment
	m.assignments[assignment.AssignmentID] = &cp
	return nil
}

func (m *mockAssignmentRepo) GetByIDAndUser(_ context.Context, assignmentID, userID string) (*model.Assignment, error) {
	a, ok := m.assignments[assignmentID]
	if !ok || a.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockAssignmentRepo) Update(_ context.Context, assignment *model.Assignment) error {
	assignment.UpdatedAt = time.Now()
	cp := *assignment
	m.assignments[assignment.AssignmentID] = &cp
	return nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, assignmentID, userID string) (int64, error) {
	a, ok := m.assignments[assignmentID]
	if !ok || a.UserID != userID {
		return 0, nil
	}
	delete(m.assignments, assignmentID)
	return 1, nil
}

// ── 出勤 ──

type mockAttendanceRepo struct {
	records map[string]*model.AttendanceRecord
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]*model.AttendanceRecord)}
}

func (m *mockAttendanceRepo) ListByUser(_ context.Context, userID string) ([]model.AttendanceRecord, error) {
	var result []model.AttendanceRecord
	for _, r := range m.records {
		if r.UserID == userID {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Subject < result[j].Subject
	})
	return result, nil
}

func (m *mockAttendanceRepo) Create(_ context.Context, record *model.AttendanceRecord) error {
	record.RecordID = uuid.New().String()
	now := time.Now()
	record.CreatedAt, record.UpdatedAt = now, now
	cp := *record
	m.records[record.RecordID] = &cp
	return nil
}

func (m *mockAttendanceRepo) GetByIDAndUser(_ context.Context, recordID, userID string) (*model.AttendanceRecord, error) {
	r, ok := m.records[recordID]
	if !ok || r.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockAttendanceRepo) Update(_ context.Context, record *model.AttendanceRecord) error {
	record.UpdatedAt = time.Now()
	cp := *record
	m.records[record.RecordID] = &cp
	return nil
}

func (m *mockAttendanceRepo) Delete(_ context.Context, recordID, userID string) (int64, error) {
	r, ok := m.records[recordID]
	if !ok || r.UserID != userID {
		return 0, nil
	}
	delete(m.records, recordID)
	return 1, nil
}

// ── 笔记 ──

type mockNoteRepo struct {
	notes map[string]*model.Note
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{notes: make(map[string]*model.Note)}
}

func (m *mockNoteRepo) ListByUser(_ context.Context, userID string) ([]model.Note, error) {
	var result []model.Note
	for _, n := range m.notes {
		if n.UserID == userID {
			result = append(result, *n)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockNoteRepo) Create(_ context.Context, note *model.Note) error {
	note.NoteID = uuid.New().String()
	now := time.Now()
	note.CreatedAt, note.UpdatedAt = now, now
	cp := *note
	m.notes[note.NoteID] = &cp
	return nil
}

func (m *mockNoteRepo) GetByIDAndUser(_ context.Context, noteID, userID string) (*model.Note, error) {
	n, ok := m.notes[noteID]
	if !ok || n.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *n
	return &cp, nil
}

func (m *mockNoteRepo) Update(_ context.Context, note *model.Note) error {
	note.UpdatedAt = time.Now()
	cp := *note
	m.notes[note.NoteID] = &cp
	return nil
}

func (m *mockNoteRepo) Delete(_ context.Context, noteID, userID string) (int64, error) {
	n, ok := m.notes[noteID]
	if !ok || n.UserID != userID {
		return 0, nil
	}
	delete(m.notes, noteID)
	return 1, nil
}

// ── 校园事件 ──

type mockEventRepo struct {
	events map[string]*model.Event
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[string]*model.Event)}
}

func (m *mockEventRepo) ListByUser(_ context.Context, userID string) ([]model.Event, error) {
	var result []model.Event
	for _, e := range m.events {
		if e.UserID == userID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

func (m *mockEventRepo) ListUpcomingByUser(_ context.Context, userID string, now time.Time) ([]model.Event, error) {
	var result []model.Event
	for _, e := range m.events {
		if e.UserID == userID && !e.Date.Before(now) {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

func (m *mockEventRepo) Create(_ context.Context, event *model.Event) error {
	event.EventID = uuid.New().String()
	now := time.Now()
	event.CreatedAt, event.UpdatedAt = now, now
	cp := *event
	m.events[event.EventID] = &cp
	return nil
}

func (m *mockEventRepo) GetByIDAndUser(_ context.Context, eventID, userID string) (*model.Event, error) {
	e, ok := m.events[eventID]
	if !ok || e.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *mockEventRepo) Update(_ context.Context, event *model.Event) error {
	event.UpdatedAt = time.Now()
	cp := *event
	m.events[event.EventID] = &cp
	return nil
}

func (m *mockEventRepo) Delete(_ context.Context, eventID, userID string) (int64, error) {
	e, ok := m.events[eventID]
	if !ok || e.UserID != userID {
		return 0, nil
	}
	delete(m.events, eventID)
	return 1, nil
}

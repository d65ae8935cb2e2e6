package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/model"
	"github.com/shushant0603/Smart-College-companion-Backend/internal/repository"
)

// weekdayByDay 星期名到 iCalendar BYDAY 码的映射
var weekdayByDay = map[string]string{
	"Monday":    "MO",
	"Tuesday":   "TU",
	"Wednesday": "WE",
	"Thursday":  "TH",
	"Friday":    "FR",
	"Saturday":  "SA",
	"Sunday":    "SU",
}

// ExportService 导出业务：课程表与事件导出为 iCalendar，出勤导出为 XLSX
type ExportService struct {
	timetableRepo  repository.TimetableRepository
	eventRepo      repository.EventRepository
	attendanceRepo repository.AttendanceRepository
	logger         *zap.Logger
	now            func() time.Time
}

// NewExportService 创建导出业务
func NewExportService(
	timetableRepo repository.TimetableRepository,
	eventRepo repository.EventRepository,
	attendanceRepo repository.AttendanceRepository,
	logger *zap.Logger,
) *ExportService {
	return &ExportService{
		timetableRepo:  timetableRepo,
		eventRepo:      eventRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// ExportTimetableICS 把课程表导出为每周重复的 iCalendar 日历
func (s *ExportService) ExportTimetableICS(ctx context.Context, userID string) ([]byte, error) {
	entries, err := s.timetableRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//college-companion//timetable//EN")

	for i := range entries {
		entry := &entries[i]
		start, end, err := s.nextOccurrence(entry)
		if err != nil {
			s.logger.Warn("课程时间解析失败，跳过该条目",
				zap.String("entry_id", entry.EntryID), zap.Error(err))
			continue
		}

		ev := cal.AddEvent(fmt.Sprintf("timetable-%s@college-companion", entry.EntryID))
		ev.SetCreatedTime(entry.CreatedAt)
		ev.SetModifiedAt(entry.UpdatedAt)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(entry.Subject)
		if entry.Room != "" {
			ev.SetLocation(entry.Room)
		}
		if entry.Instructor != "" {
			ev.SetDescription("授课教师：" + entry.Instructor)
		}
		ev.AddRrule("FREQ=WEEKLY;BYDAY=" + weekdayByDay[entry.Day])
	}

	s.logger.Info("课程表已导出为 iCalendar",
		zap.String("user_id", userID), zap.Int("entries", len(entries)))
	return []byte(cal.Serialize()), nil
}

// ExportEventsICS 把校园事件导出为 iCalendar 日历
func (s *ExportService) ExportEventsICS(ctx context.Context, userID string) ([]byte, error) {
	events, err := s.eventRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//college-companion//events//EN")

	for i := range events {
		event := &events[i]
		ev := cal.AddEvent(fmt.Sprintf("event-%s@college-companion", event.EventID))
		ev.SetCreatedTime(event.CreatedAt)
		ev.SetModifiedAt(event.UpdatedAt)
		ev.SetStartAt(event.Date)
		ev.SetEndAt(event.Date.Add(time.Hour))
		ev.SetSummary(fmt.Sprintf("[%s] %s", event.Type, event.Title))
		if event.Location != "" {
			ev.SetLocation(event.Location)
		}
		if event.Description != "" {
			ev.SetDescription(event.Description)
		}
	}

	s.logger.Info("事件已导出为 iCalendar",
		zap.String("user_id", userID), zap.Int("events", len(events)))
	return []byte(cal.Serialize()), nil
}

// ExportAttendanceXLSX 把出勤记录导出为 XLSX 表格
func (s *ExportService) ExportAttendanceXLSX(ctx context.Context, userID string) ([]byte, error) {
	records, err := s.attendanceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []string{"科目", "总课时", "出勤课时", "出勤率(%)"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, record := range records {
		values := []interface{}{
			record.Subject,
			record.TotalClasses,
			record.AttendedClasses,
			record.Percentage,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	s.logger.Info("出勤记录已导出为 XLSX",
		zap.String("user_id", userID), zap.Int("records", len(records)))
	return buf.Bytes(), nil
}

// nextOccurrence 根据星期与 HH:MM 计算下一次上课的起止时刻
func (s *ExportService) nextOccurrence(entry *model.TimetableEntry) (time.Time, time.Time, error) {
	st, err := time.Parse("15:04", entry.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	et, err := time.Parse("15:04", entry.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	idx := model.WeekdayIndex(entry.Day)
	if idx == 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("无效的星期: %s", entry.Day)
	}

	now := s.now()
	// WeekdayIndex 以 Monday=1 计，time.Weekday 以 Sunday=0 计
	target := time.Weekday(idx % 7)
	daysAhead := (int(target) - int(now.Weekday()) + 7) % 7
	date := now.AddDate(0, 0, daysAhead)

	start := time.Date(date.Year(), date.Month(), date.Day(), st.Hour(), st.Minute(), 0, 0, now.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), et.Hour(), et.Minute(), 0, 0, now.Location())
	return start, end, nil
}

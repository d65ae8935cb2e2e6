package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/model"
)

func newTestExportService() (*ExportService, *mockTimetableRepo, *mockEventRepo, *mockAttendanceRepo) {
	timetableRepo := newMockTimetableRepo()
	eventRepo := newMockEventRepo()
	attendanceRepo := newMockAttendanceRepo()
	svc := NewExportService(timetableRepo, eventRepo, attendanceRepo, zap.NewNop())
	return svc, timetableRepo, eventRepo, attendanceRepo
}

func TestExportTimetableICS(t *testing.T) {
	svc, timetableRepo, _, _ := newTestExportService()
	ctx := context.Background()

	entry := &model.TimetableEntry{
		UserID: "u1", Day: "Wednesday", StartTime: "09:00", EndTime: "10:30",
		Subject: "编译原理", Room: "A101", Instructor: "陈老师",
	}
	if err := timetableRepo.Create(ctx, entry); err != nil {
		t.Fatalf("准备数据失败: %v", err)
	}

	data, err := svc.ExportTimetableICS(ctx, "u1")
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}

	out := string(data)
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"SUMMARY:编译原理",
		"RRULE:FREQ=WEEKLY;BYDAY=WE",
		"LOCATION:A101",
		"END:VCALENDAR",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("导出结果缺少 %q", want)
		}
	}
}

func TestExportEventsICS(t *testing.T) {
	svc, _, eventRepo, _ := newTestExportService()
	ctx := context.Background()

	event := &model.Event{
		UserID: "u1", Title: "期末考试", Type: "exam",
		Date: time.Date(2026, 6, 20, 9, 0, 0, 0, time.UTC), Location: "二号教学楼",
	}
	if err := eventRepo.Create(ctx, event); err != nil {
		t.Fatalf("准备数据失败: %v", err)
	}

	data, err := svc.ExportEventsICS(ctx, "u1")
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "SUMMARY:[exam] 期末考试") {
		t.Errorf("导出结果缺少事件摘要:\n%s", out)
	}
	if !strings.Contains(out, "LOCATION:二号教学楼") {
		t.Error("导出结果缺少地点")
	}
}

func TestExportAttendanceXLSX(t *testing.T) {
	svc, _, _, attendanceRepo := newTestExportService()
	ctx := context.Background()

	record := &model.AttendanceRecord{
		UserID: "u1", Subject: "数据库", TotalClasses: 10, AttendedClasses: 8, Percentage: 80,
	}
	if err := attendanceRepo.Create(ctx, record); err != nil {
		t.Fatalf("准备数据失败: %v", err)
	}

	data, err := svc.ExportAttendanceXLSX(ctx, "u1")
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("导出内容不是合法的 XLSX: %v", err)
	}
	defer f.Close()

	subject, err := f.GetCellValue("Sheet1", "A2")
	if err != nil {
		t.Fatalf("读取单元格失败: %v", err)
	}
	if subject != "数据库" {
		t.Errorf("期望 A2 为 数据库，实际 %q", subject)
	}
	pct, err := f.GetCellValue("Sheet1", "D2")
	if err != nil {
		t.Fatalf("读取单元格失败: %v", err)
	}
	if pct != "80" {
		t.Errorf("期望 D2 为 80，实际 %q", pct)
	}
}

func TestExport_EmptyData(t *testing.T) {
	svc, _, _, _ := newTestExportService()
	ctx := context.Background()

	data, err := svc.ExportTimetableICS(ctx, "nobody")
	if err != nil {
		t.Fatalf("空数据导出不应失败: %v", err)
	}
	if !strings.Contains(string(data), "BEGIN:VCALENDAR") {
		t.Error("空课程表仍应是合法日历")
	}
}

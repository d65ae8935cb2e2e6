package model

import (
	"reflect"
	"testing"
)

func TestStringArray_Scan(t *testing.T) {
	cases := []struct {
		name string
		src  interface{}
		want StringArray
	}{
		{"空数组", "{}", StringArray{}},
		{"普通元素", "{a,b,c}", StringArray{"a", "b", "c"}},
		{"带引号元素", `{"图论","复习 笔记"}`, StringArray{"图论", "复习 笔记"}},
		{"字节切片", []byte("{x}"), StringArray{"x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var arr StringArray
			if err := arr.Scan(tc.src); err != nil {
				t.Fatalf("Scan 失败: %v", err)
			}
			if !reflect.DeepEqual(arr, tc.want) {
				t.Errorf("期望 %v，实际 %v", tc.want, arr)
			}
		})
	}
}

func TestStringArray_ScanNil(t *testing.T) {
	arr := StringArray{"旧值"}
	if err := arr.Scan(nil); err != nil {
		t.Fatalf("Scan nil 失败: %v", err)
	}
	if arr != nil {
		t.Errorf("期望 nil，实际 %v", arr)
	}
}

func TestStringArray_Value(t *testing.T) {
	arr := StringArray{"图论", `带"引号"`}
	v, err := arr.Value()
	if err != nil {
		t.Fatalf("Value 失败: %v", err)
	}
	if v != `{"图论","带\"引号\""}` {
		t.Errorf("序列化结果有误: %v", v)
	}
}

func TestWeekdayIndex(t *testing.T) {
	if WeekdayIndex("Monday") != 1 || WeekdayIndex("Sunday") != 7 {
		t.Error("周序序号有误")
	}
	if WeekdayIndex("monday") != 0 {
		t.Error("星期名称应区分大小写")
	}
	if IsValidWeekday("Funday") {
		t.Error("非法星期不应通过校验")
	}
}

func TestAssignmentToggleStatus(t *testing.T) {
	a := Assignment{Status: StatusPending}
	a.ToggleStatus()
	if a.Status != StatusCompleted {
		t.Errorf("期望 completed，实际 %s", a.Status)
	}
	a.ToggleStatus()
	if a.Status != StatusPending {
		t.Errorf("期望 pending，实际 %s", a.Status)
	}
}

func TestRecalcPercentage(t *testing.T) {
	r := AttendanceRecord{TotalClasses: 4, AttendedClasses: 3}
	r.RecalcPercentage()
	if r.Percentage != 75 {
		t.Errorf("期望 75，实际 %v", r.Percentage)
	}

	r = AttendanceRecord{TotalClasses: 0, AttendedClasses: 0}
	r.RecalcPercentage()
	if r.Percentage != 0 {
		t.Errorf("总数为 0 时应为 0，实际 %v", r.Percentage)
	}
}

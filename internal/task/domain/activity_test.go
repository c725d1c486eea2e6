package domain

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func TestResolveActivity_ScheduledOnly(t *testing.T) {
	task := &Task{ScheduledDate: dayPtr(2025, 7, 27)}

	cases := []struct {
		name   string
		date   time.Time
		active bool
		typ    TaskType
	}{
		{"day before", day(2025, 7, 26), false, TaskTypeNone},
		{"scheduled day", day(2025, 7, 27), true, TaskTypeScheduled},
		{"day after", day(2025, 7, 28), true, TaskTypeActive},
		{"far future", day(2026, 1, 1), true, TaskTypeActive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := task.ResolveActivity(tc.date)
			if got.Active != tc.active || got.Type != tc.typ {
				t.Errorf("ResolveActivity(%s) = %+v, want active=%v type=%q",
					tc.date.Format("2006-01-02"), got, tc.active, tc.typ)
			}
		})
	}
}

func TestResolveActivity_DueOnly(t *testing.T) {
	task := &Task{DueDate: dayPtr(2025, 8, 1)}

	cases := []struct {
		name   string
		date   time.Time
		active bool
		typ    TaskType
	}{
		{"long before", day(2025, 1, 1), true, TaskTypeActive},
		{"day before", day(2025, 7, 31), true, TaskTypeActive},
		{"due day", day(2025, 8, 1), true, TaskTypeDue},
		{"day after", day(2025, 8, 2), false, TaskTypeNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := task.ResolveActivity(tc.date)
			if got.Active != tc.active || got.Type != tc.typ {
				t.Errorf("ResolveActivity(%s) = %+v, want active=%v type=%q",
					tc.date.Format("2006-01-02"), got, tc.active, tc.typ)
			}
		})
	}
}

func TestResolveActivity_Range(t *testing.T) {
	// Scheduled 2025-07-27, due 2025-08-01: active exactly on [27th, 1st],
	// boundary days keep their specific labels.
	task := &Task{
		ScheduledDate: dayPtr(2025, 7, 27),
		DueDate:       dayPtr(2025, 8, 1),
	}

	cases := []struct {
		name   string
		date   time.Time
		active bool
		typ    TaskType
	}{
		{"before range", day(2025, 7, 26), false, TaskTypeNone},
		{"scheduled boundary", day(2025, 7, 27), true, TaskTypeScheduled},
		{"inside range", day(2025, 7, 29), true, TaskTypeActive},
		{"due boundary", day(2025, 8, 1), true, TaskTypeDue},
		{"after range", day(2025, 8, 2), false, TaskTypeNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := task.ResolveActivity(tc.date)
			if got.Active != tc.active || got.Type != tc.typ {
				t.Errorf("ResolveActivity(%s) = %+v, want active=%v type=%q",
					tc.date.Format("2006-01-02"), got, tc.active, tc.typ)
			}
		})
	}
}

func TestResolveActivity_SameDayRange(t *testing.T) {
	task := &Task{
		ScheduledDate: dayPtr(2025, 7, 30),
		DueDate:       dayPtr(2025, 7, 30),
	}

	got := task.ResolveActivity(day(2025, 7, 30))
	if !got.Active || got.Type != TaskTypeBoth {
		t.Errorf("same-day range on its day = %+v, want active both", got)
	}

	got = task.ResolveActivity(day(2025, 7, 31))
	if got.Active || got.Type != TaskTypeNone {
		t.Errorf("same-day range after its day = %+v, want inactive", got)
	}
}

func TestResolveActivity_NoDates(t *testing.T) {
	task := &Task{}
	got := task.ResolveActivity(day(2025, 7, 30))
	if got.Active || got.Type != TaskTypeNone {
		t.Errorf("dateless task = %+v, want inactive with no label", got)
	}
}

func TestResolveActivity_InvertedRange(t *testing.T) {
	// Scheduled after due: the range is empty, so no day is active, but
	// the exact boundary days still get their labels.
	task := &Task{
		ScheduledDate: dayPtr(2025, 8, 5),
		DueDate:       dayPtr(2025, 8, 1),
	}

	for d := 30; d <= 31; d++ {
		if task.ActiveOn(day(2025, 7, d)) {
			t.Errorf("inverted range active on 2025-07-%02d", d)
		}
	}
	for d := 1; d <= 7; d++ {
		if task.ActiveOn(day(2025, 8, d)) {
			t.Errorf("inverted range active on 2025-08-%02d", d)
		}
	}

	if got := task.ResolveActivity(day(2025, 8, 5)); got.Active || got.Type != TaskTypeScheduled {
		t.Errorf("inverted range on scheduled day = %+v, want inactive scheduled", got)
	}
	if got := task.ResolveActivity(day(2025, 8, 1)); got.Active || got.Type != TaskTypeDue {
		t.Errorf("inverted range on due day = %+v, want inactive due", got)
	}
}

func TestResolveActivity_NormalizesTimeOfDay(t *testing.T) {
	// Stored dates may carry a time-of-day component; comparisons must
	// use day boundaries.
	sched := time.Date(2025, 7, 27, 18, 45, 12, 0, time.Local)
	due := time.Date(2025, 8, 1, 3, 2, 1, 0, time.Local)
	task := &Task{ScheduledDate: &sched, DueDate: &due}

	query := time.Date(2025, 7, 27, 6, 0, 0, 0, time.Local)
	got := task.ResolveActivity(query)
	if !got.Active || got.Type != TaskTypeScheduled {
		t.Errorf("morning query on evening-scheduled day = %+v, want active scheduled", got)
	}

	if !task.ActiveOn(time.Date(2025, 8, 1, 23, 30, 0, 0, time.Local)) {
		t.Error("late query on due day should be active")
	}
	if task.ActiveOn(day(2025, 8, 2)) {
		t.Error("day after due day should be inactive")
	}
}

func TestDayHelpers(t *testing.T) {
	d := time.Date(2025, 7, 30, 14, 30, 45, 123, time.Local)

	start := StartOfDay(d)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Errorf("StartOfDay = %v, want midnight", start)
	}

	end := EndOfDay(d)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("EndOfDay = %v, want 23:59:59", end)
	}

	if !SameDay(start, end) {
		t.Error("start and end of the same day should compare equal by day")
	}
	if SameDay(end, end.Add(time.Millisecond)) {
		t.Error("millisecond past end of day should be the next day")
	}
}

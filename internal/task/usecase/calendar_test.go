package usecase

import (
	"testing"
	"time"

	"github.com/prajithravisankar/focusflow/internal/task/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func TestBuildCalendarWeek_Shape(t *testing.T) {
	// Sunday 2025-07-27 through Saturday 2025-08-02, spanning a month
	// boundary.
	weekStart := day(2025, 7, 27)
	today := day(2025, 7, 29)

	week := buildCalendarWeek(nil, weekStart, today)

	if len(week.Data) != 7 {
		t.Fatalf("got %d days, want 7", len(week.Data))
	}

	wantDates := []string{
		"2025-07-27", "2025-07-28", "2025-07-29", "2025-07-30",
		"2025-07-31", "2025-08-01", "2025-08-02",
	}
	for i, want := range wantDates {
		if week.Data[i].Date != want {
			t.Errorf("day %d date = %q, want %q", i, week.Data[i].Date, want)
		}
	}

	if week.StartDate != "2025-07-27" {
		t.Errorf("StartDate = %q, want 2025-07-27", week.StartDate)
	}
	if week.PrevWeekStart != "2025-07-20" {
		t.Errorf("PrevWeekStart = %q, want 2025-07-20", week.PrevWeekStart)
	}
	if week.NextWeekStart != "2025-08-03" {
		t.Errorf("NextWeekStart = %q, want 2025-08-03", week.NextWeekStart)
	}

	// Sunday and Saturday bracket the window
	if !week.Data[0].IsWeekend || !week.Data[6].IsWeekend {
		t.Error("first and last day of a Sunday-started week must be weekend")
	}
	for i := 1; i <= 5; i++ {
		if week.Data[i].IsWeekend {
			t.Errorf("day %d (%s) flagged weekend", i, week.Data[i].Date)
		}
	}

	for i, d := range week.Data {
		if d.IsToday != (d.Date == "2025-07-29") {
			t.Errorf("day %d isToday = %v for %s", i, d.IsToday, d.Date)
		}
	}

	if week.Data[0].DayName != "Sun" || week.Data[6].DayName != "Sat" {
		t.Errorf("day names = %q..%q, want Sun..Sat", week.Data[0].DayName, week.Data[6].DayName)
	}
	if week.Data[5].Month != "Aug" || week.Data[5].DayNumber != "1" {
		t.Errorf("Aug 1 descriptor = %+v", week.Data[5])
	}
	if week.Data[0].Year != "2025" {
		t.Errorf("year = %q, want 2025", week.Data[0].Year)
	}
}

func TestBuildCalendarWeek_YearBoundary(t *testing.T) {
	// Sunday 2025-12-28 through Saturday 2026-01-03.
	week := buildCalendarWeek(nil, day(2025, 12, 28), day(2025, 12, 28))

	if week.Data[3].Date != "2025-12-31" || week.Data[4].Date != "2026-01-01" {
		t.Errorf("year rollover produced %q then %q", week.Data[3].Date, week.Data[4].Date)
	}
	if week.Data[4].Year != "2026" {
		t.Errorf("New Year's Day year = %q, want 2026", week.Data[4].Year)
	}
	if week.NextWeekStart != "2026-01-04" {
		t.Errorf("NextWeekStart = %q, want 2026-01-04", week.NextWeekStart)
	}
	if week.PrevWeekStart != "2025-12-21" {
		t.Errorf("PrevWeekStart = %q, want 2025-12-21", week.PrevWeekStart)
	}
}

func TestBuildCalendarWeek_TaskCounts(t *testing.T) {
	tasks := []*domain.Task{
		// Active Mon 28th through Wed 30th
		{ScheduledDate: dayPtr(2025, 7, 28), DueDate: dayPtr(2025, 7, 30)},
		// Active from Fri Aug 1 onward
		{ScheduledDate: dayPtr(2025, 8, 1)},
		// Never active
		{},
	}

	week := buildCalendarWeek(tasks, day(2025, 7, 27), day(2025, 7, 27))

	wantCounts := []int{0, 1, 1, 1, 0, 1, 1}
	for i, want := range wantCounts {
		got := week.Data[i]
		if got.TaskCount != want {
			t.Errorf("%s taskCount = %d, want %d", got.Date, got.TaskCount, want)
		}
		if got.HasTasks != (want > 0) {
			t.Errorf("%s hasTasks = %v with count %d", got.Date, got.HasTasks, want)
		}
	}
}

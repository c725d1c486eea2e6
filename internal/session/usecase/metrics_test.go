package usecase

import (
	"testing"

	"github.com/prajithravisankar/focusflow/internal/session/domain"
)

func TestCalculateTaskMetrics_Empty(t *testing.T) {
	got := CalculateTaskMetrics(nil)
	want := TaskMetrics{}
	if *got != want {
		t.Errorf("empty metrics = %+v, want all zeroes", got)
	}
}

func TestCalculateTaskMetrics_ExactPlan(t *testing.T) {
	// Two 25-minute sessions, 20 and 30 actual: planned 50, actual 50.
	sessions := []*domain.Session{
		{Duration: 25, ActualDuration: 20, Completed: true},
		{Duration: 25, ActualDuration: 30, Completed: true},
	}

	got := CalculateTaskMetrics(sessions)

	if got.TotalTimeSpent != 50 || got.PlannedTime != 50 {
		t.Errorf("totals = %d/%d, want 50/50", got.TotalTimeSpent, got.PlannedTime)
	}
	if got.Efficiency != 100 {
		t.Errorf("efficiency = %v, want 100", got.Efficiency)
	}
	if got.AverageSessionDuration != 25 {
		t.Errorf("average = %v, want 25", got.AverageSessionDuration)
	}
	if got.CompletedSessions != 2 || got.IncompleteSessions != 0 {
		t.Errorf("session counts = %d/%d, want 2/0", got.CompletedSessions, got.IncompleteSessions)
	}
}

func TestCalculateTaskMetrics_OverPlan(t *testing.T) {
	// Efficiency is unclamped: 40 actual on a 25-minute plan reads 160%.
	sessions := []*domain.Session{
		{Duration: 25, ActualDuration: 40, Completed: true},
	}

	got := CalculateTaskMetrics(sessions)
	if got.Efficiency != 160 {
		t.Errorf("efficiency = %v, want 160", got.Efficiency)
	}
}

func TestCalculateTaskMetrics_Rounding(t *testing.T) {
	sessions := []*domain.Session{
		{Duration: 30, ActualDuration: 10},
		{Duration: 30, ActualDuration: 10},
		{Duration: 30, ActualDuration: 10},
	}

	got := CalculateTaskMetrics(sessions)
	// 30/90 = 33.333... -> 33.33
	if got.Efficiency != 33.33 {
		t.Errorf("efficiency = %v, want 33.33", got.Efficiency)
	}
	if got.AverageSessionDuration != 10 {
		t.Errorf("average = %v, want 10", got.AverageSessionDuration)
	}
	if got.IncompleteSessions != 3 {
		t.Errorf("incomplete = %d, want 3", got.IncompleteSessions)
	}
}

func TestCalculateUserStats_Empty(t *testing.T) {
	got := CalculateUserStats(nil)
	want := UserStats{}
	if *got != want {
		t.Errorf("empty stats = %+v, want all zeroes", got)
	}
}

func TestCalculateUserStats_NoFocusSessions(t *testing.T) {
	// Ratio guards division by zero: breaks with no focus read 0.
	sessions := []*domain.Session{
		{SessionType: domain.SessionBreak, ActualDuration: 5},
		{SessionType: domain.SessionBreak, ActualDuration: 5},
	}

	got := CalculateUserStats(sessions)
	if got.BreakToFocusRatio != 0 {
		t.Errorf("ratio = %v, want 0 with no focus sessions", got.BreakToFocusRatio)
	}
	if got.BreakSessions != 2 || got.TotalBreakTime != 10 {
		t.Errorf("break side = %d sessions / %d min, want 2/10", got.BreakSessions, got.TotalBreakTime)
	}
}

func TestCalculateUserStats_Partitions(t *testing.T) {
	sessions := []*domain.Session{
		{SessionType: domain.SessionFocus, ActualDuration: 25},
		{SessionType: domain.SessionFocus, ActualDuration: 30},
		{SessionType: domain.SessionFocus, ActualDuration: 20},
		{SessionType: domain.SessionBreak, ActualDuration: 5},
	}

	got := CalculateUserStats(sessions)

	if got.FocusSessions != 3 || got.TotalFocusTime != 75 {
		t.Errorf("focus side = %d sessions / %d min, want 3/75", got.FocusSessions, got.TotalFocusTime)
	}
	if got.BreakSessions != 1 || got.TotalBreakTime != 5 {
		t.Errorf("break side = %d sessions / %d min, want 1/5", got.BreakSessions, got.TotalBreakTime)
	}
	// 1/3 -> 0.33
	if got.BreakToFocusRatio != 0.33 {
		t.Errorf("ratio = %v, want 0.33", got.BreakToFocusRatio)
	}
}

package usecase

import (
	"math"

	"github.com/prajithravisankar/focusflow/internal/session/domain"
)

// TaskMetrics is the per-task reduction of its session records.
type TaskMetrics struct {
	TotalTimeSpent         int     `json:"totalTimeSpent"` // minutes actually spent
	CompletedSessions      int     `json:"completedSessions"`
	IncompleteSessions     int     `json:"incompleteSessions"`
	AverageSessionDuration float64 `json:"averageSessionDuration"`
	PlannedTime            int     `json:"plannedTime"` // minutes planned
	Efficiency             float64 `json:"efficiency"`  // actual/planned in percent
}

// UserStats is the per-user reduction of session records into focus and
// break partitions.
type UserStats struct {
	TotalFocusTime    int     `json:"totalFocusTime"` // minutes
	TotalBreakTime    int     `json:"totalBreakTime"` // minutes
	FocusSessions     int     `json:"focusSessions"`
	BreakSessions     int     `json:"breakSessions"`
	BreakToFocusRatio float64 `json:"breakToFocusRatio"`
}

// CalculateTaskMetrics reduces a task's sessions into efficiency metrics.
// Efficiency is intentionally unclamped: actual time beyond the plan reads
// above 100%.
func CalculateTaskMetrics(sessions []*domain.Session) *TaskMetrics {
	metrics := &TaskMetrics{}

	for _, s := range sessions {
		metrics.TotalTimeSpent += s.ActualDuration
		metrics.PlannedTime += s.Duration
		if s.Completed {
			metrics.CompletedSessions++
		} else {
			metrics.IncompleteSessions++
		}
	}

	if count := len(sessions); count > 0 {
		metrics.AverageSessionDuration = round2(float64(metrics.TotalTimeSpent) / float64(count))
	}
	if metrics.PlannedTime > 0 {
		metrics.Efficiency = round2(float64(metrics.TotalTimeSpent) / float64(metrics.PlannedTime) * 100)
	}

	return metrics
}

// CalculateUserStats partitions sessions by type and reduces each side.
func CalculateUserStats(sessions []*domain.Session) *UserStats {
	stats := &UserStats{}

	for _, s := range sessions {
		switch s.SessionType {
		case domain.SessionFocus:
			stats.FocusSessions++
			stats.TotalFocusTime += s.ActualDuration
		case domain.SessionBreak:
			stats.BreakSessions++
			stats.TotalBreakTime += s.ActualDuration
		}
	}

	if stats.FocusSessions > 0 {
		stats.BreakToFocusRatio = round2(float64(stats.BreakSessions) / float64(stats.FocusSessions))
	}

	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

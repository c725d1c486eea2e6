package usecase

import (
	"time"

	"github.com/prajithravisankar/focusflow/internal/session/domain"
)

// SessionUsecase defines the interface for Pomodoro session business logic
type SessionUsecase interface {
	// StartSession creates a session row for a starting timer. Focus
	// sessions must reference a task owned by the caller.
	StartSession(userID string, input StartSessionInput) (*domain.Session, error)

	// UpdateSession applies a pause/resume transition and persists elapsed
	// time checkpoints. Completed sessions are terminal.
	UpdateSession(userID, sessionID string, req SessionUpdateRequest) (*domain.Session, error)

	// CompleteSession marks a session finished, clamping actualDuration to
	// at least the planned duration and crediting the linked task.
	CompleteSession(userID, sessionID string) (*domain.Session, error)

	// GetHistory returns the caller's sessions, filtered and paginated.
	GetHistory(userID string, query HistoryQuery) ([]*domain.Session, error)

	// GetTaskMetrics reduces every session referencing a task into
	// efficiency metrics. Unknown ids yield zero metrics.
	GetTaskMetrics(taskID string) (*TaskMetrics, error)

	// GetUserProductivity reduces a user's sessions into focus/break
	// stats, optionally bounded by dates or a named period.
	GetUserProductivity(userID string, query ProductivityQuery) (*UserStats, error)
}

// StartSessionInput carries the fields for a new session.
type StartSessionInput struct {
	TaskID      *string
	SessionType string
	Duration    int
	StartTime   time.Time
	EndTime     time.Time
}

// SessionUpdateRequest represents a pause/resume transition with optional
// elapsed-time checkpoints (minutes).
type SessionUpdateRequest struct {
	Action         string `json:"action"` // "pause" or "resume"
	ActualDuration *int   `json:"actualDuration,omitempty"`
	PausedDuration *int   `json:"pausedDuration,omitempty"`
}

// HistoryQuery narrows and paginates a session history listing.
type HistoryQuery struct {
	TaskID      string
	SessionType string
	StartDate   string // YYYY-MM-DD
	EndDate     string // YYYY-MM-DD
	Page        int
	Limit       int
}

// ProductivityQuery bounds a per-user productivity rollup. Period, when
// set, overrides the explicit dates.
type ProductivityQuery struct {
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	Period    string // "today", "week", "month" or "year"
}

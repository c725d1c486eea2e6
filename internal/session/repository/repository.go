package repository

import (
	"time"

	"github.com/prajithravisankar/focusflow/internal/session/domain"
)

// HistoryFilter narrows a paginated session history listing.
type HistoryFilter struct {
	TaskID      string
	SessionType string
	StartDate   *time.Time // inclusive lower bound on StartTime
	EndDate     *time.Time // inclusive upper bound on StartTime
	Limit       int
	Offset      int
}

// SessionRepository defines the interface for session data access
type SessionRepository interface {
	// Create creates a new session
	Create(session *domain.Session) error

	// FindByID finds a session by its ID
	FindByID(id string) (*domain.Session, error)

	// FindByUserID finds sessions for a user with filters, newest first
	FindByUserID(userID string, filter HistoryFilter) ([]*domain.Session, error)

	// FindAllByTaskID returns every session referencing a task
	FindAllByTaskID(taskID string) ([]*domain.Session, error)

	// FindAllByUserID returns a user's sessions, optionally bounded by
	// StartTime (for productivity rollups)
	FindAllByUserID(userID string, start, end *time.Time) ([]*domain.Session, error)

	// Update updates an existing session
	Update(session *domain.Session) error
}

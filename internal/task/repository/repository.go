package repository

import (
	"time"

	"github.com/prajithravisankar/focusflow/internal/task/domain"
)

// ListFilter narrows a paginated task listing.
type ListFilter struct {
	Search    string
	Priority  *domain.Priority
	Completed *bool
	Date      *time.Time // day filter applied to DateField
	DateField string     // "scheduled" (default) or "due"
	Limit     int
	Offset    int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID
	FindByID(id string) (*domain.Task, error)

	// FindByUserID finds tasks for a user with filters and pagination,
	// returning the total match count alongside the page
	FindByUserID(userID string, filter ListFilter) ([]*domain.Task, int64, error)

	// FindAllByUserID returns the user's full task set (for activity scans)
	FindAllByUserID(userID string) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete deletes a task by ID
	Delete(id string) error

	// IncrementTimeSpent adds minutes to a task's accumulated focus time
	IncrementTimeSpent(id string, minutes int) error
}

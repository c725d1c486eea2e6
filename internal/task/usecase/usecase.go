package usecase

import (
	"github.com/prajithravisankar/focusflow/internal/task/domain"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask creates a new task for a user
	CreateTask(userID string, input CreateTaskInput) (*domain.Task, error)

	// GetTaskByID retrieves a task by ID (with ownership check)
	GetTaskByID(userID, taskID string) (*domain.Task, error)

	// GetUserTasks retrieves a filtered, paginated task page
	GetUserTasks(userID string, query ListQuery) (*TaskPage, error)

	// UpdateTask updates an existing task
	UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)

	// DeleteTask deletes a task
	DeleteTask(userID, taskID string) error

	// GetTasksByDate returns the tasks active on a calendar date, each
	// labeled with its relationship to the day
	GetTasksByDate(userID, date string) ([]*DatedTask, error)

	// GetCalendarWeek returns 7 day descriptors starting at startDate
	// (YYYY-MM-DD) or at the Sunday of the current week when empty
	GetCalendarWeek(userID, startDate string) (*CalendarWeek, error)
}

// CreateTaskInput carries the fields for a new task. Dates use the
// YYYY-MM-DD convention.
type CreateTaskInput struct {
	Title              string
	Description        string
	Priority           string
	EstimatedPomodoros int
	ScheduledDate      *string
	DueDate            *string
	Completed          bool
}

// TaskUpdateRequest represents the fields that can be updated
type TaskUpdateRequest struct {
	Title              *string `json:"title,omitempty"`
	Description        *string `json:"description,omitempty"`
	Completed          *bool   `json:"completed,omitempty"`
	Priority           *string `json:"priority,omitempty"`
	EstimatedPomodoros *int    `json:"estimatedPomodoros,omitempty"`
	CompletedPomodoros *int    `json:"completedPomodoros,omitempty"`
	ScheduledDate      *string `json:"scheduledDate,omitempty"`
	DueDate            *string `json:"dueDate,omitempty"`
}

// ListQuery narrows and paginates a task listing.
type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	Priority  string
	Completed *bool
	Date      string // YYYY-MM-DD
	DateType  string // "scheduled" or "due"
}

// TaskPage is one page of a task listing.
type TaskPage struct {
	Tasks       []*domain.Task `json:"tasks"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
	TotalTasks  int64          `json:"totalTasks"`
	Limit       int            `json:"limit"`
}

// DatedTask is a task labeled with its relationship to a calendar day.
type DatedTask struct {
	*domain.Task
	TaskType domain.TaskType `json:"taskType"`
}

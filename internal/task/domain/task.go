package domain

import "time"

// Priority represents task priority level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Task represents a to-do item with optional day-granularity scheduling
type Task struct {
	ID                 string     `json:"id" gorm:"primaryKey"`
	UserID             string     `json:"userId" gorm:"index;not null"`
	Title              string     `json:"title" gorm:"not null"`
	Description        string     `json:"description,omitempty"`
	Completed          bool       `json:"completed" gorm:"default:false"`
	Priority           Priority   `json:"priority" gorm:"default:medium"`
	EstimatedPomodoros int        `json:"estimatedPomodoros" gorm:"default:1"`
	CompletedPomodoros int        `json:"completedPomodoros" gorm:"default:0"`
	ScheduledDate      *time.Time `json:"scheduledDate,omitempty"`
	DueDate            *time.Time `json:"dueDate,omitempty"`
	TotalTimeSpent     int        `json:"totalTimeSpent" gorm:"default:0"` // accumulated minutes
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// ValidPriority reports whether p is one of the known priority levels.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

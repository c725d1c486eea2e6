package domain

import "time"

// SessionType distinguishes deep-work time from recovery time.
type SessionType string

const (
	SessionFocus SessionType = "focus"
	SessionBreak SessionType = "break"
)

// Session represents one Pomodoro timer run. Focus sessions reference the
// task being worked on; break sessions stand alone. TaskID is a weak
// reference: deleting the task leaves its sessions in place.
type Session struct {
	ID             string      `json:"id" gorm:"primaryKey"`
	UserID         string      `json:"userId" gorm:"index;not null"`
	TaskID         *string     `json:"taskId,omitempty" gorm:"index"`
	SessionType    SessionType `json:"sessionType" gorm:"not null"`
	Duration       int         `json:"duration" gorm:"not null"`         // planned minutes
	ActualDuration int         `json:"actualDuration" gorm:"default:0"`  // minutes actually spent
	PausedDuration int         `json:"pausedDuration" gorm:"default:0"`  // accumulated paused minutes
	StartTime      time.Time   `json:"startTime" gorm:"index;not null"`
	EndTime        time.Time   `json:"endTime" gorm:"not null"`
	Completed      bool        `json:"completed" gorm:"default:false"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// ValidSessionType reports whether t is a known session type.
func ValidSessionType(t SessionType) bool {
	return t == SessionFocus || t == SessionBreak
}

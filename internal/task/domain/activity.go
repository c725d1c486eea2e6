package domain

import "time"

// TaskType labels how a task relates to a specific calendar day.
type TaskType string

const (
	TaskTypeScheduled TaskType = "scheduled" // scheduled exactly on the day
	TaskTypeDue       TaskType = "due"       // due exactly on the day
	TaskTypeBoth      TaskType = "both"      // scheduled and due on the day
	TaskTypeActive    TaskType = "active"    // inside the scheduled..due range
	TaskTypeNone      TaskType = ""          // not related to the day
)

// rangeKind is the exhaustive shape of a task's optional date pair.
type rangeKind int

const (
	rangeNeither rangeKind = iota
	rangeScheduledOnly
	rangeDueOnly
	rangeBoth
)

// Activity is the result of resolving a task against a calendar date.
type Activity struct {
	Active bool     `json:"active"`
	Type   TaskType `json:"taskType"`
}

func (t *Task) dateRangeKind() rangeKind {
	switch {
	case t.ScheduledDate != nil && t.DueDate != nil:
		return rangeBoth
	case t.ScheduledDate != nil:
		return rangeScheduledOnly
	case t.DueDate != nil:
		return rangeDueOnly
	default:
		return rangeNeither
	}
}

// StartOfDay returns midnight of d's calendar day.
func StartOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// EndOfDay returns the last instant of d's calendar day.
func EndOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999000000, d.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ResolveActivity decides whether the task is active on the given calendar
// date and labels the relationship.
//
// Activity rules:
//   - both dates present: active iff scheduledDate <= endOfDay(date) and
//     dueDate >= startOfDay(date), i.e. the day lies in the inclusive range
//     (an inverted range with scheduledDate after dueDate is empty)
//   - scheduled only: active from the scheduled day onward, unbounded
//   - due only: active up through the due day
//   - neither: never active
//
// The label is resolved independently of activity: an exact calendar-day
// match on scheduledDate or dueDate wins over the plain "active" label.
func (t *Task) ResolveActivity(date time.Time) Activity {
	start := StartOfDay(date)
	end := EndOfDay(date)

	var active bool
	switch t.dateRangeKind() {
	case rangeBoth:
		active = !t.ScheduledDate.After(end) && !t.DueDate.Before(start)
	case rangeScheduledOnly:
		active = !t.ScheduledDate.After(end)
	case rangeDueOnly:
		active = !t.DueDate.Before(start)
	case rangeNeither:
		active = false
	}

	taskType := TaskTypeNone
	if t.ScheduledDate != nil && SameDay(*t.ScheduledDate, date) {
		taskType = TaskTypeScheduled
	}
	if t.DueDate != nil && SameDay(*t.DueDate, date) {
		if taskType == TaskTypeScheduled {
			taskType = TaskTypeBoth
		} else {
			taskType = TaskTypeDue
		}
	}
	if taskType == TaskTypeNone && active {
		taskType = TaskTypeActive
	}

	return Activity{Active: active, Type: taskType}
}

// ActiveOn reports whether the task is active on the given calendar date.
func (t *Task) ActiveOn(date time.Time) bool {
	return t.ResolveActivity(date).Active
}

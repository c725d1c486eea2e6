package usecase

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prajithravisankar/focusflow/internal/task/domain"
)

// CalendarDay describes one day of a calendar week.
type CalendarDay struct {
	Date      string `json:"date"` // YYYY-MM-DD
	DayName   string `json:"dayName"`
	DayNumber string `json:"dayNumber"`
	Month     string `json:"month"`
	Year      string `json:"year"`
	IsToday   bool   `json:"isToday"`
	IsWeekend bool   `json:"isWeekend"`
	TaskCount int    `json:"taskCount"`
	HasTasks  bool   `json:"hasTasks"`
}

// CalendarWeek is a 7-day window plus the neighboring week starts for
// pagination.
type CalendarWeek struct {
	Data          []CalendarDay `json:"data"`
	StartDate     string        `json:"startDate"`
	PrevWeekStart string        `json:"prevWeekStart"`
	NextWeekStart string        `json:"nextWeekStart"`
}

func (u *taskUsecase) GetCalendarWeek(userID, startDate string) (*CalendarWeek, error) {
	today := domain.StartOfDay(u.now())

	var weekStart time.Time
	if startDate != "" {
		parsed, err := parseDay(startDate)
		if err != nil {
			return nil, fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrInvalidTask)
		}
		weekStart = parsed
	} else {
		// Sunday of the current week
		weekStart = today.AddDate(0, 0, -int(today.Weekday()))
	}

	tasks, err := u.taskRepo.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}

	return buildCalendarWeek(tasks, weekStart, today), nil
}

// buildCalendarWeek derives the 7-day window from a task snapshot. All date
// arithmetic uses AddDate so month and year boundaries roll over correctly.
func buildCalendarWeek(tasks []*domain.Task, weekStart, today time.Time) *CalendarWeek {
	days := make([]CalendarDay, 0, 7)

	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)

		count := 0
		for _, task := range tasks {
			if task.ActiveOn(day) {
				count++
			}
		}

		days = append(days, CalendarDay{
			Date:      formatDay(day),
			DayName:   day.Format("Mon"),
			DayNumber: strconv.Itoa(day.Day()),
			Month:     day.Format("Jan"),
			Year:      strconv.Itoa(day.Year()),
			IsToday:   domain.SameDay(day, today),
			IsWeekend: day.Weekday() == time.Sunday || day.Weekday() == time.Saturday,
			TaskCount: count,
			HasTasks:  count > 0,
		})
	}

	return &CalendarWeek{
		Data:          days,
		StartDate:     formatDay(weekStart),
		PrevWeekStart: formatDay(weekStart.AddDate(0, 0, -7)),
		NextWeekStart: formatDay(weekStart.AddDate(0, 0, 7)),
	}
}

func formatDay(d time.Time) string {
	return d.Format("2006-01-02")
}

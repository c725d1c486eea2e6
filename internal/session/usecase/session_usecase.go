package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/prajithravisankar/focusflow/internal/session/domain"
	"github.com/prajithravisankar/focusflow/internal/session/repository"
	taskdomain "github.com/prajithravisankar/focusflow/internal/task/domain"
	taskrepo "github.com/prajithravisankar/focusflow/internal/task/repository"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionCompleted = errors.New("session already completed")
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidSession   = errors.New("invalid session")
)

// sessionUsecase implements SessionUsecase interface
type sessionUsecase struct {
	sessionRepo repository.SessionRepository
	taskRepo    taskrepo.TaskRepository
	now         func() time.Time
}

// NewSessionUsecase creates a new instance of sessionUsecase
func NewSessionUsecase(sessionRepo repository.SessionRepository, taskRepo taskrepo.TaskRepository) SessionUsecase {
	return &sessionUsecase{
		sessionRepo: sessionRepo,
		taskRepo:    taskRepo,
		now:         time.Now,
	}
}

func (u *sessionUsecase) StartSession(userID string, input StartSessionInput) (*domain.Session, error) {
	sessionType := domain.SessionType(input.SessionType)
	if !domain.ValidSessionType(sessionType) {
		return nil, fmt.Errorf("%w: sessionType must be focus or break", ErrInvalidSession)
	}
	if input.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be a positive number of minutes", ErrInvalidSession)
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidSession)
	}

	session := &domain.Session{
		UserID:      userID,
		SessionType: sessionType,
		Duration:    input.Duration,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
	}

	if sessionType == domain.SessionFocus {
		if input.TaskID == nil || *input.TaskID == "" {
			return nil, fmt.Errorf("%w: focus sessions require a taskId", ErrInvalidSession)
		}
		task, err := u.taskRepo.FindByID(*input.TaskID)
		if err != nil {
			return nil, err
		}
		if task == nil || task.UserID != userID {
			return nil, ErrTaskNotFound
		}
		session.TaskID = input.TaskID
	}

	if err := u.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	return session, nil
}

func (u *sessionUsecase) UpdateSession(userID, sessionID string, req SessionUpdateRequest) (*domain.Session, error) {
	session, err := u.ownedSession(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, ErrSessionCompleted
	}

	switch req.Action {
	case "pause":
		// Pausing banks the time spent paused since the last resume
		if req.PausedDuration != nil && *req.PausedDuration > 0 {
			session.PausedDuration += *req.PausedDuration
		}
	case "resume", "":
		// Resuming changes nothing: paused time was banked on pause
	default:
		return nil, fmt.Errorf("%w: action must be pause or resume", ErrInvalidSession)
	}

	if req.ActualDuration != nil && *req.ActualDuration >= 0 {
		session.ActualDuration = *req.ActualDuration
	}

	if err := u.sessionRepo.Update(session); err != nil {
		return nil, err
	}

	return session, nil
}

func (u *sessionUsecase) CompleteSession(userID, sessionID string) (*domain.Session, error) {
	session, err := u.ownedSession(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, ErrSessionCompleted
	}

	session.Completed = true
	if session.ActualDuration < session.Duration {
		session.ActualDuration = session.Duration
	}

	if err := u.sessionRepo.Update(session); err != nil {
		return nil, err
	}

	// Credit the linked task. The reference is weak: a task deleted while
	// the timer ran just means there is nothing left to credit.
	if session.TaskID != nil {
		if err := u.taskRepo.IncrementTimeSpent(*session.TaskID, session.ActualDuration); err != nil {
			return nil, err
		}
	}

	return session, nil
}

func (u *sessionUsecase) GetHistory(userID string, query HistoryQuery) ([]*domain.Session, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}

	filter := repository.HistoryFilter{
		TaskID:      query.TaskID,
		SessionType: query.SessionType,
		Limit:       limit,
		Offset:      (page - 1) * limit,
	}

	var err error
	if filter.StartDate, err = parseDayBound(query.StartDate, false); err != nil {
		return nil, fmt.Errorf("%w: invalid startDate", ErrInvalidSession)
	}
	if filter.EndDate, err = parseDayBound(query.EndDate, true); err != nil {
		return nil, fmt.Errorf("%w: invalid endDate", ErrInvalidSession)
	}

	return u.sessionRepo.FindByUserID(userID, filter)
}

func (u *sessionUsecase) GetTaskMetrics(taskID string) (*TaskMetrics, error) {
	sessions, err := u.sessionRepo.FindAllByTaskID(taskID)
	if err != nil {
		return nil, err
	}
	return CalculateTaskMetrics(sessions), nil
}

func (u *sessionUsecase) GetUserProductivity(userID string, query ProductivityQuery) (*UserStats, error) {
	var start, end *time.Time

	if query.Period != "" {
		s, e, err := periodRange(query.Period, u.now())
		if err != nil {
			return nil, err
		}
		start, end = s, e
	} else {
		var err error
		if start, err = parseDayBound(query.StartDate, false); err != nil {
			return nil, fmt.Errorf("%w: invalid startDate", ErrInvalidSession)
		}
		if end, err = parseDayBound(query.EndDate, true); err != nil {
			return nil, fmt.Errorf("%w: invalid endDate", ErrInvalidSession)
		}
	}

	sessions, err := u.sessionRepo.FindAllByUserID(userID, start, end)
	if err != nil {
		return nil, err
	}

	return CalculateUserStats(sessions), nil
}

func (u *sessionUsecase) ownedSession(userID, sessionID string) (*domain.Session, error) {
	session, err := u.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	// Not-owned reads as not-found so session ids don't leak across users
	if session == nil || session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// periodRange maps a named period onto [start, end] bounds around now.
func periodRange(period string, now time.Time) (*time.Time, *time.Time, error) {
	dayStart := taskdomain.StartOfDay(now)
	dayEnd := taskdomain.EndOfDay(now)

	var start time.Time
	switch period {
	case "today":
		start = dayStart
	case "week":
		start = dayStart.AddDate(0, 0, -int(dayStart.Weekday()))
	case "month":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case "year":
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return nil, nil, fmt.Errorf("%w: period must be today, week, month or year", ErrInvalidSession)
	}

	return &start, &dayEnd, nil
}

// parseDayBound parses a YYYY-MM-DD bound, widening end bounds to the last
// instant of the day. Empty input means unbounded.
func parseDayBound(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		d = taskdomain.EndOfDay(d)
	}
	return &d, nil
}

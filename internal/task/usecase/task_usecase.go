package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/prajithravisankar/focusflow/internal/task/domain"
	"github.com/prajithravisankar/focusflow/internal/task/repository"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidTask  = errors.New("invalid task")
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
	maxPomodoros      = 20
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
	now      func() time.Time
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

func (u *taskUsecase) CreateTask(userID string, input CreateTaskInput) (*domain.Task, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidTask)
	}
	if len(input.Title) > maxTitleLen {
		return nil, fmt.Errorf("%w: title cannot exceed %d characters", ErrInvalidTask, maxTitleLen)
	}
	if len(input.Description) > maxDescriptionLen {
		return nil, fmt.Errorf("%w: description cannot exceed %d characters", ErrInvalidTask, maxDescriptionLen)
	}

	priority := domain.Priority(input.Priority)
	if input.Priority == "" {
		priority = domain.PriorityMedium
	} else if !domain.ValidPriority(priority) {
		return nil, fmt.Errorf("%w: priority must be low, medium or high", ErrInvalidTask)
	}

	estimated := input.EstimatedPomodoros
	if estimated == 0 {
		estimated = 1
	}
	if estimated < 1 || estimated > maxPomodoros {
		return nil, fmt.Errorf("%w: estimatedPomodoros must be between 1 and %d", ErrInvalidTask, maxPomodoros)
	}

	task := &domain.Task{
		UserID:             userID,
		Title:              input.Title,
		Description:        input.Description,
		Completed:          input.Completed,
		Priority:           priority,
		EstimatedPomodoros: estimated,
	}

	if input.ScheduledDate != nil && *input.ScheduledDate != "" {
		d, err := parseDay(*input.ScheduledDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid scheduledDate", ErrInvalidTask)
		}
		task.ScheduledDate = &d
	}
	if input.DueDate != nil && *input.DueDate != "" {
		d, err := parseDay(*input.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid dueDate", ErrInvalidTask)
		}
		task.DueDate = &d
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) GetTaskByID(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if task.UserID != userID {
		return nil, ErrUnauthorized
	}
	return task, nil
}

func (u *taskUsecase) GetUserTasks(userID string, query ListQuery) (*TaskPage, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}

	filter := repository.ListFilter{
		Search:    query.Search,
		Completed: query.Completed,
		DateField: query.DateType,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}
	if query.Priority != "" {
		p := domain.Priority(query.Priority)
		filter.Priority = &p
	}
	if query.Date != "" {
		d, err := parseDay(query.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date filter", ErrInvalidTask)
		}
		filter.Date = &d
	}

	tasks, total, err := u.taskRepo.FindByUserID(userID, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &TaskPage{
		Tasks:       tasks,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalTasks:  total,
		Limit:       limit,
	}, nil
}

func (u *taskUsecase) UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		if *updates.Title == "" || len(*updates.Title) > maxTitleLen {
			return nil, fmt.Errorf("%w: title must be 1-%d characters", ErrInvalidTask, maxTitleLen)
		}
		task.Title = *updates.Title
	}
	if updates.Description != nil {
		if len(*updates.Description) > maxDescriptionLen {
			return nil, fmt.Errorf("%w: description cannot exceed %d characters", ErrInvalidTask, maxDescriptionLen)
		}
		task.Description = *updates.Description
	}
	if updates.Completed != nil {
		task.Completed = *updates.Completed
	}
	if updates.Priority != nil {
		p := domain.Priority(*updates.Priority)
		if !domain.ValidPriority(p) {
			return nil, fmt.Errorf("%w: priority must be low, medium or high", ErrInvalidTask)
		}
		task.Priority = p
	}
	if updates.EstimatedPomodoros != nil {
		if *updates.EstimatedPomodoros < 1 || *updates.EstimatedPomodoros > maxPomodoros {
			return nil, fmt.Errorf("%w: estimatedPomodoros must be between 1 and %d", ErrInvalidTask, maxPomodoros)
		}
		task.EstimatedPomodoros = *updates.EstimatedPomodoros
	}
	if updates.CompletedPomodoros != nil {
		if *updates.CompletedPomodoros < 0 {
			return nil, fmt.Errorf("%w: completedPomodoros cannot be negative", ErrInvalidTask)
		}
		task.CompletedPomodoros = *updates.CompletedPomodoros
	}
	if updates.ScheduledDate != nil {
		if *updates.ScheduledDate == "" {
			task.ScheduledDate = nil
		} else {
			d, err := parseDay(*updates.ScheduledDate)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid scheduledDate", ErrInvalidTask)
			}
			task.ScheduledDate = &d
		}
	}
	if updates.DueDate != nil {
		if *updates.DueDate == "" {
			task.DueDate = nil
		} else {
			d, err := parseDay(*updates.DueDate)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid dueDate", ErrInvalidTask)
			}
			task.DueDate = &d
		}
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return err
	}
	return u.taskRepo.Delete(task.ID)
}

func (u *taskUsecase) GetTasksByDate(userID, date string) ([]*DatedTask, error) {
	day, err := parseDay(date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidTask)
	}

	tasks, err := u.taskRepo.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}

	dated := make([]*DatedTask, 0, len(tasks))
	for _, task := range tasks {
		activity := task.ResolveActivity(day)
		if !activity.Active {
			continue
		}
		dated = append(dated, &DatedTask{Task: task, TaskType: activity.Type})
	}

	return dated, nil
}

// parseDay parses a YYYY-MM-DD string as a local calendar date. Parsing
// locally keeps day boundaries stable regardless of server timezone.
func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

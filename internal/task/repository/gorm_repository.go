package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/prajithravisankar/focusflow/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindByUserID(userID string, filter ListFilter) ([]*domain.Task, int64, error) {
	var tasks []*domain.Task
	var total int64

	query := r.db.Model(&domain.Task{}).Where("user_id = ?", userID)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}
	if filter.Date != nil {
		start := domain.StartOfDay(*filter.Date)
		end := domain.EndOfDay(*filter.Date)
		if filter.DateField == "due" {
			query = query.Where("due_date >= ? AND due_date <= ?", start, end)
		} else {
			query = query.Where("scheduled_date >= ? AND scheduled_date <= ?", start, end)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(filter.Limit).Offset(filter.Offset).Find(&tasks).Error

	return tasks, total, err
}

func (r *gormTaskRepository) FindAllByUserID(userID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

func (r *gormTaskRepository) Delete(id string) error {
	return r.db.Delete(&domain.Task{}, "id = ?", id).Error
}

func (r *gormTaskRepository) IncrementTimeSpent(id string, minutes int) error {
	return r.db.Model(&domain.Task{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_time_spent": gorm.Expr("total_time_spent + ?", minutes),
			"updated_at":       time.Now(),
		}).Error
}

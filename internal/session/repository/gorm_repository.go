package repository

import (
	"errors"
	"time"

	"github.com/prajithravisankar/focusflow/internal/session/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormSessionRepository implements SessionRepository using GORM
type gormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM-based SessionRepository
func NewGormSessionRepository(db *gorm.DB) SessionRepository {
	return &gormSessionRepository{db: db}
}

func (r *gormSessionRepository) Create(session *domain.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session.CreatedAt = time.Now()
	session.UpdatedAt = time.Now()
	return r.db.Create(session).Error
}

func (r *gormSessionRepository) FindByID(id string) (*domain.Session, error) {
	var session domain.Session
	err := r.db.Where("id = ?", id).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *gormSessionRepository) FindByUserID(userID string, filter HistoryFilter) ([]*domain.Session, error) {
	var sessions []*domain.Session

	query := r.db.Where("user_id = ?", userID)
	if filter.TaskID != "" {
		query = query.Where("task_id = ?", filter.TaskID)
	}
	if filter.SessionType != "" {
		query = query.Where("session_type = ?", filter.SessionType)
	}
	if filter.StartDate != nil {
		query = query.Where("start_time >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("start_time <= ?", *filter.EndDate)
	}

	err := query.Order("start_time DESC").
		Limit(filter.Limit).Offset(filter.Offset).Find(&sessions).Error
	return sessions, err
}

func (r *gormSessionRepository) FindAllByTaskID(taskID string) ([]*domain.Session, error) {
	var sessions []*domain.Session
	err := r.db.Where("task_id = ?", taskID).Find(&sessions).Error
	return sessions, err
}

func (r *gormSessionRepository) FindAllByUserID(userID string, start, end *time.Time) ([]*domain.Session, error) {
	var sessions []*domain.Session

	query := r.db.Where("user_id = ?", userID)
	if start != nil {
		query = query.Where("start_time >= ?", *start)
	}
	if end != nil {
		query = query.Where("start_time <= ?", *end)
	}

	err := query.Find(&sessions).Error
	return sessions, err
}

func (r *gormSessionRepository) Update(session *domain.Session) error {
	session.UpdatedAt = time.Now()
	return r.db.Save(session).Error
}

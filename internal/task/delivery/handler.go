package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/prajithravisankar/focusflow/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title              string  `json:"title" binding:"required,max=200"`
	Description        string  `json:"description" binding:"max=1000"`
	Priority           string  `json:"priority"`
	EstimatedPomodoros int     `json:"estimatedPomodoros"`
	ScheduledDate      *string `json:"scheduledDate"`
	DueDate            *string `json:"dueDate"`
	Completed          bool    `json:"completed"`
}

// CreateTask creates a new task
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(userID, usecase.CreateTaskInput{
		Title:              req.Title,
		Description:        req.Description,
		Priority:           req.Priority,
		EstimatedPomodoros: req.EstimatedPomodoros,
		ScheduledDate:      req.ScheduledDate,
		DueDate:            req.DueDate,
		Completed:          req.Completed,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Task created successfully", "task": task})
}

// GetTasks returns a filtered, paginated task listing
// GET /api/tasks?page=1&limit=10&search=&priority=&completed=&date=&dateType=
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	query := usecase.ListQuery{
		Page:     page,
		Limit:    limit,
		Search:   c.Query("search"),
		Priority: c.Query("priority"),
		Date:     c.Query("date"),
		DateType: c.DefaultQuery("dateType", "scheduled"),
	}
	if completed := c.Query("completed"); completed != "" {
		b := completed == "true"
		query.Completed = &b
	}

	result, err := h.taskUsecase.GetUserTasks(userID, query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateTask updates an existing task
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var updates usecase.TaskUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTask(userID, taskID, updates)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task updated successfully", "task": task})
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.taskUsecase.DeleteTask(userID, taskID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// GetTasksByDate returns the tasks active on a calendar date
// GET /api/tasks/date/:date
func (h *TaskHandler) GetTasksByDate(c *gin.Context) {
	userID := c.GetString("userID")
	date := c.Param("date")

	tasks, err := h.taskUsecase.GetTasksByDate(userID, date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":       date,
		"tasks":      tasks,
		"totalTasks": len(tasks),
	})
}

// GetCalendarData returns a 7-day calendar window with task counts
// GET /api/tasks/calendar?startDate=YYYY-MM-DD
func (h *TaskHandler) GetCalendarData(c *gin.Context) {
	userID := c.GetString("userID")

	startDate := c.Query("startDate")
	if startDate == "undefined" {
		startDate = ""
	}

	week, err := h.taskUsecase.GetCalendarWeek(userID, startDate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, week)
}

func (h *TaskHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	case errors.Is(err, usecase.ErrInvalidTask):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

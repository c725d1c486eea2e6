package delivery

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prajithravisankar/focusflow/internal/session/usecase"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles Pomodoro session HTTP requests
type SessionHandler struct {
	sessionUsecase usecase.SessionUsecase
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessionUsecase usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
	}
}

// StartSessionRequest represents the request body for starting a session
type StartSessionRequest struct {
	TaskID      *string   `json:"taskId"`
	SessionType string    `json:"sessionType" binding:"required"`
	Duration    int       `json:"duration" binding:"required"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
}

// StartSession creates a session row for a starting timer
// POST /api/sessions/start
func (h *SessionHandler) StartSession(c *gin.Context) {
	userID := c.GetString("userID")

	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionUsecase.StartSession(userID, usecase.StartSessionInput{
		TaskID:      req.TaskID,
		SessionType: req.SessionType,
		Duration:    req.Duration,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Session started successfully",
		"sessionId": session.ID,
		"session":   session,
	})
}

// UpdateSession applies a pause/resume transition
// PUT /api/sessions/:id
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("id")

	var req usecase.SessionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionUsecase.UpdateSession(userID, sessionID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session updated successfully", "session": session})
}

// CompleteSession marks a session finished
// POST /api/sessions/:id/complete
func (h *SessionHandler) CompleteSession(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("id")

	session, err := h.sessionUsecase.CompleteSession(userID, sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session completed successfully", "session": session})
}

// GetHistory returns the caller's session history
// GET /api/sessions?taskId=&sessionType=&startDate=&endDate=&page=1&limit=10
func (h *SessionHandler) GetHistory(c *gin.Context) {
	userID := c.GetString("userID")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	sessions, err := h.sessionUsecase.GetHistory(userID, usecase.HistoryQuery{
		TaskID:      c.Query("taskId"),
		SessionType: c.Query("sessionType"),
		StartDate:   c.Query("startDate"),
		EndDate:     c.Query("endDate"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "page": page, "limit": limit})
}

// GetTaskAnalytics returns efficiency metrics for one task
// GET /api/sessions/analytics/task/:taskId
func (h *SessionHandler) GetTaskAnalytics(c *gin.Context) {
	taskID := c.Param("taskId")

	metrics, err := h.sessionUsecase.GetTaskMetrics(taskID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task analytics retrieved successfully",
		"metrics": metrics,
	})
}

// GetUserProductivity returns focus/break stats for the caller
// GET /api/sessions/analytics/productivity?startDate=&endDate=&period=
func (h *SessionHandler) GetUserProductivity(c *gin.Context) {
	userID := c.GetString("userID")

	stats, err := h.sessionUsecase.GetUserProductivity(userID, usecase.ProductivityQuery{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Period:    c.Query("period"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User productivity stats retrieved successfully",
		"stats":   stats,
	})
}

func (h *SessionHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, usecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, usecase.ErrSessionCompleted), errors.Is(err, usecase.ErrInvalidSession):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

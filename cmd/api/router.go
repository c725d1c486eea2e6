package api

import (
	"net/http"

	authDelivery "github.com/prajithravisankar/focusflow/internal/auth/delivery"
	authUsecase "github.com/prajithravisankar/focusflow/internal/auth/usecase"
	sessionDelivery "github.com/prajithravisankar/focusflow/internal/session/delivery"
	taskDelivery "github.com/prajithravisankar/focusflow/internal/task/delivery"
	"github.com/prajithravisankar/focusflow/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, cfg *config.Config, authHandler *authDelivery.AuthHandler, taskHandler *taskDelivery.TaskHandler, sessionHandler *sessionDelivery.SessionHandler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes; register/login are rate limited per client IP
		auth := api.Group("/auth")
		authLimiter := RateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow)
		{
			auth.POST("/register", authLimiter, authHandler.Register)
			auth.POST("/login", authLimiter, authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authDelivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(authDelivery.AuthMiddleware(authUc))
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.GetTasks)
			tasks.GET("/calendar", taskHandler.GetCalendarData)
			tasks.GET("/date/:date", taskHandler.GetTasksByDate)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Session routes (protected)
		sessions := api.Group("/sessions")
		sessions.Use(authDelivery.AuthMiddleware(authUc))
		{
			sessions.POST("/start", sessionHandler.StartSession)
			sessions.PUT("/:id", sessionHandler.UpdateSession)
			sessions.POST("/:id/complete", sessionHandler.CompleteSession)
			sessions.GET("", sessionHandler.GetHistory)
			sessions.GET("/analytics/task/:taskId", sessionHandler.GetTaskAnalytics)
			sessions.GET("/analytics/productivity", sessionHandler.GetUserProductivity)
		}
	}
}

package api

import (
	authDelivery "github.com/prajithravisankar/focusflow/internal/auth/delivery"
	authUsecase "github.com/prajithravisankar/focusflow/internal/auth/usecase"
	sessionDelivery "github.com/prajithravisankar/focusflow/internal/session/delivery"
	sessionUsecasePkg "github.com/prajithravisankar/focusflow/internal/session/usecase"
	taskDelivery "github.com/prajithravisankar/focusflow/internal/task/delivery"
	taskUsecasePkg "github.com/prajithravisankar/focusflow/internal/task/usecase"
	"github.com/prajithravisankar/focusflow/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	config         *config.Config
	authHandler    *authDelivery.AuthHandler
	taskHandler    *taskDelivery.TaskHandler
	sessionHandler *sessionDelivery.SessionHandler
}

func NewHandler(authUc authUsecase.AuthUsecase, taskUc taskUsecasePkg.TaskUsecase, sessionUc sessionUsecasePkg.SessionUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		config:         cfg,
		authHandler:    authDelivery.NewAuthHandler(authUc),
		taskHandler:    taskDelivery.NewTaskHandler(taskUc),
		sessionHandler: sessionDelivery.NewSessionHandler(sessionUc),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.config, h.authHandler, h.taskHandler, h.sessionHandler)

	return r.Run(addr)
}

package main

import (
	"log"

	api "github.com/prajithravisankar/focusflow/cmd/api"
	authdomain "github.com/prajithravisankar/focusflow/internal/auth/domain"
	authRepo "github.com/prajithravisankar/focusflow/internal/auth/repository"
	authUsecase "github.com/prajithravisankar/focusflow/internal/auth/usecase"
	sessiondomain "github.com/prajithravisankar/focusflow/internal/session/domain"
	sessionRepo "github.com/prajithravisankar/focusflow/internal/session/repository"
	sessionUsecase "github.com/prajithravisankar/focusflow/internal/session/usecase"
	taskdomain "github.com/prajithravisankar/focusflow/internal/task/domain"
	taskRepo "github.com/prajithravisankar/focusflow/internal/task/repository"
	taskUsecase "github.com/prajithravisankar/focusflow/internal/task/usecase"
	"github.com/prajithravisankar/focusflow/pkg/config"
	"github.com/prajithravisankar/focusflow/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &taskdomain.Task{}, &sessiondomain.Session{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	sessionRepository := sessionRepo.NewGormSessionRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository)
	sessionUsecaseInstance := sessionUsecase.NewSessionUsecase(sessionRepository, taskRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, taskUsecaseInstance, sessionUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

package main

import (
	"log"

	api "fasttodo-backend/cmd/api"
	authdomain "fasttodo-backend/internal/auth/domain"
	authRepo "fasttodo-backend/internal/auth/repository"
	authUsecase "fasttodo-backend/internal/auth/usecase"
	tododomain "fasttodo-backend/internal/todo/domain"
	todoRepo "fasttodo-backend/internal/todo/repository"
	todoUsecase "fasttodo-backend/internal/todo/usecase"
	"fasttodo-backend/pkg/config"
	"fasttodo-backend/pkg/database"
	"fasttodo-backend/pkg/token"
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
	if err := db.AutoMigrate(&authdomain.User{}, &tododomain.Todo{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	todoRepository := todoRepo.NewGormTodoRepository(db)

	// Initialize token manager
	tokenManager := token.NewManager(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokenManager)
	todoUsecaseInstance := todoUsecase.NewTodoUsecase(todoRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, todoUsecaseInstance)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

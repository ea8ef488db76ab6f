package api

import (
	"net/http"

	authDelivery "fasttodo-backend/internal/auth/delivery"
	authUsecase "fasttodo-backend/internal/auth/usecase"
	todoDelivery "fasttodo-backend/internal/todo/delivery"
	todoUsecase "fasttodo-backend/internal/todo/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, todoUc todoUsecase.TodoUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc, todoUc)
	todoHandler := todoDelivery.NewTodoHandler(todoUc)

	api := r.Group("/api/v1")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// User routes
		users := api.Group("/users")
		{
			users.POST("", authHandler.Register)
			users.POST("/signin", authHandler.Login)
			users.POST("/token/refresh", authHandler.Refresh)
			users.GET("/me", authDelivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Todo routes (protected)
		todos := api.Group("/todos")
		todos.Use(authDelivery.AuthMiddleware(authUc))
		{
			todos.POST("", todoHandler.CreateTodo)
			todos.GET("", todoHandler.ListTodos)
			todos.GET("/:id", todoHandler.GetTodo)
			todos.PUT("/:id", todoHandler.UpdateTodo)
			todos.DELETE("/:id", todoHandler.DeleteTodo)
		}
	}
}

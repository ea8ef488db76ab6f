package api

import (
	authUsecase "fasttodo-backend/internal/auth/usecase"
	todoUsecase "fasttodo-backend/internal/todo/usecase"

	"github.com/gin-gonic/gin"
)

// Handler owns the HTTP engine and its route wiring
type Handler struct {
	engine *gin.Engine
}

// NewHandler builds the gin engine and registers all routes
func NewHandler(authUc authUsecase.AuthUsecase, todoUc todoUsecase.TodoUsecase) *Handler {
	engine := gin.Default()
	SetupRoutes(engine, authUc, todoUc)

	return &Handler{
		engine: engine,
	}
}

// Start runs the HTTP server on the given address
func (h *Handler) Start(addr string) error {
	return h.engine.Run(addr)
}

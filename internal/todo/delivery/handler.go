package delivery

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"fasttodo-backend/internal/todo/usecase"

	"github.com/gin-gonic/gin"
)

// TodoHandler handles todo HTTP requests
type TodoHandler struct {
	todoUsecase usecase.TodoUsecase
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoUsecase usecase.TodoUsecase) *TodoHandler {
	return &TodoHandler{
		todoUsecase: todoUsecase,
	}
}

// CreateTodoRequest represents the request body for creating a todo
type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// UpdateTodoRequest represents the request body for updating a todo.
// All mutable fields are replaced in full.
type UpdateTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// CreateTodo creates a new todo for the authenticated user
// POST /api/v1/todos
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	ownerID := c.GetString("userID")

	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.todoUsecase.Create(ownerID, req.Title, req.Description)
	if err != nil {
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// ListTodos returns the authenticated user's todos
// GET /api/v1/todos?skip=0&limit=100&completed=false
func (h *TodoHandler) ListTodos(c *gin.Context) {
	ownerID := c.GetString("userID")

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	var completed *bool
	if raw, ok := c.GetQuery("completed"); ok {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "completed must be a boolean"})
			return
		}
		completed = &parsed
	}

	todos, err := h.todoUsecase.List(ownerID, skip, limit, completed)
	if err != nil {
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, todos)
}

// GetTodo returns a specific todo
// GET /api/v1/todos/:id
func (h *TodoHandler) GetTodo(c *gin.Context) {
	ownerID := c.GetString("userID")
	todoID := c.Param("id")

	todo, err := h.todoUsecase.Get(ownerID, todoID)
	if err != nil {
		if errors.Is(err, usecase.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
			return
		}
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

// UpdateTodo replaces the mutable fields of a todo
// PUT /api/v1/todos/:id
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	ownerID := c.GetString("userID")
	todoID := c.Param("id")

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.todoUsecase.Update(ownerID, todoID, req.Title, req.Description, req.Completed)
	if err != nil {
		if errors.Is(err, usecase.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
			return
		}
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

// DeleteTodo deletes a todo
// DELETE /api/v1/todos/:id
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	ownerID := c.GetString("userID")
	todoID := c.Param("id")

	if err := h.todoUsecase.Delete(ownerID, todoID); err != nil {
		if errors.Is(err, usecase.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
			return
		}
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

package delivery

import (
	"errors"
	"log"
	"net/http"

	authdomain "fasttodo-backend/internal/auth/domain"
	authdto "fasttodo-backend/internal/auth/dto"
	"fasttodo-backend/internal/auth/usecase"
	tododomain "fasttodo-backend/internal/todo/domain"
	"fasttodo-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// TodoLister is the slice of the todo service needed to embed a user's
// todos in user responses.
type TodoLister interface {
	List(ownerID string, skip, limit int, completed *bool) ([]*tododomain.Todo, error)
}

// AuthHandler handles user and session HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	todos       TodoLister
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, todos TodoLister) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		todos:       todos,
	}
}

// Register creates a new user
// POST /api/v1/users
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.Register(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameTaken) || errors.Is(err, usecase.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user, []*tododomain.Todo{}))
}

// Login verifies credentials and returns an access/refresh token pair
// POST /api/v1/users/signin
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		if errors.Is(err, usecase.ErrInvalidPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
			return
		}
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Me returns the currently authenticated user
// GET /api/v1/users/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := c.MustGet("user").(*authdomain.User)

	todos, err := h.todos.List(user.ID, 0, 0, nil)
	if err != nil {
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user, todos))
}

// Refresh exchanges a refresh token for a new access token
// POST /api/v1/users/token/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.authUsecase.Refresh(req.RefreshToken)
	if err != nil {
		if errors.Is(err, token.ErrInvalidToken) || errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

func toUserResponse(user *authdomain.User, todos []*tododomain.Todo) *authdto.UserResponse {
	if todos == nil {
		todos = []*tododomain.Todo{}
	}
	return &authdto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Todos:     todos,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

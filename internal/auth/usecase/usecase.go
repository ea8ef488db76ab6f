package usecase

import (
	"errors"

	authdomain "fasttodo-backend/internal/auth/domain"
	authdto "fasttodo-backend/internal/auth/dto"
)

var (
	ErrUsernameTaken   = errors.New("username already registered")
	ErrEmailTaken      = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("incorrect password")
)

// AuthUsecase defines the interface for identity business logic
type AuthUsecase interface {
	// Register creates a new user after checking username and email uniqueness
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)

	// Login verifies credentials and issues an access/refresh token pair
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new access token;
	// the refresh token itself is returned unchanged (no rotation)
	Refresh(refreshToken string) (*authdto.TokenResponse, error)

	// ResolveUser verifies an access token and re-fetches the user it names
	ResolveUser(accessToken string) (*authdomain.User, error)
}

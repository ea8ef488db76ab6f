package repository

import authdomain "fasttodo-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user, assigning id and timestamps
	Create(user *authdomain.User) error

	// FindByUsername finds a user by exact username, nil when absent
	FindByUsername(username string) (*authdomain.User, error)

	// FindByEmail finds a user by email, nil when absent
	FindByEmail(email string) (*authdomain.User, error)
}

package usecase

import (
	"errors"

	"fasttodo-backend/internal/todo/domain"
)

// ErrTodoNotFound is returned for missing todos and for todos owned by
// another user, so cross-owner probing cannot confirm existence.
var ErrTodoNotFound = errors.New("todo not found")

// TodoUsecase defines the interface for todo business logic.
// Every operation is scoped to the authenticated owner.
type TodoUsecase interface {
	// Create creates a new todo for the owner; completed defaults to false
	Create(ownerID, title, description string) (*domain.Todo, error)

	// List returns the owner's todos with pagination and an optional
	// completed filter; no matches yields an empty slice, not an error
	List(ownerID string, skip, limit int, completed *bool) ([]*domain.Todo, error)

	// Get retrieves one of the owner's todos by id
	Get(ownerID, todoID string) (*domain.Todo, error)

	// Update replaces the mutable fields of one of the owner's todos
	Update(ownerID, todoID, title, description string, completed bool) (*domain.Todo, error)

	// Delete removes one of the owner's todos by id
	Delete(ownerID, todoID string) error
}

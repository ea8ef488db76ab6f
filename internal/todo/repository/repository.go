package repository

import "fasttodo-backend/internal/todo/domain"

// TodoRepository defines the interface for todo data access.
// Read queries are always scoped to the owner so that a foreign
// todo id is indistinguishable from a missing one.
type TodoRepository interface {
	// Create persists a new todo, assigning id and timestamps
	Create(todo *domain.Todo) error

	// FindByOwner lists a user's todos with offset/limit pagination
	// and an optional completed filter
	FindByOwner(ownerID string, skip, limit int, completed *bool) ([]*domain.Todo, error)

	// FindByID finds a todo by id within the owner's scope, nil when absent
	FindByID(ownerID, todoID string) (*domain.Todo, error)

	// Update saves the mutable fields of an existing todo
	Update(todo *domain.Todo) error

	// Delete removes a todo by id
	Delete(todoID string) error
}

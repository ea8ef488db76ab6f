package repository

import (
	"errors"
	"time"

	"fasttodo-backend/internal/todo/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTodoRepository implements TodoRepository using GORM
type gormTodoRepository struct {
	db *gorm.DB
}

// NewGormTodoRepository creates a new GORM-based TodoRepository
func NewGormTodoRepository(db *gorm.DB) TodoRepository {
	return &gormTodoRepository{db: db}
}

func (r *gormTodoRepository) Create(todo *domain.Todo) error {
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	todo.CreatedAt = time.Now()
	todo.UpdatedAt = time.Now()
	return r.db.Create(todo).Error
}

func (r *gormTodoRepository) FindByOwner(ownerID string, skip, limit int, completed *bool) ([]*domain.Todo, error) {
	var todos []*domain.Todo

	query := r.db.Where("owner_id = ?", ownerID)
	if completed != nil {
		query = query.Where("completed = ?", *completed)
	}

	err := query.Order("created_at ASC").Offset(skip).Limit(limit).Find(&todos).Error
	return todos, err
}

func (r *gormTodoRepository) FindByID(ownerID, todoID string) (*domain.Todo, error) {
	var todo domain.Todo
	err := r.db.Where("id = ? AND owner_id = ?", todoID, ownerID).First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &todo, nil
}

func (r *gormTodoRepository) Update(todo *domain.Todo) error {
	todo.UpdatedAt = time.Now()
	return r.db.Save(todo).Error
}

func (r *gormTodoRepository) Delete(todoID string) error {
	return r.db.Delete(&domain.Todo{}, "id = ?", todoID).Error
}

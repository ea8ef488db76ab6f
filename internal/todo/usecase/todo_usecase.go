package usecase

import (
	"fasttodo-backend/internal/todo/domain"
	"fasttodo-backend/internal/todo/repository"
)

const defaultListLimit = 100

// todoUsecase implements TodoUsecase interface
type todoUsecase struct {
	todoRepo repository.TodoRepository
}

// NewTodoUsecase creates a new instance of todoUsecase
func NewTodoUsecase(todoRepo repository.TodoRepository) TodoUsecase {
	return &todoUsecase{
		todoRepo: todoRepo,
	}
}

func (u *todoUsecase) Create(ownerID, title, description string) (*domain.Todo, error) {
	todo := &domain.Todo{
		Title:       title,
		Description: description,
		Completed:   false,
		OwnerID:     ownerID,
	}

	if err := u.todoRepo.Create(todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (u *todoUsecase) List(ownerID string, skip, limit int, completed *bool) ([]*domain.Todo, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	todos, err := u.todoRepo.FindByOwner(ownerID, skip, limit, completed)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []*domain.Todo{}
	}
	return todos, nil
}

func (u *todoUsecase) Get(ownerID, todoID string) (*domain.Todo, error) {
	todo, err := u.todoRepo.FindByID(ownerID, todoID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, ErrTodoNotFound
	}
	return todo, nil
}

func (u *todoUsecase) Update(ownerID, todoID, title, description string, completed bool) (*domain.Todo, error) {
	todo, err := u.Get(ownerID, todoID)
	if err != nil {
		return nil, err
	}

	todo.Title = title
	todo.Description = description
	todo.Completed = completed

	if err := u.todoRepo.Update(todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (u *todoUsecase) Delete(ownerID, todoID string) error {
	if _, err := u.Get(ownerID, todoID); err != nil {
		return err
	}
	return u.todoRepo.Delete(todoID)
}

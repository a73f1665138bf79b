package service

import (
	"context"
	"errors"

	dom "todolist/internal/domain"
	"todolist/internal/repo"
)

var (
	ErrNotFound     = errors.New("todo not found")
	ErrTextRequired = errors.New("text is required")
)

type TodoService struct {
	repo repo.TodoRepo
}

func NewTodoService(r repo.TodoRepo) *TodoService {
	return &TodoService{repo: r}
}

func (s *TodoService) List(ctx context.Context) ([]dom.Todo, error) {
	return s.repo.List(ctx)
}

// Create stores text as given. Only presence is checked: whitespace-only text is accepted.
func (s *TodoService) Create(ctx context.Context, text string) (dom.Todo, error) {
	if text == "" {
		return dom.Todo{}, ErrTextRequired
	}
	return s.repo.Create(ctx, text)
}

// Update applies only the fields present in patch. Text is not re-validated here,
// so an update may set it to "".
func (s *TodoService) Update(ctx context.Context, id int64, patch dom.TodoPatch) (dom.Todo, error) {
	t, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repo.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}


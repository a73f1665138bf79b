package repo

import (
	"context"
	"errors"
	"sync"

	dom "todolist/internal/domain"
)

// ErrNoRows is returned when no todo has the requested id.
var ErrNoRows = errors.New("no rows in result set")

type TodoRepo interface {
	Create(ctx context.Context, text string) (dom.Todo, error)
	List(ctx context.Context) ([]dom.Todo, error)
	Update(ctx context.Context, id int64, patch dom.TodoPatch) (dom.Todo, error)
	Delete(ctx context.Context, id int64) error
}

// SeedTodos is the list every process starts with.
func SeedTodos() []dom.Todo {
	return []dom.Todo{
		{ID: 1, Text: "Learn React"},
		{ID: 2, Text: "Build an API"},
		{ID: 3, Text: "Connect to database"},
	}
}

// MemoryTodoRepo keeps todos in insertion order for the lifetime of the process.
// Every method holds the lock for its whole duration, so operations never interleave.
type MemoryTodoRepo struct {
	mu     sync.RWMutex
	todos  []dom.Todo
	nextID int64
}

// NewMemoryTodoRepo returns a repo holding seed; the id counter resumes after the highest seeded id.
func NewMemoryTodoRepo(seed []dom.Todo) *MemoryTodoRepo {
	r := &MemoryTodoRepo{
		todos:  make([]dom.Todo, 0, len(seed)),
		nextID: 1,
	}
	for _, t := range seed {
		r.todos = append(r.todos, t)
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
	return r
}

func (r *MemoryTodoRepo) Create(ctx context.Context, text string) (dom.Todo, error) {
	if err := ctx.Err(); err != nil {
		return dom.Todo{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	t := dom.Todo{ID: r.nextID, Text: text, Completed: false}
	r.nextID++
	r.todos = append(r.todos, t)
	return t, nil
}

// List returns a copy of the sequence in insertion order.
func (r *MemoryTodoRepo) List(ctx context.Context) ([]dom.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]dom.Todo, len(r.todos))
	copy(list, r.todos)
	return list, nil
}

func (r *MemoryTodoRepo) Update(ctx context.Context, id int64, patch dom.TodoPatch) (dom.Todo, error) {
	if err := ctx.Err(); err != nil {
		return dom.Todo{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return dom.Todo{}, ErrNoRows
	}
	r.todos[i] = patch.Apply(r.todos[i])
	return r.todos[i], nil
}

func (r *MemoryTodoRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNoRows
	}
	r.todos = append(r.todos[:i], r.todos[i+1:]...)
	return nil
}

// NextID reports the id the next Create will assign.
func (r *MemoryTodoRepo) NextID() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextID
}

// indexOf must be called with mu held.
func (r *MemoryTodoRepo) indexOf(id int64) int {
	for i := range r.todos {
		if r.todos[i].ID == id {
			return i
		}
	}
	return -1
}

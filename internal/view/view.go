// Package view mirrors the server's todo list for a client UI.
//
// The server is the source of truth: a local entry is only ever replaced by the
// literal object the server returned for it, never patched locally. Failed
// requests are logged and leave the state as it was.
package view

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"todolist/internal/client"
	"todolist/internal/dto"

	"golang.org/x/sync/singleflight"
)

// API is the subset of the todo API the view needs.
type API interface {
	List(ctx context.Context) ([]dto.TodoResponse, error)
	Create(ctx context.Context, text string) (dto.TodoResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateTodoRequest) (dto.TodoResponse, error)
	Delete(ctx context.Context, id int64) (dto.MessageResponse, error)
}

type TodoView struct {
	api API
	sf  singleflight.Group

	mu        sync.Mutex
	todos     []dto.TodoResponse
	loading   bool
	newTodo   string
	editing   bool
	editingID int64
	editText  string
}

func New(api API) *TodoView {
	return &TodoView{api: api, loading: true}
}

// Mount loads the list. Concurrent calls share one request.
func (v *TodoView) Mount(ctx context.Context) {
	res, err, _ := v.sf.Do("list", func() (interface{}, error) {
		return v.api.List(ctx)
	})

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		log.Printf("view: error fetching todos: %v", err)
		return
	}
	list := res.([]dto.TodoResponse)
	v.todos = append([]dto.TodoResponse(nil), list...)
	log.Printf("view: %d todos loaded", len(v.todos))
}

func (v *TodoView) SetNewTodo(text string) {
	v.mu.Lock()
	v.newTodo = text
	v.mu.Unlock()
}

// Submit creates the pending new todo. Blank input is ignored without a request.
func (v *TodoView) Submit(ctx context.Context) {
	v.mu.Lock()
	text := v.newTodo
	v.mu.Unlock()
	if strings.TrimSpace(text) == "" {
		return
	}

	created, err := v.api.Create(ctx, text)
	if err != nil {
		log.Printf("view: error creating todo: %v", err)
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.todos = append(v.todos, created)
	// Clears the input even if it changed while the request was in flight.
	v.newTodo = ""
	log.Printf("view: todo %d created", created.ID)
}

// Toggle asks the server to flip the completion of id as currently shown.
func (v *TodoView) Toggle(ctx context.Context, id int64) {
	v.mu.Lock()
	i := v.indexOf(id)
	var completed bool
	if i >= 0 {
		completed = v.todos[i].Completed
	}
	v.mu.Unlock()
	if i < 0 {
		log.Printf("view: toggle: todo %d is not in the list", id)
		return
	}

	updated, err := v.api.Update(ctx, id, dto.UpdateTodoRequest{Completed: dto.Some(!completed)})
	if err != nil {
		log.Printf("view: error toggling todo %d: %v", id, err)
		return
	}

	v.mu.Lock()
	v.replace(id, updated)
	v.mu.Unlock()
}

// StartEdit enters editing mode for id with text as the draft.
func (v *TodoView) StartEdit(id int64, text string) {
	v.mu.Lock()
	v.editing = true
	v.editingID = id
	v.editText = text
	v.mu.Unlock()
}

func (v *TodoView) SetEditText(text string) {
	v.mu.Lock()
	v.editText = text
	v.mu.Unlock()
}

// SaveEdit sends the draft and leaves editing mode once the server accepts it.
func (v *TodoView) SaveEdit(ctx context.Context) {
	v.mu.Lock()
	editing, id, text := v.editing, v.editingID, v.editText
	v.mu.Unlock()
	if !editing {
		return
	}

	updated, err := v.api.Update(ctx, id, dto.UpdateTodoRequest{Text: dto.Some(text)})
	if err != nil {
		log.Printf("view: error updating todo %d: %v", id, err)
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.replace(id, updated)
	v.editing = false
	v.editingID = 0
	v.editText = ""
}

// Delete removes id locally as soon as the server has answered, whatever the answer.
// Only a request that got no response leaves the list untouched.
func (v *TodoView) Delete(ctx context.Context, id int64) {
	_, err := v.api.Delete(ctx, id)
	if err != nil {
		var apiErr *client.APIError
		var decErr *client.DecodeError
		if !errors.As(err, &apiErr) && !errors.As(err, &decErr) {
			log.Printf("view: error deleting todo %d: %v", id, err)
			return
		}
		log.Printf("view: delete todo %d: %v", id, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	out := v.todos[:0:0]
	for _, t := range v.todos {
		if t.ID != id {
			out = append(out, t)
		}
	}
	v.todos = out
}

// Todos returns a copy of the current list.
func (v *TodoView) Todos() []dto.TodoResponse {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]dto.TodoResponse(nil), v.todos...)
}

func (v *TodoView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *TodoView) NewTodo() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.newTodo
}

// Editing returns the id and draft being edited, if any.
func (v *TodoView) Editing() (int64, string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.editingID, v.editText, v.editing
}

// Render writes the list as plain text.
func (v *TodoView) Render(w io.Writer) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.loading {
		_, err := fmt.Fprintln(w, "Loading todos...")
		return err
	}
	if len(v.todos) == 0 {
		_, err := fmt.Fprintln(w, "No todos yet. Add one above!")
		return err
	}
	for _, t := range v.todos {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		text := t.Text
		if v.editing && v.editingID == t.ID {
			text = v.editText + " (editing)"
		}
		if _, err := fmt.Fprintf(w, "[%s] %-3d %s\n", mark, t.ID, text); err != nil {
			return err
		}
	}
	return nil
}

// replace must be called with mu held.
func (v *TodoView) replace(id int64, updated dto.TodoResponse) {
	if i := v.indexOf(id); i >= 0 {
		v.todos[i] = updated
	}
}

// indexOf must be called with mu held.
func (v *TodoView) indexOf(id int64) int {
	for i := range v.todos {
		if v.todos[i].ID == id {
			return i
		}
	}
	return -1
}

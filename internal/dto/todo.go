package dto

import (
	"bytes"
	"encoding/json"

	dom "todolist/internal/domain"
)

// Optional records whether a JSON field was present and whether it was null.
// Omitted and null are both "no change" for updates today, but stay distinguishable.
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Ptr returns the value when it was supplied and not null, otherwise nil.
func (o Optional[T]) Ptr() *T {
	if !o.Present || o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// Some builds a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: v}
}

type CreateTodoRequest struct {
	Text string `json:"text" binding:"required" example:"Buy milk"`
}

type UpdateTodoRequest struct {
	Text      Optional[string] `json:"text" swaggertype:"string"`
	Completed Optional[bool]   `json:"completed" swaggertype:"boolean"`
}

// Patch converts the request into a domain patch.
func (r UpdateTodoRequest) Patch() dom.TodoPatch {
	return dom.TodoPatch{
		Text:      r.Text.Ptr(),
		Completed: r.Completed.Ptr(),
	}
}

// MarshalJSON writes only the fields that carry a value, so clients
// can send {"completed":true} without touching text.
func (r UpdateTodoRequest) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 2)
	if r.Text.Present {
		out["text"] = r.Text.Ptr()
	}
	if r.Completed.Present {
		out["completed"] = r.Completed.Ptr()
	}
	return json.Marshal(out)
}

type TodoResponse struct {
	ID        int64  `json:"id" example:"4"`
	Text      string `json:"text" example:"Buy milk"`
	Completed bool   `json:"completed" example:"false"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Todo not found"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Todo deleted successfully"`
}

// FromDomain converts a domain todo to its wire shape.
func FromDomain(t dom.Todo) TodoResponse {
	return TodoResponse{ID: t.ID, Text: t.Text, Completed: t.Completed}
}

// FromDomainList always returns a non-nil slice so an empty list encodes as [].
func FromDomainList(list []dom.Todo) []TodoResponse {
	out := make([]TodoResponse, len(list))
	for i := range list {
		out[i] = FromDomain(list[i])
	}
	return out
}

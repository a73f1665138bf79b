package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"todolist/internal/dto"
)

// DefaultBaseURL is where the local API listens during development.
const DefaultBaseURL = "http://localhost:3001/api"

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// DecodeError means a 2xx response arrived but its body could not be read.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "decode response: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

// Client talks to the todo API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for baseURL. A nil hc uses http.DefaultClient.
func New(baseURL string, hc *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

func (c *Client) List(ctx context.Context) ([]dto.TodoResponse, error) {
	var out []dto.TodoResponse
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, text string) (dto.TodoResponse, error) {
	var out dto.TodoResponse
	err := c.do(ctx, http.MethodPost, "/todos", dto.CreateTodoRequest{Text: text}, &out)
	return out, err
}

func (c *Client) Update(ctx context.Context, id int64, req dto.UpdateTodoRequest) (dto.TodoResponse, error) {
	var out dto.TodoResponse
	err := c.do(ctx, http.MethodPut, todoPath(id), req, &out)
	return out, err
}

func (c *Client) Delete(ctx context.Context, id int64) (dto.MessageResponse, error) {
	var out dto.MessageResponse
	err := c.do(ctx, http.MethodDelete, todoPath(id), nil, &out)
	return out, err
}

func todoPath(id int64) string {
	return "/todos/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, &DecodeError{Err: err})
	}
	return nil
}

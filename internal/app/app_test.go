package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todolist/internal/config"
	"todolist/internal/dto"
	"todolist/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		App:  config.AppConfig{Env: "test", Version: "1.2.3"},
		HTTP: config.HTTPConfig{Host: "localhost", Port: "3001"},
	}
	return NewWithRepo(cfg, repo.NewMemoryTodoRepo(repo.SeedTodos()))
}

func serve(a *App, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, req)
	return w
}

func listIDs(t *testing.T, a *App) []int64 {
	t.Helper()
	w := serve(a, http.MethodGet, "/api/todos", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.TodoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	out := make([]int64, len(list))
	for i, td := range list {
		out[i] = td.ID
	}
	return out
}

func TestEndToEndScenario(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, []int64{1, 2, 3}, listIDs(t, a))

	w := serve(a, http.MethodPost, "/api/todos", `{"text":"x"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":4,"text":"x","completed":false}`, w.Body.String())
	assert.Len(t, listIDs(t, a), 4)

	w = serve(a, http.MethodPut, "/api/todos/4", `{"completed":true}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":4,"text":"x","completed":true}`, w.Body.String())

	w = serve(a, http.MethodDelete, "/api/todos/2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Todo deleted successfully"}`, w.Body.String())

	assert.Equal(t, []int64{1, 3, 4}, listIDs(t, a))
}

func TestRoundTrip(t *testing.T) {
	a := newTestApp(t)

	w := serve(a, http.MethodPost, "/api/todos", `{"text":"round trip"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.TodoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = serve(a, http.MethodGet, "/api/todos", "", nil)
	var list []dto.TodoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Contains(t, list, created)

	w = serve(a, http.MethodPut, "/api/todos/5", `{"text":"changed"}`, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	path := "/api/todos/" + jsonNumber(created.ID)
	w = serve(a, http.MethodPut, path, `{"text":"changed"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = serve(a, http.MethodGet, "/api/todos", "", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Contains(t, list, dto.TodoResponse{ID: created.ID, Text: "changed"})

	w = serve(a, http.MethodDelete, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, listIDs(t, a), created.ID)
}

func jsonNumber(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}

func TestCORS(t *testing.T) {
	a := newTestApp(t)

	h := http.Header{}
	h.Set("Origin", "http://localhost:5173")
	w := serve(a, http.MethodGet, "/api/todos", "", h)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	h.Set("Access-Control-Request-Method", http.MethodPut)
	w = serve(a, http.MethodOptions, "/api/todos/1", "", h)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}

func TestClose(t *testing.T) {
	a := newTestApp(t)
	assert.NoError(t, a.Close(context.Background()))
}

func TestRequestID(t *testing.T) {
	a := newTestApp(t)

	w := serve(a, http.MethodGet, "/api/todos", "", nil)
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	h := http.Header{}
	h.Set(RequestIDHeader, "abc-123")
	w = serve(a, http.MethodGet, "/api/todos", "", h)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestServiceRoutes(t *testing.T) {
	a := newTestApp(t)

	w := serve(a, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"env":"test"}`, w.Body.String())

	w = serve(a, http.MethodGet, "/version", "", nil)
	assert.JSONEq(t, `{"version":"1.2.3"}`, w.Body.String())

	w = serve(a, http.MethodGet, "/api", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"todos":"/api/todos"`)

	w = serve(a, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "http://localhost:3001/api")

	w = serve(a, http.MethodGet, "/swagger-doc.json", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "/api", doc["basePath"])
	assert.Contains(t, doc["paths"], "/todos/{id}")
}

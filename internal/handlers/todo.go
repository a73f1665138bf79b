package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"todolist/internal/dto"
	"todolist/internal/service"
	"todolist/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	msgTextRequired = "Text is required"
	msgNotFound     = "Todo not found"
	msgDeleted      = "Todo deleted successfully"
)

// RequestIDKey is the gin context key holding the request id set by the app middleware.
const RequestIDKey = "request_id"

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// List godoc
// @Summary      List all todos
// @Tags         todos
// @Produce      json
// @Success      200  {array}   dto.TodoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	logf(c, "GET /api/todos - Fetching all todos")
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromDomainList(list))
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTodoRequest  true  "Todo body"
// @Success      201   {object}  dto.TodoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	// A failed "required" check falls through: the service rejects the empty text.
	var verrs validator.ValidationErrors
	if err := bindJSON(c, &req); err != nil && !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	logf(c, "POST /api/todos - Creating todo: %q", req.Text)

	t, err := h.svc.Create(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrTextRequired) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgTextRequired})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.FromDomain(t))
}

// Update godoc
// @Summary      Update a todo
// @Description  Partial update: only the fields present in the body change.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Todo ID"
// @Param        body  body      dto.UpdateTodoRequest  true  "Partial update"
// @Success      200   {object}  dto.TodoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	logf(c, "PUT /api/todos/%s - Updating todo", c.Param("id"))

	var req dto.UpdateTodoRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgNotFound})
		return
	}
	t, err := h.svc.Update(c.Request.Context(), id, req.Patch())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromDomain(t))
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Param        id   path      int  true  "Todo ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	logf(c, "DELETE /api/todos/%s - Deleting todo", c.Param("id"))

	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgNotFound})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgDeleted})
}

// bindJSON decodes the body into obj and validates it. An empty body counts as {}.
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		return binding.Validator.ValidateStruct(obj)
	}
	return err
}

func logf(c *gin.Context, format string, args ...any) {
	if id := c.GetString(RequestIDKey); id != "" {
		format = "[" + id + "] " + format
	}
	log.Printf(format, args...)
}

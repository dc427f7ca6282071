package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/http/dto"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/ports"
)

// TodoHandler serves the todo query and creation endpoints.
type TodoHandler struct {
	service ports.TodoService
}

// NewTodoHandler creates a new TodoHandler backed by service.
func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// ListTodos handles GET /api/v1/todos. Query parameters owner, category,
// body, status and limit select the todos returned.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	criteria, err := dto.ParseCriteria(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	todos, err := h.service.ListTodos(r.Context(), criteria)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoListResponse(todos))
}

// GetTodo handles GET /api/v1/todos/{id}. A malformed id is a 400 located
// at path.id.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.GetTodo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponseAt(w, r, dto.LocationPath, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(t))
}

// CreateTodo handles POST /api/v1/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.CreateTodo(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", r.URL.Path+"/"+created.ID)
	writeJSON(w, r, http.StatusCreated, dto.ToTodoResponse(created))
}

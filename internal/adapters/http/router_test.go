package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/http"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/http/dto"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/http/handlers"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain/todo"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/mocks"
)

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, *mocks.MockTodoService, *mocks.MockHealthRegistry) {
	t.Helper()
	svc := mocks.NewMockTodoService(t)
	registry := mocks.NewMockHealthRegistry(t)

	router := adapthttp.NewRouter(handlers.NewTodoHandler(svc), handlers.NewHealthHandler(registry), middlewares...)
	return router, svc, registry
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	expectedRoutes := []string{
		"GET /health/live",
		"GET /health/ready",
		"GET /api/v1/todos",
		"POST /api/v1/todos",
		"GET /api/v1/todos/{id}",
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, key := range expectedRoutes {
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
	if len(registered) != len(expectedRoutes) {
		t.Errorf("registered %d routes, want %d: %v", len(registered), len(expectedRoutes), registered)
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	router, _, registry := newTestRouter(t, mw("outer"), mw("inner"))
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody)
	router.ServeHTTP(rec, req)

	if strings.Join(order, ",") != "outer,inner" {
		t.Errorf("middleware order = %v, want [outer inner]", order)
	}
}

func TestRouter_ListTodosPassesCriteria(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)

	want := todo.Criteria{Owner: "Blanche", Category: "es", Status: todo.StatusComplete, Limit: 2}
	svc.EXPECT().ListTodos(mock.Anything, want).Return([]todo.Todo{
		{ID: "1", Title: "Shop", Owner: "Blanche", Category: "groceries", Completed: true},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos?owner=Blanche&category=es&status=complete&limit=2", http.NoBody)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body dto.TodoListResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Count != 1 || body.Todos[0].Owner != "Blanche" {
		t.Errorf("body = %+v", body)
	}
}

func TestRouter_GetTodoNotFound(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)
	svc.EXPECT().GetTodo(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos/missing", http.NoBody)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_UnmatchedRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "unknown path", method: http.MethodGet, path: "/nonexistent", want: http.StatusNotFound},
		{name: "unversioned api", method: http.MethodGet, path: "/api/todos", want: http.StatusNotFound},
		{name: "update not exposed", method: http.MethodPatch, path: "/api/v1/todos/abc", want: http.StatusMethodNotAllowed},
		{name: "delete not exposed", method: http.MethodDelete, path: "/api/v1/todos/abc", want: http.StatusMethodNotAllowed},
		{name: "put on collection", method: http.MethodPut, path: "/api/v1/todos", want: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, _, _ := newTestRouter(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			router.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}
		})
	}
}

package ports

import (
	"context"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain/todo"
)

// TodoService defines the service port for todo queries and creation.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// ListTodos returns the todos matching every active criterion, in store
	// order, truncated to the criteria's limit. An empty result is not an error.
	ListTodos(ctx context.Context, criteria todo.Criteria) ([]todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id string) (*todo.Todo, error)

	// CreateTodo validates and stores a new todo, returning it with its ID.
	// Returns domain.ErrValidation if the todo fails validation.
	CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error)
}

package ports

import (
	"context"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain/todo"
)

// TodoStore defines the outbound port for the todo data source.
// Implemented by the memory, postgres, mongo and remote adapters; called by
// the application layer. Stores own their collection and return copies.
type TodoStore interface {
	// ListTodos returns the full collection in its stable insertion order.
	// Filtering is the caller's job.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id string) (*todo.Todo, error)

	// CreateTodo appends a new todo and returns it with its store-assigned ID.
	// Any ID already set on the argument is ignored.
	CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error)
}

// Package memory implements ports.TodoStore on an in-process slice. It backs
// local development and tests, and is the default store.backend.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain/todo"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/ports"
)

var _ ports.TodoStore = (*Store)(nil)

// Store keeps todos in insertion order. All methods are safe for concurrent
// use and return copies, so callers never share memory with the store.
type Store struct {
	mu    sync.RWMutex
	todos []todo.Todo
	index map[string]int
}

// New returns a Store holding a copy of initial. Todos without an ID get one.
func New(initial ...todo.Todo) *Store {
	s := &Store{
		todos: make([]todo.Todo, 0, len(initial)),
		index: make(map[string]int, len(initial)),
	}
	for _, t := range initial {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		s.index[t.ID] = len(s.todos)
		s.todos = append(s.todos, t)
	}
	return s
}

// ListTodos returns a copy of the whole collection in insertion order.
func (s *Store) ListTodos(_ context.Context) ([]todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.todos), nil
}

// GetTodo returns a copy of the todo with the given ID.
func (s *Store) GetTodo(_ context.Context, id string) (*todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("todo %q: %w", id, domain.ErrNotFound)
	}
	t := s.todos[i]
	return &t, nil
}

// CreateTodo appends a copy of t under a fresh UUID.
func (s *Store) CreateTodo(_ context.Context, t *todo.Todo) (*todo.Todo, error) {
	created := *t
	created.ID = uuid.NewString()

	s.mu.Lock()
	s.index[created.ID] = len(s.todos)
	s.todos = append(s.todos, created)
	s.mu.Unlock()

	return &created, nil
}

// Name identifies the store in readiness results.
func (s *Store) Name() string {
	return "memory"
}

// HealthCheck always succeeds; the store has no external dependency.
func (s *Store) HealthCheck(_ context.Context) error {
	return nil
}

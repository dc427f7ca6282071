package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain/todo"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/platform/httpclient"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/ports"
)

var (
	_ ports.TodoStore     = (*TodoStore)(nil)
	_ ports.HealthChecker = (*TodoStore)(nil)
)

const todosPath = "/api/todos"

// errMissingID is returned when the upstream acknowledges a create without
// naming the new todo.
var errMissingID = errors.New("upstream create response has no id")

// TodoStore is the remote store backend. It reads and appends todos through
// the upstream todos API; filtering stays local.
type TodoStore struct {
	req    *Requester
	client *httpclient.Client
	logger *slog.Logger
}

// NewTodoStore creates a TodoStore that talks to the upstream through client.
func NewTodoStore(client *httpclient.Client, logger *slog.Logger) *TodoStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoStore{
		req:    NewRequester(client, logger),
		client: client,
		logger: logger,
	}
}

// ListTodos fetches the whole upstream collection in the order it is served.
func (s *TodoStore) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	var dtos []todoDTO
	if err := s.req.Do(ctx, http.MethodGet, todosPath, http.StatusOK, nil, &dtos); err != nil {
		return nil, err
	}
	return toDomainTodoList(dtos), nil
}

// GetTodo fetches one todo. An upstream 404 surfaces as domain.ErrNotFound
// and the 400 it sends for a malformed ID as domain.ErrValidation.
func (s *TodoStore) GetTodo(ctx context.Context, id string) (*todo.Todo, error) {
	var dto todoDTO
	if err := s.req.Do(ctx, http.MethodGet, todosPath+"/"+url.PathEscape(id), http.StatusOK, nil, &dto); err != nil {
		return nil, fmt.Errorf("todo %q: %w", id, err)
	}

	t := toDomainTodo(&dto)
	return &t, nil
}

// CreateTodo posts t and returns it under the ID the upstream assigned.
func (s *TodoStore) CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	var created createdResponseDTO
	err := s.req.Do(ctx, http.MethodPost, todosPath, http.StatusCreated, toCreateTodoRequest(t), &created)
	if err != nil {
		return nil, err
	}
	if created.ID == "" {
		s.logger.ErrorContext(ctx, "upstream create returned no id",
			slog.String("operation", "acl.CreateTodo"),
		)
		return nil, fmt.Errorf("creating todo: %w: %w", domain.ErrUnavailable, errMissingID)
	}

	result := *t
	result.ID = created.ID
	return &result, nil
}

// Name matches the httpclient service name used in spans and metrics.
func (s *TodoStore) Name() string {
	return s.client.Name()
}

// HealthCheck reports the client's circuit breaker state without a network
// call.
func (s *TodoStore) HealthCheck(ctx context.Context) error {
	return s.client.HealthCheck(ctx)
}

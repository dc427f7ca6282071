// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain/todo"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/platform/telemetry"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/ports"
)

const tracerName = "github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/app"

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService. It loads the collection from the
// configured TodoStore and hands it to the filter engine; it contains no
// filtering logic of its own.
type TodoService struct {
	store   ports.TodoStore
	metrics *telemetry.Metrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

// NewTodoService creates a TodoService. A nil metrics value records nothing
// and a nil logger discards output.
func NewTodoService(store ports.TodoStore, metrics *telemetry.Metrics, logger *slog.Logger) *TodoService {
	if metrics == nil {
		metrics = telemetry.NoopMetrics()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		store:   store,
		metrics: metrics,
		tracer:  otel.Tracer(tracerName),
		logger:  logger,
	}
}

// ListTodos returns the todos satisfying criteria in store order.
func (s *TodoService) ListTodos(ctx context.Context, criteria todo.Criteria) ([]todo.Todo, error) {
	ctx, span := s.tracer.Start(ctx, "TodoService.ListTodos", trace.WithAttributes(
		attribute.String("filter.owner", criteria.Owner),
		attribute.String("filter.category", criteria.Category),
		attribute.String("filter.body", criteria.Body),
		attribute.String("filter.status", criteria.Status.String()),
		attribute.Int("filter.limit", criteria.Limit),
	))
	defer span.End()

	s.logger.InfoContext(ctx, "listing todos",
		slog.String("owner", criteria.Owner),
		slog.String("category", criteria.Category),
		slog.String("body", criteria.Body),
		slog.String("status", criteria.Status.String()),
		slog.Int("limit", criteria.Limit),
	)

	all, err := s.store.ListTodos(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store list failed")
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "ListTodos"),
			slog.Any("error", err),
		)
		return nil, err
	}

	result := todo.Apply(all, criteria)

	attrs := metric.WithAttributes(telemetry.AttrFilterActive.Bool(!criteria.IsZero()))
	s.metrics.FilterTotal.Add(ctx, 1, attrs)
	s.metrics.FilterResults.Record(ctx, int64(len(result)), attrs)
	span.SetAttributes(
		attribute.Int("todos.scanned", len(all)),
		attribute.Int("todos.matched", len(result)),
	)

	return result, nil
}

// GetTodo returns a single todo by ID.
func (s *TodoService) GetTodo(ctx context.Context, id string) (*todo.Todo, error) {
	ctx, span := s.tracer.Start(ctx, "TodoService.GetTodo", trace.WithAttributes(
		attribute.String("todo.id", id),
	))
	defer span.End()

	s.logger.InfoContext(ctx, "fetching todo", slog.String("id", id))

	t, err := s.store.GetTodo(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store get failed")
		s.logger.ErrorContext(ctx, "failed to fetch todo",
			slog.String("operation", "GetTodo"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return t, nil
}

// CreateTodo validates and stores a new todo, returning it with its
// store-assigned ID.
func (s *TodoService) CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	ctx, span := s.tracer.Start(ctx, "TodoService.CreateTodo")
	defer span.End()

	s.logger.InfoContext(ctx, "creating todo",
		slog.String("title", t.Title),
		slog.String("owner", t.Owner),
	)

	if err := t.Validate(); err != nil {
		return nil, err
	}

	created, err := s.store.CreateTodo(ctx, t)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store create failed")
		s.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "CreateTodo"),
			slog.Any("error", err),
		)
		return nil, err
	}

	span.SetAttributes(attribute.String("todo.id", created.ID))
	return created, nil
}

// Package postgres implements ports.TodoStore on PostgreSQL through a pgx
// connection pool. Todos keep insertion order through a bigserial column.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain/todo"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/platform/config"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/ports"
)

var _ ports.TodoStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS todos (
	seq       BIGSERIAL PRIMARY KEY,
	id        TEXT      NOT NULL UNIQUE,
	title     TEXT      NOT NULL,
	owner     TEXT      NOT NULL,
	category  TEXT      NOT NULL DEFAULT '',
	body      TEXT      NOT NULL DEFAULT '',
	completed BOOLEAN   NOT NULL DEFAULT FALSE
)`

const (
	listQuery   = `SELECT id, title, owner, category, body, completed FROM todos ORDER BY seq`
	getQuery    = `SELECT id, title, owner, category, body, completed FROM todos WHERE id = $1`
	insertQuery = `INSERT INTO todos (id, title, owner, category, body, completed) VALUES ($1, $2, $3, $4, $5, $6)`
)

// Store is a PostgreSQL-backed todo store.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Open creates a connection pool from cfg and verifies it with a ping.
func Open(ctx context.Context, cfg config.PostgresConfig, logger *slog.Logger) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(min(cfg.MaxConns, 1<<15)) //nolint:gosec // bounded above
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	return New(pool, logger), nil
}

// New wraps an existing pool.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{pool: pool, logger: logger}
}

// EnsureSchema creates the todos table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating todos table: %w", err)
	}
	return nil
}

// Close releases every pooled connection.
func (s *Store) Close() {
	s.pool.Close()
}

// ListTodos returns every todo in insertion order.
func (s *Store) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	rows, err := s.pool.Query(ctx, listQuery)
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w: %w", domain.ErrUnavailable, err)
	}

	todos, err := pgx.CollectRows(rows, scanTodo)
	if err != nil {
		return nil, fmt.Errorf("reading todos: %w", err)
	}
	if todos == nil {
		todos = []todo.Todo{}
	}
	return todos, nil
}

// GetTodo returns the todo with the given ID.
func (s *Store) GetTodo(ctx context.Context, id string) (*todo.Todo, error) {
	rows, err := s.pool.Query(ctx, getQuery, id)
	if err != nil {
		return nil, fmt.Errorf("querying todo %q: %w: %w", id, domain.ErrUnavailable, err)
	}

	t, err := pgx.CollectExactlyOneRow(rows, scanTodo)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("todo %q: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading todo %q: %w", id, err)
	}
	return &t, nil
}

// CreateTodo inserts t under a fresh UUID and returns the stored copy.
func (s *Store) CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	created := *t
	created.ID = uuid.NewString()

	_, err := s.pool.Exec(ctx, insertQuery,
		created.ID, created.Title, created.Owner, created.Category, created.Body, created.Completed)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to insert todo",
			slog.String("operation", "postgres.CreateTodo"),
			slog.String("id", created.ID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("inserting todo: %w: %w", domain.ErrUnavailable, err)
	}
	return &created, nil
}

// Name identifies the store in readiness results.
func (s *Store) Name() string {
	return "postgres"
}

// HealthCheck pings the pool.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	return nil
}

func scanTodo(row pgx.CollectableRow) (todo.Todo, error) {
	var t todo.Todo
	err := row.Scan(&t.ID, &t.Title, &t.Owner, &t.Category, &t.Body, &t.Completed)
	return t, err
}

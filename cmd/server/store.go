package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/clients/acl"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/store/memory"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/store/mongo"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/store/postgres"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/store/seed"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/app"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/platform/config"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/platform/httpclient"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/platform/telemetry"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/ports"
)

// upstreamName labels the remote store's client in logs, metrics and health.
const upstreamName = "todo-api"

// healthStore is a todo store that also reports its own readiness.
type healthStore interface {
	ports.TodoStore
	ports.HealthChecker
}

// storeBackend is the opened store plus whatever releases its connections.
type storeBackend struct {
	store healthStore
	close func(context.Context) error
}

func openStore(ctx context.Context, cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (*storeBackend, error) {
	noClose := func(context.Context) error { return nil }

	switch cfg.Store.Backend {
	case config.BackendMemory:
		return &storeBackend{store: memory.New(), close: noClose}, nil

	case config.BackendPostgres:
		s, err := postgres.Open(ctx, cfg.Store.Postgres, logger)
		if err != nil {
			return nil, err
		}
		if err := s.EnsureSchema(ctx); err != nil {
			s.Close()
			return nil, err
		}
		return &storeBackend{store: s, close: func(context.Context) error {
			s.Close()
			return nil
		}}, nil

	case config.BackendMongo:
		s, err := mongo.Open(ctx, cfg.Store.Mongo, logger)
		if err != nil {
			return nil, err
		}
		return &storeBackend{store: s, close: s.Close}, nil

	case config.BackendRemote:
		client := httpclient.New(&cfg.Client, upstreamName, metrics, logger)
		return &storeBackend{store: acl.NewTodoStore(client, logger), close: noClose}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func closeStore(backend *storeBackend, logger *slog.Logger) {
	if err := backend.close(context.Background()); err != nil {
		logger.Error("closing store", slog.String("store", backend.store.Name()), slog.Any("error", err))
	}
}

// seedStore loads path into store when the store is empty. An empty path
// disables seeding.
func seedStore(ctx context.Context, path string, store ports.TodoStore, logger *slog.Logger) error {
	if path == "" {
		return nil
	}

	todos, err := seed.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading seed file: %w", err)
	}

	n, err := app.Seed(ctx, store, todos, logger)
	if err != nil {
		return fmt.Errorf("seeding store: %w", err)
	}
	if n > 0 {
		logger.Info("seed file applied", slog.String("path", path), slog.Int("inserted", n))
	}
	return nil
}

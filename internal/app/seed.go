package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain/todo"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/ports"
)

// Seed inserts todos into store in order when the store is empty. It returns
// the number of records inserted, which is zero when the store already holds
// data. Insertion stops at the first failure.
func Seed(ctx context.Context, store ports.TodoStore, todos []todo.Todo, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	existing, err := store.ListTodos(ctx)
	if err != nil {
		return 0, fmt.Errorf("checking store before seeding: %w", err)
	}
	if len(existing) > 0 {
		logger.InfoContext(ctx, "store already populated, skipping seed",
			slog.Int("existing", len(existing)),
		)
		return 0, nil
	}

	for i := range todos {
		if _, err := store.CreateTodo(ctx, &todos[i]); err != nil {
			return i, fmt.Errorf("seeding todo %d (%q): %w", i, todos[i].Title, err)
		}
	}

	logger.InfoContext(ctx, "seeded todo store", slog.Int("count", len(todos)))
	return len(todos), nil
}

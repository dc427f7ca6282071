package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/store/memory"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain/todo"
)

func TestNew_AssignsMissingIDs(t *testing.T) {
	t.Parallel()

	s := memory.New(
		todo.Todo{ID: "keep", Title: "A", Owner: "Fry"},
		todo.Todo{Title: "B", Owner: "Dawn"},
	)

	got, err := s.ListTodos(context.Background())
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "keep" {
		t.Errorf("got[0].ID = %q, want %q", got[0].ID, "keep")
	}
	if got[1].ID == "" {
		t.Error("got[1].ID is empty, want generated ID")
	}
}

func TestStore_CreateThenGet(t *testing.T) {
	t.Parallel()

	s := memory.New()
	ctx := context.Background()

	created, err := s.CreateTodo(ctx, &todo.Todo{ID: "ignored", Title: "Read", Owner: "Roberta", Category: "homework"})
	if err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}
	if created.ID == "" || created.ID == "ignored" {
		t.Errorf("CreateTodo().ID = %q, want fresh generated ID", created.ID)
	}

	got, err := s.GetTodo(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTodo() error = %v", err)
	}
	if *got != *created {
		t.Errorf("GetTodo() = %+v, want %+v", *got, *created)
	}
}

func TestStore_GetTodo_NotFound(t *testing.T) {
	t.Parallel()

	_, err := memory.New().GetTodo(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetTodo() error = %v, want ErrNotFound", err)
	}
}

func TestStore_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	s := memory.New()
	ctx := context.Background()
	titles := []string{"first", "second", "third", "fourth"}
	for _, title := range titles {
		if _, err := s.CreateTodo(ctx, &todo.Todo{Title: title, Owner: "Barry"}); err != nil {
			t.Fatalf("CreateTodo(%q) error = %v", title, err)
		}
	}

	got, _ := s.ListTodos(ctx)
	for i, title := range titles {
		if got[i].Title != title {
			t.Errorf("got[%d].Title = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	s := memory.New(todo.Todo{ID: "a", Title: "Original", Owner: "Blanche"})
	ctx := context.Background()

	list, _ := s.ListTodos(ctx)
	list[0].Title = "mutated"

	one, _ := s.GetTodo(ctx, "a")
	one.Owner = "mutated"

	input := &todo.Todo{Title: "New", Owner: "Fry"}
	created, _ := s.CreateTodo(ctx, input)
	input.Title = "mutated"

	again, _ := s.GetTodo(ctx, "a")
	if again.Title != "Original" || again.Owner != "Blanche" {
		t.Errorf("stored todo changed through a returned copy: %+v", *again)
	}
	stored, _ := s.GetTodo(ctx, created.ID)
	if stored.Title != "New" {
		t.Errorf("stored todo changed through the create argument: %+v", *stored)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := memory.New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = s.CreateTodo(ctx, &todo.Todo{Title: "t", Owner: "o"})
			} else {
				_, _ = s.ListTodos(ctx)
			}
		}()
	}
	wg.Wait()

	got, _ := s.ListTodos(ctx)
	if len(got) != 25 {
		t.Errorf("len = %d, want 25", len(got))
	}
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()

	s := memory.New()
	if s.Name() != "memory" {
		t.Errorf("Name() = %q, want %q", s.Name(), "memory")
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}

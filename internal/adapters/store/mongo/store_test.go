package mongo_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/store/mongo"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain/todo"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/platform/config"
)

// openTestStore connects to APP_TEST_MONGO_URI using a collection unique to
// the test. Tests skip when the variable is unset.
func openTestStore(t *testing.T) *mongo.Store {
	t.Helper()

	uri := os.Getenv("APP_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("APP_TEST_MONGO_URI not set")
	}

	ctx := context.Background()
	s, err := mongo.Open(ctx, config.MongoConfig{
		URI:        uri,
		Database:   "todos_test",
		Collection: "todos_" + time.Now().Format("150405.000000000"),
		Timeout:    5 * time.Second,
	}, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	return s
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	titles := []string{"first", "second", "third"}
	var ids []string
	for _, title := range titles {
		created, err := s.CreateTodo(ctx, &todo.Todo{Title: title, Owner: "Fry", Completed: title == "second"})
		if err != nil {
			t.Fatalf("CreateTodo() error = %v", err)
		}
		ids = append(ids, created.ID)
	}

	got, err := s.ListTodos(ctx)
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if len(got) != len(titles) {
		t.Fatalf("len = %d, want %d", len(got), len(titles))
	}
	for i := range titles {
		if got[i].ID != ids[i] || got[i].Title != titles[i] {
			t.Errorf("got[%d] = %+v, want id %s title %s", i, got[i], ids[i], titles[i])
		}
	}

	one, err := s.GetTodo(ctx, ids[1])
	if err != nil {
		t.Fatalf("GetTodo() error = %v", err)
	}
	if !one.Completed {
		t.Errorf("GetTodo().Completed = false, want true")
	}
}

func TestStore_GetTodo_NotFound(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	_, err := s.GetTodo(context.Background(), "588935f57546a2daea44de7c")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetTodo() error = %v, want ErrNotFound", err)
	}
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	if s.Name() != "mongo" {
		t.Errorf("Name() = %q, want %q", s.Name(), "mongo")
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v", err)
	}
}
